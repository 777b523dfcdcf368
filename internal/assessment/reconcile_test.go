package assessment

import (
	"encoding/json"
	"testing"

	"github.com/Mohamad-Mousa/readiness/internal/answer"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

func savedPairs() []QuestionAnswer {
	return []QuestionAnswer{
		{QuestionID: "q1", Answer: "some text"},
		{QuestionID: "q2", Answer: "Yes"},
		{QuestionID: "q3", Answer: "12"}, // legacy string-typed number
		{QuestionID: "gone", Answer: "question no longer in the catalog"},
	}
}

func assertResolved(t *testing.T, s *answer.Store) {
	t.Helper()
	if got := s.Value("q1").String(); got != "some text" {
		t.Errorf("q1 = %q", got)
	}
	if got := s.Value("q2").String(); got != "Yes" {
		t.Errorf("q2 = %q", got)
	}
	if n, ok := s.Value("q3").Number(); !ok || n != 12 {
		t.Errorf("q3 = %v/%v, want 12/true", n, ok)
	}
	if s.Answered("gone") {
		t.Error("pair for an unknown question must be dropped")
	}
}

func TestResolveAfterOffer(t *testing.T) {
	d := threeQuestionDomain()
	sections := []catalog.Domain{d}
	s := storeFor(d)

	var r Reconciler
	r.Offer(savedPairs())
	if !r.Pending() {
		t.Fatal("pairs should be pending before a catalog arrives")
	}
	if !r.Resolve(sections, s) {
		t.Fatal("Resolve should report pairs were applied")
	}
	if r.Pending() {
		t.Error("pending pairs should be cleared after Resolve")
	}
	assertResolved(t, s)
}

// The catalog and the saved record land in unspecified order; the store
// contents must not depend on which came first.
func TestResolveOrderIndependence(t *testing.T) {
	d := threeQuestionDomain()
	sections := []catalog.Domain{d}

	// Catalog first: Resolve before Offer finds nothing, then applies.
	s1 := storeFor(d)
	var r1 Reconciler
	if r1.Resolve(sections, s1) {
		t.Fatal("Resolve with nothing pending should report false")
	}
	r1.Offer(savedPairs())
	r1.Resolve(sections, s1)

	// Record first: Offer waits for the catalog.
	s2 := storeFor(d)
	var r2 Reconciler
	r2.Offer(savedPairs())
	r2.Resolve(sections, s2)

	for _, id := range []string{"q1", "q2", "q3"} {
		if !s1.Value(id).Equal(s2.Value(id)) {
			t.Errorf("order-dependent result for %s: %+v vs %+v", id, s1.Value(id), s2.Value(id))
		}
	}
	assertResolved(t, s1)
}

func TestSecondOfferReplacesFirst(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)

	var r Reconciler
	r.Offer([]QuestionAnswer{{QuestionID: "q1", Answer: "stale"}})
	r.Offer([]QuestionAnswer{{QuestionID: "q1", Answer: "fresh"}})
	r.Resolve([]catalog.Domain{d}, s)

	if got := s.Value("q1").String(); got != "fresh" {
		t.Errorf("q1 = %q, want the replacing offer", got)
	}
}

func TestQuestionAnswerAcceptsBothWireShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"legacy bare id", `{"question":"q1","answer":"x"}`, "q1"},
		{"embedded object", `{"question":{"_id":"q2","text":"ignored"},"answer":"x"}`, "q2"},
		{"unexpected shape", `{"question":42,"answer":"x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var qa QuestionAnswer
			if err := json.Unmarshal([]byte(tt.raw), &qa); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if qa.QuestionID != tt.want {
				t.Errorf("QuestionID = %q, want %q", qa.QuestionID, tt.want)
			}
		})
	}
}

func TestResolveSkipsPairsWithEmptyID(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)

	var r Reconciler
	r.Offer([]QuestionAnswer{{QuestionID: "", Answer: "lost"}, {QuestionID: "q1", Answer: "kept"}})
	r.Resolve([]catalog.Domain{d}, s)

	if got := s.Value("q1").String(); got != "kept" {
		t.Errorf("q1 = %q", got)
	}
}

func TestResolveNormalizesLegacyCheckboxString(t *testing.T) {
	d := catalog.Domain{
		ID: "d",
		Questions: []catalog.Question{
			{ID: "cb", Kind: catalog.KindCheckbox, AllowedAnswers: []string{"a", "b", "c"}},
		},
	}
	s := storeFor(d)

	var r Reconciler
	r.Offer([]QuestionAnswer{{QuestionID: "cb", Answer: "a,c"}})
	r.Resolve([]catalog.Domain{d}, s)

	v := s.Value("cb")
	if !v.HasOption("a") || !v.HasOption("c") || v.HasOption("b") {
		t.Errorf("checkbox options = %v, want [a c]", v.Options())
	}
}
