package assessment

import (
	"testing"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

func sessionSections() []catalog.Domain {
	return []catalog.Domain{threeQuestionDomain()}
}

func savedRecord() *Record {
	return &Record{
		ID:       "rec-9",
		Title:    "Saved run",
		FullName: "Pat Jones",
		DomainID: "d1",
		Status:   StatusDraft,
		Questions: []QuestionAnswer{
			{QuestionID: "q1", Answer: "from the record"},
			{QuestionID: "q3", Answer: 5.0},
		},
	}
}

func TestSessionConvergesRegardlessOfFetchOrder(t *testing.T) {
	// Catalog first.
	a := NewSession("d1")
	a.AttachSections(sessionSections())
	a.ApplyRecord(savedRecord())

	// Record first.
	b := NewSession("d1")
	b.ApplyRecord(savedRecord())
	b.AttachSections(sessionSections())

	for _, s := range []*Session{a, b} {
		if got := s.Store().Value("q1").String(); got != "from the record" {
			t.Errorf("q1 = %q", got)
		}
		if n, ok := s.Store().Value("q3").Number(); !ok || n != 5 {
			t.Errorf("q3 = %v/%v", n, ok)
		}
		if s.Meta.ID != "rec-9" || s.Meta.Title != "Saved run" {
			t.Errorf("meta = %+v", s.Meta)
		}
	}
	if a.OverallProgress() != b.OverallProgress() {
		t.Errorf("progress differs by fetch order: %v vs %v", a.OverallProgress(), b.OverallProgress())
	}
}

func TestSessionProgressAndDirtyTracking(t *testing.T) {
	s := NewSession("d1")
	s.AttachSections(sessionSections())

	if s.Dirty() {
		t.Fatal("fresh session should not be dirty")
	}

	s.SetText("q1", "an answer")
	if !s.Dirty() {
		t.Error("answering should mark the session dirty")
	}
	if got := s.DomainProgress(0); int(got) != 33 {
		t.Errorf("progress = %v, want ~33", got)
	}

	s.MarkSaved("rec-1")
	if s.Dirty() {
		t.Error("MarkSaved should clear the dirty flag")
	}
	if s.Meta.ID != "rec-1" {
		t.Errorf("meta id = %q", s.Meta.ID)
	}
}

func TestSessionCursorNavigation(t *testing.T) {
	s := NewSession("d1")
	s.AttachSections(sessionSections())

	q, ok := s.CurrentQuestion()
	if !ok || q.ID != "q1" {
		t.Fatalf("current = %+v/%v, want q1", q, ok)
	}

	s.Next()
	if q, _ := s.CurrentQuestion(); q.ID != "q2" {
		t.Errorf("after Next, current = %q", q.ID)
	}
	s.Previous()
	if q, _ := s.CurrentQuestion(); q.ID != "q1" {
		t.Errorf("after Previous, current = %q", q.ID)
	}
}

func TestSessionPayloadsBeforeCatalog(t *testing.T) {
	s := NewSession("d1")

	if _, err := s.DraftPayload(); err == nil {
		t.Error("draft before the catalog loads should fail")
	}
	if _, err := s.CompletePayload(); err == nil {
		t.Error("complete before the catalog loads should fail")
	}
}

func TestSessionCompleteFlow(t *testing.T) {
	s := NewSession("d1")
	s.AttachSections(sessionSections())
	s.Meta.Title = "Full run"
	s.Meta.Description = "All answered"
	s.Meta.FullName = "Pat Jones"

	s.SetText("q1", "a")
	s.SetRadio("q2", "Yes")
	s.SetNumber("q3", "2")

	if !s.CanComplete() {
		t.Fatal("all required answered, CanComplete should be true")
	}
	p, err := s.CompletePayload()
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if p.Status != StatusCompleted || len(p.Questions) != 3 {
		t.Errorf("payload = %+v", p)
	}
}
