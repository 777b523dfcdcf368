package assessment

import (
	"testing"

	"github.com/Mohamad-Mousa/readiness/internal/answer"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

func threeQuestionDomain() catalog.Domain {
	return catalog.Domain{
		ID:    "d1",
		Title: "Domain One",
		Questions: []catalog.Question{
			{ID: "q1", Kind: catalog.KindText, Required: true},
			{ID: "q2", Kind: catalog.KindRadio, Required: true, AllowedAnswers: []string{"Yes", "No"}},
			{ID: "q3", Kind: catalog.KindNumber, Required: true},
		},
	}
}

func storeFor(domains ...catalog.Domain) *answer.Store {
	var all []catalog.Question
	for _, d := range domains {
		all = append(all, d.Questions...)
	}
	return answer.NewStore(all)
}

func TestDomainProgressClimbsPerRequiredAnswer(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)

	if got := DomainProgress(&d, s); got != 0 {
		t.Fatalf("empty progress = %v, want 0", got)
	}

	s.SetText("q1", "answered")
	if got := DomainProgress(&d, s); int(got) != 33 {
		t.Fatalf("after one answer = %v, want ~33", got)
	}

	s.SetRadio("q2", "Yes")
	if got := DomainProgress(&d, s); int(got) != 66 {
		t.Fatalf("after two answers = %v, want ~67", got)
	}

	s.SetNumber("q3", "0")
	if got := DomainProgress(&d, s); got != 100 {
		t.Fatalf("after all answers = %v, want 100", got)
	}
}

func TestOptionalQuestionsAlwaysSatisfied(t *testing.T) {
	d := catalog.Domain{
		ID: "d",
		Questions: []catalog.Question{
			{ID: "req", Kind: catalog.KindText, Required: true},
			{ID: "opt", Kind: catalog.KindText, Required: false},
		},
	}
	s := storeFor(d)

	if got := DomainProgress(&d, s); got != 50 {
		t.Fatalf("optional should count as satisfied, got %v", got)
	}

	// Answering the optional question changes nothing.
	s.SetText("opt", "extra")
	if got := DomainProgress(&d, s); got != 50 {
		t.Fatalf("answering optional moved progress to %v", got)
	}

	s.SetText("req", "done")
	if got := DomainProgress(&d, s); got != 100 {
		t.Fatalf("all required answered, got %v", got)
	}
	if !CanCompleteDomain(&d, s) {
		t.Error("domain with all required answered must be completable")
	}
}

func TestClearingAnAnswerLowersProgress(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)

	s.SetText("q1", "x")
	before := DomainProgress(&d, s)
	s.SetText("q1", "")
	after := DomainProgress(&d, s)
	if after >= before {
		t.Errorf("clearing an answer should lower progress, %v -> %v", before, after)
	}
}

func TestEmptyDomainReportsZero(t *testing.T) {
	d := catalog.Domain{ID: "empty"}
	s := storeFor(d)
	if got := DomainProgress(&d, s); got != 0 {
		t.Errorf("domain with no questions = %v, want 0", got)
	}
	if !CanCompleteDomain(&d, s) {
		t.Error("a domain with no questions has nothing unmet")
	}
	if IsDomainComplete(&d, s) {
		t.Error("zero progress means not complete, even with nothing unmet")
	}
}

func TestOverallProgressIsMeanOfDomains(t *testing.T) {
	d1 := threeQuestionDomain()
	d2 := catalog.Domain{
		ID: "d2",
		Questions: []catalog.Question{
			{ID: "x1", Kind: catalog.KindText, Required: true},
		},
	}
	s := storeFor(d1, d2)

	if got := OverallProgress(nil, s); got != 0 {
		t.Fatalf("no sections = %v, want 0", got)
	}

	s.SetText("x1", "done")
	got := OverallProgress([]catalog.Domain{d1, d2}, s)
	if got != 50 {
		t.Errorf("overall = %v, want 50 (mean of 0 and 100)", got)
	}
}

func TestFirstUnmetQuestionIsInDocumentOrder(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)

	if got := firstUnmetQuestion(&d, s); got != "q1" {
		t.Fatalf("first unmet = %q, want q1", got)
	}
	s.SetText("q1", "x")
	if got := firstUnmetQuestion(&d, s); got != "q2" {
		t.Fatalf("first unmet = %q, want q2", got)
	}
}
