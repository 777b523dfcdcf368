package assessment

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

func fullMeta() Meta {
	return Meta{
		ID:          "rec-1",
		Title:       "Q3 readiness",
		Description: "Quarterly check",
		FullName:    "Pat Jones",
		DomainID:    "d1",
	}
}

func TestDraftPayloadIncludesOnlyAnsweredQuestions(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)
	s.SetText("q1", "partial")

	p, err := DraftPayload(fullMeta(), &d, s)
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if p.Status != StatusDraft {
		t.Errorf("status = %q", p.Status)
	}
	if len(p.Questions) != 1 || p.Questions[0].QuestionID != "q1" {
		t.Fatalf("questions = %+v, want only q1", p.Questions)
	}
	if p.Questions[0].Answer != "partial" {
		t.Errorf("answer = %v", p.Questions[0].Answer)
	}
}

func TestDraftPayloadRequiresDomain(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)
	s.SetText("q1", "hello")

	meta := Meta{Title: "has a title"} // no domain
	p, err := DraftPayload(meta, &d, s)
	if p != nil {
		t.Fatal("no payload may be produced without a domain")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if ve.Field != "domain" {
		t.Errorf("field = %q, want domain", ve.Field)
	}
}

func TestDraftPayloadRequiresTitleOnly(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)

	meta := Meta{DomainID: "d1"} // no title
	if _, err := DraftPayload(meta, &d, s); err == nil {
		t.Fatal("draft without a title should be rejected")
	}

	meta.Title = "Untitled no more"
	p, err := DraftPayload(meta, &d, s)
	if err != nil {
		t.Fatalf("draft with title only: %v", err)
	}
	if len(p.Questions) != 0 {
		t.Errorf("nothing answered, questions = %+v", p.Questions)
	}
}

func TestCompletePayloadRequiresAllMetadataInOrder(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)

	tests := []struct {
		name      string
		mutate    func(*Meta)
		wantField string
	}{
		{"missing domain", func(m *Meta) { m.DomainID = "" }, "domain"},
		{"missing title", func(m *Meta) { m.Title = "" }, "title"},
		{"missing description", func(m *Meta) { m.Description = "" }, "description"},
		{"missing full name", func(m *Meta) { m.FullName = "" }, "fullName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := fullMeta()
			tt.mutate(&meta)
			_, err := CompletePayload(meta, &d, s)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestCompletePayloadRejectsUnmetRequiredQuestion(t *testing.T) {
	d := threeQuestionDomain()
	s := storeFor(d)
	s.SetText("q1", "done")
	// q2 still open

	p, err := CompletePayload(fullMeta(), &d, s)
	if p != nil {
		t.Fatal("no payload may be produced on rejection")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if ve.QuestionID != "q2" {
		t.Errorf("unmet question = %q, want q2", ve.QuestionID)
	}
	if ve.Field != "" {
		t.Errorf("field should be empty for a question rejection, got %q", ve.Field)
	}
}

func TestCompletePayloadSerializesEveryQuestion(t *testing.T) {
	d := catalog.Domain{
		ID: "d1",
		Questions: []catalog.Question{
			{ID: "req", Kind: catalog.KindText, Required: true},
			{ID: "opt-num", Kind: catalog.KindNumber},
			{ID: "opt-cb", Kind: catalog.KindCheckbox, AllowedAnswers: []string{"a"}},
		},
	}
	s := storeFor(d)
	s.SetText("req", "yes")

	p, err := CompletePayload(fullMeta(), &d, s)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if p.Status != StatusCompleted {
		t.Errorf("status = %q", p.Status)
	}
	if len(p.Questions) != 3 {
		t.Fatalf("questions = %d, want all 3", len(p.Questions))
	}

	byID := make(map[string]any, len(p.Questions))
	for _, qa := range p.Questions {
		byID[qa.QuestionID] = qa.Answer
	}
	if byID["req"] != "yes" {
		t.Errorf("req = %v", byID["req"])
	}
	// Unanswered numbers serialize as the empty string, unanswered
	// checkboxes as an empty array.
	if byID["opt-num"] != "" {
		t.Errorf("absent number = %#v, want \"\"", byID["opt-num"])
	}
	if !reflect.DeepEqual(byID["opt-cb"], []string{}) {
		t.Errorf("absent checkbox = %#v, want []string{}", byID["opt-cb"])
	}
}
