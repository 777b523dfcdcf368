package report

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Mohamad-Mousa/readiness/internal/assessment"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
	"github.com/Mohamad-Mousa/readiness/internal/llm"
)

func completedRecord() *assessment.Record {
	return &assessment.Record{
		ID:       "rec-1",
		Title:    "Annual check",
		FullName: "Pat Jones",
		Status:   assessment.StatusCompleted,
		DomainID: "sec",
		Questions: []assessment.QuestionAnswer{
			{QuestionID: "q-review", Answer: "Quarterly"},
			{QuestionID: "q-controls", Answer: []any{"Secrets manager", "Rotation policy"}},
			{QuestionID: "q-count", Answer: 3.0},
		},
	}
}

func securityDomain() *catalog.Domain {
	return &catalog.Domain{
		ID:    "sec",
		Title: "Security",
		Questions: []catalog.Question{
			{ID: "q-review", Text: "How often are access rights reviewed?", Kind: catalog.KindRadio},
			{ID: "q-controls", Text: "Which controls are in place?", Kind: catalog.KindCheckbox},
			{ID: "q-count", Text: "How many incidents last year?", Kind: catalog.KindNumber},
			{ID: "q-notes", Text: "Anything else?", Kind: catalog.KindText},
		},
	}
}

func cannedReport() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"summary": "Solid foundations with a few gaps.",
		"score": 72,
		"strengths": ["Access reviews happen quarterly"],
		"gaps": ["No audit logging"],
		"recommendations": ["Enable audit logging"]
	}`)}
}

func TestGenerateReport(t *testing.T) {
	mock := llm.NewMockProvider(cannedReport())
	svc := NewService(mock, DefaultConfig())

	rep, err := svc.Generate(context.Background(), completedRecord(), securityDomain())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if rep.AssessmentID != "rec-1" || rep.DomainTitle != "Security" {
		t.Errorf("report identity = %+v", rep)
	}
	if rep.Score != 72 {
		t.Errorf("score = %d", rep.Score)
	}
	if len(rep.Strengths) != 1 || len(rep.Gaps) != 1 || len(rep.Recommendations) != 1 {
		t.Errorf("report lists = %+v", rep)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "readiness-report" {
		t.Errorf("schema = %+v", req.Schema)
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Errorf("max tokens = %d", req.MaxTokens)
	}
}

func TestGenerateRejectsDrafts(t *testing.T) {
	mock := llm.NewMockProvider(cannedReport())
	svc := NewService(mock, DefaultConfig())

	rec := completedRecord()
	rec.Status = assessment.StatusDraft

	if _, err := svc.Generate(context.Background(), rec, securityDomain()); err == nil {
		t.Fatal("drafts must not produce reports")
	}
	if len(mock.Calls) != 0 {
		t.Error("rejected drafts must not reach the provider")
	}
}

func TestBuildReportPromptRendersAnswers(t *testing.T) {
	prompt := buildReportPrompt(completedRecord(), securityDomain())

	for _, want := range []string{
		"Assessment: Annual check",
		"Prepared by: Pat Jones",
		"Domain: Security",
		"1. How often are access rights reviewed?",
		"Quarterly",
		"Secrets manager, Rotation policy",
		"(not answered)", // q-notes has no pair
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestRenderAnswerFormatsNumbers(t *testing.T) {
	prompt := buildReportPrompt(completedRecord(), securityDomain())
	if !strings.Contains(prompt, "   3\n") {
		t.Errorf("number should render without trailing zeros:\n%s", prompt)
	}
}
