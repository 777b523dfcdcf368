package report

import (
	"fmt"
	"strings"

	"github.com/Mohamad-Mousa/readiness/internal/answer"
	"github.com/Mohamad-Mousa/readiness/internal/assessment"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

const reportSystemPrompt = `You are an AI-readiness consultant. You receive a completed
readiness questionnaire for one assessment domain and produce a concise,
actionable report for the organization's leadership. Ground every
statement in the answers given; do not invent facts. Be direct about
gaps.`

// buildReportPrompt renders the assessment into the user message.
func buildReportPrompt(rec *assessment.Record, domain *catalog.Domain) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Assessment: %s\n", rec.Title)
	if rec.FullName != "" {
		fmt.Fprintf(&b, "Prepared by: %s\n", rec.FullName)
	}
	if rec.Description != "" {
		fmt.Fprintf(&b, "Context: %s\n", rec.Description)
	}
	fmt.Fprintf(&b, "Domain: %s", domain.Title)
	if domain.Description != "" {
		fmt.Fprintf(&b, " — %s", domain.Description)
	}
	b.WriteString("\n\nAnswers:\n")

	byID := make(map[string]any, len(rec.Questions))
	for _, qa := range rec.Questions {
		byID[qa.QuestionID] = qa.Answer
	}

	for i, q := range domain.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
		raw, ok := byID[q.ID]
		if !ok {
			b.WriteString("   (not answered)\n")
			continue
		}
		v := answer.NormalizeIncoming(q.Kind, raw)
		fmt.Fprintf(&b, "   %s\n", renderAnswer(v))
	}

	return b.String()
}

func renderAnswer(v answer.Value) string {
	if !answer.IsAnswered(v) {
		return "(not answered)"
	}
	switch v.Kind() {
	case catalog.KindCheckbox:
		return strings.Join(v.Options(), ", ")
	case catalog.KindNumber:
		n, _ := v.Number()
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", n), "0"), ".")
	default:
		return v.String()
	}
}
