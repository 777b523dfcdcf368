package report

import "github.com/Mohamad-Mousa/readiness/internal/llm"

// ReportSchema defines the JSON schema for readiness report generation.
var ReportSchema = &llm.Schema{
	Name:        "readiness-report",
	Description: "An AI-readiness report summarizing a completed assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Executive summary of the organization's readiness (3-6 sentences)",
			},
			"score": map[string]any{
				"type":        "integer",
				"description": "Overall readiness score from 0 to 100",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Areas where the organization is already well prepared",
			},
			"gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Areas holding readiness back",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete next steps, ordered by impact",
			},
		},
		"required":             []any{"summary", "score", "strengths", "gaps", "recommendations"},
		"additionalProperties": false,
	},
}
