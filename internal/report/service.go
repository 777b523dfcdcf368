package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mohamad-Mousa/readiness/internal/assessment"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
	"github.com/Mohamad-Mousa/readiness/internal/llm"
)

// Report is a generated readiness summary for one completed assessment.
type Report struct {
	AssessmentID    string
	DomainTitle     string
	Summary         string
	Score           int
	Strengths       []string
	Gaps            []string
	Recommendations []string
}

// Config holds report generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for report generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Service generates readiness reports from completed assessments.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a report generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type reportOutput struct {
	Summary         string   `json:"summary"`
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

// Generate produces a report for the record against its domain's
// questions. Only completed assessments are accepted; a draft has open
// required questions and would yield a misleading report.
func (s *Service) Generate(ctx context.Context, rec *assessment.Record, domain *catalog.Domain) (*Report, error) {
	if rec.Status != assessment.StatusCompleted {
		return nil, fmt.Errorf("assessment %s is not completed", rec.ID)
	}

	req := llm.Request{
		System:      reportSystemPrompt,
		Prompt:      buildReportPrompt(rec, domain),
		Schema:      ReportSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("report generation: %w", err)
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse report response: %w", err)
	}

	return &Report{
		AssessmentID:    rec.ID,
		DomainTitle:     domain.Title,
		Summary:         out.Summary,
		Score:           out.Score,
		Strengths:       out.Strengths,
		Gaps:            out.Gaps,
		Recommendations: out.Recommendations,
	}, nil
}
