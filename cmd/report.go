package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohamad-Mousa/readiness/internal/config"
	"github.com/Mohamad-Mousa/readiness/internal/llm"
	"github.com/Mohamad-Mousa/readiness/internal/report"
	"github.com/Mohamad-Mousa/readiness/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Generate an AI readiness report for a completed assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cat, err := resolveCatalog(cmd, cfg)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.Assessments().Get(ctx, args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no assessment with id %s", args[0])
		}
		if err != nil {
			return err
		}

		domain, err := cat.Domain(rec.DomainID)
		if err != nil {
			return fmt.Errorf("assessment domain %q is not in the catalog: %w", rec.DomainID, err)
		}

		provider, err := llm.NewProvider(ctx, cfg.LLM())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		rep, err := report.NewService(provider, report.DefaultConfig()).Generate(ctx, rec, domain)
		if err != nil {
			return err
		}

		printReport(rep)
		return nil
	},
}

func printReport(rep *report.Report) {
	fmt.Printf("Readiness Report — %s\n", rep.DomainTitle)
	fmt.Printf("Score: %d/100\n\n", rep.Score)
	fmt.Println(rep.Summary)
	printSection("Strengths", rep.Strengths)
	printSection("Gaps", rep.Gaps)
	printSection("Recommendations", rep.Recommendations)
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, it := range items {
		fmt.Println("  -", it)
	}
}
