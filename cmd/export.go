package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohamad-Mousa/readiness/internal/assessment"
	"github.com/Mohamad-Mousa/readiness/internal/config"
	"github.com/Mohamad-Mousa/readiness/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Print a saved assessment as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
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

		rec, err := st.Assessments().Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no assessment with id %s", args[0])
		}
		if err != nil {
			return err
		}

		p := assessment.Payload{
			ID:          rec.ID,
			DomainID:    rec.DomainID,
			Title:       rec.Title,
			Description: rec.Description,
			FullName:    rec.FullName,
			Status:      rec.Status,
			Questions:   rec.Questions,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}
