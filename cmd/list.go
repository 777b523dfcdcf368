package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mohamad-Mousa/readiness/internal/config"
	"github.com/Mohamad-Mousa/readiness/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved assessments",
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

		saved, err := st.Assessments().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(saved) == 0 {
			fmt.Println("No saved assessments.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tDOMAIN\tSTATUS\tUPDATED")
		for _, s := range saved {
			title := s.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.ID, title, s.DomainID, s.Status, s.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
