package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohamad-Mousa/readiness/internal/app"
	"github.com/Mohamad-Mousa/readiness/internal/config"
	"github.com/Mohamad-Mousa/readiness/internal/store"
)

// runApp opens the store, loads the catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Catalog: cat,
		Repo:    st.Assessments(),
	})
}
