package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
	"github.com/Mohamad-Mousa/readiness/internal/config"
	"github.com/Mohamad-Mousa/readiness/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "readiness",
	Short: "AI readiness assessments in the terminal",
	Long:  "Readiness — capture, score, and complete AI-readiness assessments from the comfort of a terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides READINESS_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to question-catalog JSON file (overrides READINESS_CATALOG env var)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then READINESS_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveCatalog loads the catalog from --catalog, then
// READINESS_CATALOG, then the built-in question set.
func resolveCatalog(cmd *cobra.Command, cfg *config.Config) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}
