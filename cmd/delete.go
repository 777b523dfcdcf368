package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohamad-Mousa/readiness/internal/config"
	"github.com/Mohamad-Mousa/readiness/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved assessment",
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

		err = st.Assessments().Delete(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no assessment with id %s", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}
