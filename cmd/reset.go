package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fujioka8700/eitan/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's study history",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := resolveUserID(cmd)
		if userID == "" {
			return fmt.Errorf("no learner ID: set --user or EITAN_USER")
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("this deletes all study history for %q; re-run with --yes to confirm", userID)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.StatRepo().Reset(cmd.Context(), userID); err != nil {
			return fmt.Errorf("reset stats: %w", err)
		}

		fmt.Printf("Study history deleted for %s\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
