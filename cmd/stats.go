package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fujioka8700/eitan/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := resolveUserID(cmd)
		if userID == "" {
			return fmt.Errorf("no learner ID: set --user or EITAN_USER")
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

		ctx := cmd.Context()
		statRepo := st.StatRepo()

		studied, mastered, accuracy, err := statRepo.Totals(ctx, userID)
		if err != nil {
			return fmt.Errorf("load totals: %w", err)
		}

		fmt.Printf("Learner:  %s\n", userID)
		fmt.Printf("Studied:  %d words\n", studied)
		fmt.Printf("Mastered: %d words\n", mastered)
		fmt.Printf("Accuracy: %d%%\n", accuracy)

		recent, err := statRepo.ListRecent(ctx, userID, 10)
		if err != nil {
			return fmt.Errorf("load recent stats: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println("\nRecently studied:")
		for _, s := range recent {
			fmt.Printf("  %-8s %-20s ○%d ×%d\n", s.Status, s.English, s.CorrectCount, s.IncorrectCount)
		}
		return nil
	},
}
