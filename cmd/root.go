package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fujioka8700/eitan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eitan",
	Short: "Terminal trainer for junior high English vocabulary",
	Long:  "Eitan — terminal drill app for junior high school English vocabulary, with timed multiple-choice quizzes and flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EITAN_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner ID for progress tracking (overrides EITAN_USER env var; empty runs as guest)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EITAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the learner ID from the --user flag, then the
// EITAN_USER env var. Empty means guest mode: nothing is persisted.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	return os.Getenv("EITAN_USER")
}
