package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fujioka8700/eitan/internal/app"
	"github.com/fujioka8700/eitan/internal/catalog"
	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/store"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	Long:  "Start a study session. Without flags this opens the menu; with --mode the session starts immediately.",
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		if modeFlag == "" {
			return runApp(cmd)
		}

		var mode drill.Mode
		switch modeFlag {
		case "quiz":
			mode = drill.ModeQuiz
		case "flash", "flashcard":
			mode = drill.ModeFlashcard
		default:
			return fmt.Errorf("unknown mode %q (quiz or flashcard)", modeFlag)
		}

		levelFlag, _ := cmd.Flags().GetString("level")
		level, err := catalog.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")

		spec := drill.Spec{Mode: mode, Level: level, RequestedSize: count}
		if err := spec.Validate(); err != nil {
			return err
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

		return app.Run(app.Options{
			Store:       st,
			UserID:      resolveUserID(cmd),
			InitialSpec: &spec,
		})
	},
}

func init() {
	studyCmd.Flags().String("mode", "", "Start directly in a mode (quiz or flashcard)")
	studyCmd.Flags().String("level", "", "Level filter for direct start (中1, 中2, 中3, or all)")
	studyCmd.Flags().Int("count", 10, "Word count for direct start")
}
