package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fujioka8700/eitan/internal/app"
	"github.com/fujioka8700/eitan/internal/store"
)

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{Store: st, UserID: resolveUserID(cmd)})
}
