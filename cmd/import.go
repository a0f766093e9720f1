package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fujioka8700/eitan/internal/catalog"
	"github.com/fujioka8700/eitan/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <wordlist.json>",
	Short: "Replace the word catalog from a JSON wordlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := catalog.LoadWordlist(args[0])
		if err != nil {
			return fmt.Errorf("load wordlist: %w", err)
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

		n, err := st.WordRepo().Import(cmd.Context(), words)
		if err != nil {
			return fmt.Errorf("import words: %w", err)
		}

		fmt.Printf("Imported %d words from %s\n", n, args[0])
		return nil
	},
}
