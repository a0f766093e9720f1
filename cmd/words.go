package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fujioka8700/eitan/internal/catalog"
	"github.com/fujioka8700/eitan/internal/store"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List catalog words",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		search, _ := cmd.Flags().GetString("search")
		limit, _ := cmd.Flags().GetInt("limit")

		level, err := catalog.ParseLevel(levelFlag)
		if err != nil {
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

		words, total, err := st.WordRepo().List(cmd.Context(), store.ListOpts{
			Level:  level,
			Search: search,
			Limit:  limit,
		})
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		for _, w := range words {
			fmt.Printf("%-4s %-20s %s\n", w.Level, w.English, w.Japanese)
		}
		fmt.Printf("%d / %d words\n", len(words), total)
		return nil
	},
}

func init() {
	wordsCmd.Flags().String("level", "", "Filter by level (中1, 中2, 中3, or all)")
	wordsCmd.Flags().String("search", "", "Substring match on english or japanese")
	wordsCmd.Flags().Int("limit", 50, "Maximum number of words to print (0 = all)")
}
