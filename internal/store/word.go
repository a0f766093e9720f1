package store

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/fujioka8700/eitan/ent"
	"github.com/fujioka8700/eitan/ent/word"
	"github.com/fujioka8700/eitan/internal/catalog"
)

// wordRepo implements WordRepo using the ent client.
type wordRepo struct {
	client *ent.Client
}

// Random fetches the whole pool for the level, shuffles it, and returns
// the first count entries. Catalogs are a few thousand rows at most, so
// shuffling in memory beats bolting randomness onto SQL.
func (r *wordRepo) Random(ctx context.Context, level catalog.Level, count int) ([]catalog.Word, int, error) {
	q := r.client.Word.Query()
	if level != catalog.LevelAny {
		q = q.Where(word.LevelEQ(int(level)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query word pool: %w", err)
	}

	words := make([]catalog.Word, len(rows))
	for i, row := range rows {
		words[i] = entWordToWord(row)
	}
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	total := len(words)
	if count < total {
		words = words[:count]
	}
	return words, total, nil
}

func (r *wordRepo) List(ctx context.Context, opts ListOpts) ([]catalog.Word, int, error) {
	q := r.client.Word.Query()
	if opts.Level != catalog.LevelAny {
		q = q.Where(word.LevelEQ(int(opts.Level)))
	}
	if opts.Search != "" {
		q = q.Where(word.Or(
			word.EnglishContainsFold(opts.Search),
			word.JapaneseContains(opts.Search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	q = q.Order(ent.Asc(word.FieldLevel), ent.Asc(word.FieldEnglish)).
		Offset(opts.Offset)
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}

	words := make([]catalog.Word, len(rows))
	for i, row := range rows {
		words[i] = entWordToWord(row)
	}
	return words, total, nil
}

// Import replaces the entire catalog in one transaction so a failed
// import never leaves a half-loaded wordlist behind.
func (r *wordRepo) Import(ctx context.Context, words []catalog.Word) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}

	if _, err := tx.Word.Delete().Exec(ctx); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("clear catalog: %w", err)
	}

	builders := make([]*ent.WordCreate, len(words))
	for i, w := range words {
		builders[i] = tx.Word.Create().
			SetEnglish(w.English).
			SetJapanese(w.Japanese).
			SetLevel(int(w.Level))
	}
	created, err := tx.Word.CreateBulk(builders...).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert words: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(created), nil
}

func (r *wordRepo) Count(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, lvl := range catalog.Levels() {
		n, err := r.client.Word.Query().
			Where(word.LevelEQ(int(lvl))).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count level %s: %w", lvl, err)
		}
		counts[lvl.String()] = n
	}
	return counts, nil
}

func entWordToWord(row *ent.Word) catalog.Word {
	return catalog.Word{
		ID:       row.ID,
		English:  row.English,
		Japanese: row.Japanese,
		Level:    catalog.Level(row.Level),
	}
}
