package drill

import (
	"math/rand"

	"github.com/fujioka8700/eitan/internal/catalog"
)

// Sample draws min(k, len(pool)) distinct words from the pool, uniformly
// at random without replacement. The pool itself is not modified. Words
// sharing an ID are collapsed first so the snapshot never repeats a word
// even if the provider returned duplicates.
func Sample(rng *rand.Rand, pool []catalog.Word, k int) []catalog.Word {
	seen := make(map[int]bool, len(pool))
	distinct := make([]catalog.Word, 0, len(pool))
	for _, w := range pool {
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		distinct = append(distinct, w)
	}

	rng.Shuffle(len(distinct), func(i, j int) {
		distinct[i], distinct[j] = distinct[j], distinct[i]
	})

	if k > len(distinct) {
		k = len(distinct)
	}
	return distinct[:k]
}
