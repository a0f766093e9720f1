package drill

import (
	"math/rand"

	"github.com/fujioka8700/eitan/internal/catalog"
)

// maxOptions is the target option count per quiz question: the correct
// answer plus up to three distractors.
const maxOptions = 4

// RollOptions builds the shuffled answer options for one quiz question:
// the target's japanese plus up to three distinct wrong translations drawn
// from the rest of the snapshot. Wrong answers textually identical to the
// correct one (or to each other) are excluded, so every option is unique
// and the correct answer appears exactly once. With a snapshot smaller
// than four words the set is simply shorter. The shuffle is rolled fresh
// on every call; the correct answer has no fixed slot.
func RollOptions(rng *rand.Rand, target catalog.Word, snapshot []catalog.Word) []string {
	used := map[string]bool{target.Japanese: true}
	var wrong []string
	for _, w := range snapshot {
		if w.ID == target.ID || used[w.Japanese] {
			continue
		}
		used[w.Japanese] = true
		wrong = append(wrong, w.Japanese)
	}

	rng.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})
	if len(wrong) > maxOptions-1 {
		wrong = wrong[:maxOptions-1]
	}

	options := append([]string{target.Japanese}, wrong...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
