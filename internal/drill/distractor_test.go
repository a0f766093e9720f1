package drill

import (
	"math/rand"
	"testing"

	"github.com/fujioka8700/eitan/internal/catalog"
)

func countOf(options []string, s string) int {
	n := 0
	for _, o := range options {
		if o == s {
			n++
		}
	}
	return n
}

func TestRollOptions_FourOptionsWhenSnapshotLargeEnough(t *testing.T) {
	snapshot := testWords(10)
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		options := RollOptions(rng, snapshot[0], snapshot)
		if len(options) != 4 {
			t.Fatalf("seed %d: len(options) = %d, want 4", seed, len(options))
		}
		if countOf(options, snapshot[0].Japanese) != 1 {
			t.Fatalf("seed %d: correct answer count = %d, want exactly 1",
				seed, countOf(options, snapshot[0].Japanese))
		}
	}
}

func TestRollOptions_PairwiseDistinct(t *testing.T) {
	snapshot := testWords(10)
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		options := RollOptions(rng, snapshot[3], snapshot)
		seen := make(map[string]bool)
		for _, o := range options {
			if seen[o] {
				t.Fatalf("seed %d: duplicate option %q", seed, o)
			}
			seen[o] = true
		}
	}
}

func TestRollOptions_SmallSnapshot(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 4},
	}
	for _, tt := range tests {
		snapshot := testWords(tt.size)
		options := RollOptions(testRand(), snapshot[0], snapshot)
		if len(options) != tt.want {
			t.Errorf("size %d: len(options) = %d, want %d", tt.size, len(options), tt.want)
		}
		if countOf(options, snapshot[0].Japanese) != 1 {
			t.Errorf("size %d: correct answer missing or repeated", tt.size)
		}
	}
}

func TestRollOptions_ExcludesIdenticalTranslations(t *testing.T) {
	target := catalog.Word{ID: 1, English: "big", Japanese: "大きい", Level: catalog.LevelJHS1}
	snapshot := []catalog.Word{
		target,
		{ID: 2, English: "large", Japanese: "大きい", Level: catalog.LevelJHS1}, // same translation
		{ID: 3, English: "small", Japanese: "小さい", Level: catalog.LevelJHS1},
	}
	options := RollOptions(testRand(), target, snapshot)
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2 (identical translation excluded)", len(options))
	}
	if countOf(options, "大きい") != 1 {
		t.Errorf("correct answer count = %d, want 1", countOf(options, "大きい"))
	}
}

func TestRollOptions_CorrectAnswerHasNoFixedSlot(t *testing.T) {
	snapshot := testWords(10)
	positions := make(map[int]bool)
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		options := RollOptions(rng, snapshot[0], snapshot)
		for i, o := range options {
			if o == snapshot[0].Japanese {
				positions[i] = true
			}
		}
	}
	if len(positions) < 2 {
		t.Errorf("correct answer landed in %d distinct position(s) over 200 rolls", len(positions))
	}
}
