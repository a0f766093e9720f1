package drill

import (
	"math/rand"
	"testing"

	"github.com/fujioka8700/eitan/internal/catalog"
)

func testWords(n int) []catalog.Word {
	words := make([]catalog.Word, n)
	for i := range words {
		words[i] = catalog.Word{
			ID:       i + 1,
			English:  "word" + string(rune('a'+i%26)),
			Japanese: "訳" + string(rune('あ'+i)),
			Level:    catalog.LevelJHS1,
		}
	}
	return words
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestSample_TruncatesToPool(t *testing.T) {
	pool := testWords(12)
	got := Sample(testRand(), pool, 50)
	if len(got) != 12 {
		t.Errorf("len = %d, want 12 (truncation, no padding)", len(got))
	}
}

func TestSample_RequestedSize(t *testing.T) {
	pool := testWords(30)
	got := Sample(testRand(), pool, 10)
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
}

func TestSample_NoDuplicateIDs(t *testing.T) {
	pool := testWords(20)
	for seed := int64(0); seed < 20; seed++ {
		got := Sample(rand.New(rand.NewSource(seed)), pool, 20)
		seen := make(map[int]bool)
		for _, w := range got {
			if seen[w.ID] {
				t.Fatalf("seed %d: duplicate word id %d", seed, w.ID)
			}
			seen[w.ID] = true
		}
	}
}

func TestSample_CollapsesProviderDuplicates(t *testing.T) {
	pool := testWords(5)
	pool = append(pool, pool[0], pool[1])
	got := Sample(testRand(), pool, 10)
	if len(got) != 5 {
		t.Errorf("len = %d, want 5 distinct words", len(got))
	}
}

func TestSample_EmptyPool(t *testing.T) {
	got := Sample(testRand(), nil, 10)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSample_DoesNotMutatePool(t *testing.T) {
	pool := testWords(8)
	first := pool[0].ID
	Sample(testRand(), pool, 8)
	if pool[0].ID != first {
		t.Error("Sample reordered the caller's pool")
	}
}
