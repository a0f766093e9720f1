package store

import (
	"context"
	"testing"
	"time"

	"github.com/fujioka8700/eitan/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedWords(t *testing.T, s *Store, words []catalog.Word) {
	t.Helper()
	n, err := s.WordRepo().Import(context.Background(), words)
	if err != nil {
		t.Fatalf("import words: %v", err)
	}
	if n != len(words) {
		t.Fatalf("imported %d words, want %d", n, len(words))
	}
}

func sampleCatalog() []catalog.Word {
	return []catalog.Word{
		{English: "apple", Japanese: "りんご", Level: catalog.LevelJHS1},
		{English: "book", Japanese: "本", Level: catalog.LevelJHS1},
		{English: "cat", Japanese: "猫", Level: catalog.LevelJHS1},
		{English: "believe", Japanese: "信じる", Level: catalog.LevelJHS2},
		{English: "culture", Japanese: "文化", Level: catalog.LevelJHS2},
		{English: "environment", Japanese: "環境", Level: catalog.LevelJHS3},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWordImportReplacesCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWords(t, s, sampleCatalog())

	// A second import wipes the first.
	seedWords(t, s, []catalog.Word{
		{English: "dog", Japanese: "犬", Level: catalog.LevelJHS1},
	})

	words, total, err := s.WordRepo().List(ctx, ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(words) != 1 {
		t.Fatalf("total = %d, len = %d, want 1 and 1", total, len(words))
	}
	if words[0].English != "dog" {
		t.Errorf("english = %q, want %q", words[0].English, "dog")
	}
}

func TestWordRandomFiltersAndTruncates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWords(t, s, sampleCatalog())

	words, total, err := s.WordRepo().Random(ctx, catalog.LevelJHS1, 2)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if total != 3 {
		t.Errorf("pool total = %d, want 3", total)
	}
	if len(words) != 2 {
		t.Errorf("len = %d, want 2", len(words))
	}
	for _, w := range words {
		if w.Level != catalog.LevelJHS1 {
			t.Errorf("word %q has level %v, want 中1", w.English, w.Level)
		}
	}

	// Asking for more than the pool returns the whole pool.
	words, total, err = s.WordRepo().Random(ctx, catalog.LevelJHS3, 50)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if total != 1 || len(words) != 1 {
		t.Errorf("total = %d, len = %d, want 1 and 1", total, len(words))
	}
}

func TestWordRandomAllLevels(t *testing.T) {
	s := openTestStore(t)
	seedWords(t, s, sampleCatalog())

	words, total, err := s.WordRepo().Random(context.Background(), catalog.LevelAny, 100)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if total != 6 || len(words) != 6 {
		t.Errorf("total = %d, len = %d, want 6 and 6", total, len(words))
	}
}

func TestWordListSearch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWords(t, s, sampleCatalog())

	tests := []struct {
		name  string
		opts  ListOpts
		want  int
		first string
	}{
		{"english substring", ListOpts{Search: "cul"}, 1, "culture"},
		{"case insensitive", ListOpts{Search: "CAT"}, 1, "cat"},
		{"japanese substring", ListOpts{Search: "本"}, 1, "book"},
		{"level filter", ListOpts{Level: catalog.LevelJHS2}, 2, "believe"},
		{"no match", ListOpts{Search: "zzz"}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, total, err := s.WordRepo().List(ctx, tt.opts)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if total != tt.want {
				t.Errorf("total = %d, want %d", total, tt.want)
			}
			if tt.want > 0 && words[0].English != tt.first {
				t.Errorf("first = %q, want %q", words[0].English, tt.first)
			}
		})
	}
}

func TestWordListPagination(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWords(t, s, sampleCatalog())

	words, total, err := s.WordRepo().List(ctx, ListOpts{Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 6 {
		t.Errorf("total = %d, want 6 (pre-pagination count)", total)
	}
	if len(words) != 2 {
		t.Errorf("page len = %d, want 2", len(words))
	}
}

func TestWordCountPerLevel(t *testing.T) {
	s := openTestStore(t)
	seedWords(t, s, sampleCatalog())

	counts, err := s.WordRepo().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	want := map[string]int{"中1": 3, "中2": 2, "中3": 1}
	for label, n := range want {
		if counts[label] != n {
			t.Errorf("count[%s] = %d, want %d", label, counts[label], n)
		}
	}
}

func TestStatUpsertCreateThenUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWords(t, s, sampleCatalog())
	repo := s.StatRepo()

	// First result creates the row.
	err := repo.Upsert(ctx, "u1", StatUpdate{WordID: 1, Status: StatusMastered, Correct: true})
	if err != nil {
		t.Fatalf("upsert create: %v", err)
	}
	// Second result updates it, incrementing exactly one counter.
	err = repo.Upsert(ctx, "u1", StatUpdate{WordID: 1, Status: StatusLearning, Correct: false})
	if err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	stats, err := repo.ListRecent(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stat rows = %d, want 1 (upsert must not duplicate)", len(stats))
	}
	st := stats[0]
	if st.CorrectCount != 1 || st.IncorrectCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", st.CorrectCount, st.IncorrectCount)
	}
	if st.Status != StatusLearning {
		t.Errorf("status = %q, want %q (latest result wins)", st.Status, StatusLearning)
	}
}

func TestStatGuestIsNoop(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.StatRepo()

	if err := repo.Upsert(ctx, "", StatUpdate{WordID: 1, Status: StatusMastered, Correct: true}); err != nil {
		t.Fatalf("guest upsert: %v", err)
	}
	count, err := s.Client().UserWordStat.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("guest wrote %d rows, want 0", count)
	}
}

func TestStatTotalsAndReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.StatRepo()

	updates := []StatUpdate{
		{WordID: 1, Status: StatusMastered, Correct: true},
		{WordID: 2, Status: StatusMastered, Correct: true},
		{WordID: 3, Status: StatusLearning, Correct: false},
	}
	for _, u := range updates {
		if err := repo.Upsert(ctx, "u1", u); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	// Another learner's rows must not leak into u1's totals.
	if err := repo.Upsert(ctx, "u2", StatUpdate{WordID: 1, Status: StatusLearning, Correct: false}); err != nil {
		t.Fatalf("upsert u2: %v", err)
	}

	studied, mastered, accuracy, err := repo.Totals(ctx, "u1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if studied != 3 || mastered != 2 {
		t.Errorf("studied/mastered = %d/%d, want 3/2", studied, mastered)
	}
	if accuracy != 67 {
		t.Errorf("accuracy = %d, want 67", accuracy)
	}

	if err := repo.Reset(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	studied, _, _, err = repo.Totals(ctx, "u1")
	if err != nil {
		t.Fatalf("totals after reset: %v", err)
	}
	if studied != 0 {
		t.Errorf("studied after reset = %d, want 0", studied)
	}
	// u2 survives u1's reset.
	studied, _, _, err = repo.Totals(ctx, "u2")
	if err != nil {
		t.Fatalf("totals u2: %v", err)
	}
	if studied != 1 {
		t.Errorf("u2 studied = %d, want 1", studied)
	}
}

func TestEventAppendAndOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "sess-1",
		UserID:        "u1",
		Action:        "start",
		Mode:          "quiz",
		Level:         catalog.LevelJHS1,
		RequestedSize: 10,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}
	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:     "sess-1",
		WordID:        1,
		English:       "apple",
		CorrectAnswer: "りんご",
		LearnerAnswer: "りんご",
		Correct:       true,
		Resolution:    "answered",
		TimeUnits:     4,
	})
	if err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	// Timeout: no learner answer.
	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:     "sess-1",
		WordID:        2,
		English:       "book",
		CorrectAnswer: "本",
		Correct:       false,
		Resolution:    "timed_out",
		TimeUnits:     10,
	})
	if err != nil {
		t.Fatalf("append timeout event: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	aes, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answer events: %v", err)
	}
	if len(aes) != 2 {
		t.Fatalf("answer events = %d, want 2", len(aes))
	}

	// The shared counter orders events across both tables.
	seqs := []int64{se.Sequence, aes[0].Sequence, aes[1].Sequence}
	seen := make(map[int64]bool)
	for _, q := range seqs {
		if seen[q] {
			t.Errorf("duplicate sequence %d across event tables", q)
		}
		seen[q] = true
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		UserID:    "u1",
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Words: map[int]FlashWordProgress{
				7: {Learned: true, StudyCount: 3, LastStudiedAt: now},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	w, ok := snap.Data.Words[7]
	if !ok {
		t.Fatal("expected word 7 in snapshot data")
	}
	if !w.Learned || w.StudyCount != 3 {
		t.Errorf("word 7 = %+v, want learned with 3 studies", w)
	}

	// Snapshots are per learner.
	snap, err = repo.Latest(ctx, "u2")
	if err != nil {
		t.Fatalf("latest u2: %v", err)
	}
	if snap != nil {
		t.Error("u2 must not see u1's snapshot")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:   "u1",
			Sequence: int64(i + 1),
			Data:     SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, "u1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:   "u1",
			Sequence: int64(i + 1),
			Data:     SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "u1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"words", "user_word_stats", "session_events", "answer_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
