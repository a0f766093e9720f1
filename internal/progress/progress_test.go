package progress

import (
	"context"
	"testing"
	"time"

	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFlashProgress_LearnedIsSticky(t *testing.T) {
	p := NewFlashProgress()
	now := time.Now()

	if !p.MarkStudied(7, true, now) {
		t.Error("first learn must report the transition")
	}
	if p.MarkStudied(7, true, now) {
		t.Error("re-mark must not report a transition")
	}
	if p.MarkStudied(7, false, now) {
		t.Error("plain study must not report a transition")
	}
	if !p.Learned(7) {
		t.Error("learned state must survive later plain studies")
	}
	if got := p.StudyCount(7); got != 3 {
		t.Errorf("study count = %d, want 3", got)
	}
}

func TestFlashProgress_SnapshotRoundTrip(t *testing.T) {
	p := NewFlashProgress()
	now := time.Now().UTC().Truncate(time.Second)
	p.MarkStudied(1, true, now)
	p.MarkStudied(2, false, now)

	restored := FromSnapshot(p.Data())
	if !restored.Learned(1) {
		t.Error("word 1 must be learned after restore")
	}
	if restored.Learned(2) {
		t.Error("word 2 must not be learned after restore")
	}
	if restored.Dirty() {
		t.Error("freshly restored progress must not be dirty")
	}
}

func TestRecorder_GuestPersistsNothing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	r := NewRecorder("", s)

	if !r.Guest() {
		t.Fatal("empty user id must select guest mode")
	}
	spec := drill.Spec{Mode: drill.ModeQuiz, RequestedSize: 10}
	if err := r.SessionStarted(ctx, spec); err != nil {
		t.Fatalf("session started: %v", err)
	}
	err := r.RecordOutcome(ctx, drill.ModeQuiz, drill.Outcome{
		WordID: 1, English: "apple", CorrectAnswer: "りんご",
		Correct: true, Resolution: drill.ResolutionAnswered,
	})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}
	if err := r.SessionFinished(ctx, spec, drill.Summary{TotalItems: 1, CorrectCount: 1, AccuracyPercent: 100}); err != nil {
		t.Fatalf("session finished: %v", err)
	}

	for name, count := range map[string]func() (int, error){
		"session events": func() (int, error) { return s.Client().SessionEvent.Query().Count(ctx) },
		"answer events":  func() (int, error) { return s.Client().AnswerEvent.Query().Count(ctx) },
		"stats":          func() (int, error) { return s.Client().UserWordStat.Query().Count(ctx) },
		"snapshots":      func() (int, error) { return s.Client().Snapshot.Query().Count(ctx) },
	} {
		n, err := count()
		if err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != 0 {
			t.Errorf("guest wrote %d %s, want 0", n, name)
		}
	}
}

func TestRecorder_QuizOutcomeWritesStatAndEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	r := NewRecorder("u1", s)

	err := r.RecordOutcome(ctx, drill.ModeQuiz, drill.Outcome{
		WordID: 1, English: "apple", Response: "りんご", CorrectAnswer: "りんご",
		Correct: true, ElapsedUnits: 4, Resolution: drill.ResolutionAnswered,
	})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}

	stats, err := s.StatRepo().ListRecent(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stat rows = %d, want 1", len(stats))
	}
	if stats[0].Status != store.StatusMastered {
		t.Errorf("status = %q, want %q", stats[0].Status, store.StatusMastered)
	}

	n, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 1 {
		t.Errorf("answer events = %d, want 1", n)
	}
}

func TestRecorder_QuizTimeoutKeepsLearning(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	r := NewRecorder("u1", s)

	err := r.RecordOutcome(ctx, drill.ModeQuiz, drill.Outcome{
		WordID: 2, English: "book", CorrectAnswer: "本",
		Correct: false, ElapsedUnits: 10, Resolution: drill.ResolutionTimedOut,
	})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}

	stats, err := s.StatRepo().ListRecent(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Status != store.StatusLearning {
		t.Fatalf("stats = %+v, want one learning row", stats)
	}
	if stats[0].IncorrectCount != 1 || stats[0].CorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 0/1", stats[0].CorrectCount, stats[0].IncorrectCount)
	}
}

func TestRecorder_MarkLearnedAtMostOnceDurable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	marked := drill.Outcome{
		WordID: 7, English: "cat", CorrectAnswer: "猫",
		Correct: true, Resolution: drill.ResolutionMarked,
	}

	// First session: the mark transitions the word and writes one stat.
	r1 := NewRecorder("u1", s)
	if err := r1.LoadFlash(ctx); err != nil {
		t.Fatalf("load flash: %v", err)
	}
	if err := r1.RecordOutcome(ctx, drill.ModeFlashcard, marked); err != nil {
		t.Fatalf("record: %v", err)
	}
	spec := drill.Spec{Mode: drill.ModeFlashcard, RequestedSize: 10}
	sum := drill.Summary{TotalItems: 1, CorrectCount: 1, AccuracyPercent: 100}
	if err := r1.SessionFinished(ctx, spec, sum); err != nil {
		t.Fatalf("finish: %v", err)
	}

	// Second session restores the learned set and re-marks the word.
	r2 := NewRecorder("u1", s)
	if err := r2.LoadFlash(ctx); err != nil {
		t.Fatalf("load flash: %v", err)
	}
	if !r2.Flash().Learned(7) {
		t.Fatal("learned state must survive across sessions")
	}
	if err := r2.RecordOutcome(ctx, drill.ModeFlashcard, marked); err != nil {
		t.Fatalf("re-record: %v", err)
	}
	if err := r2.SessionFinished(ctx, spec, sum); err != nil {
		t.Fatalf("finish: %v", err)
	}

	stats, err := s.StatRepo().ListRecent(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stat rows = %d, want 1", len(stats))
	}
	if got := stats[0].CorrectCount; got != 1 {
		t.Errorf("correct count = %d, want 1 (re-mark must not write)", got)
	}

	// Both marks still appear in the event log.
	n, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 2 {
		t.Errorf("answer events = %d, want 2", n)
	}
}

func TestRecorder_FlashTimeoutDoesNotLearn(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	r := NewRecorder("u1", s)

	err := r.RecordOutcome(ctx, drill.ModeFlashcard, drill.Outcome{
		WordID: 3, English: "dog", CorrectAnswer: "犬",
		Correct: false, ElapsedUnits: 5, Resolution: drill.ResolutionTimedOut,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if r.Flash().Learned(3) {
		t.Error("timeout must not mark the word learned")
	}
	if r.Flash().StudyCount(3) != 1 {
		t.Error("timeout still counts as a study")
	}
}

func TestRecorder_SessionLifecycleEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	r := NewRecorder("u1", s)

	spec := drill.Spec{Mode: drill.ModeQuiz, RequestedSize: 10}
	if err := r.SessionStarted(ctx, spec); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := r.SessionAborted(ctx, spec, drill.Summary{}); err != nil {
		t.Fatalf("abort: %v", err)
	}

	events, err := s.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("session events = %d, want 2", len(events))
	}
	actions := map[string]bool{}
	for _, e := range events {
		actions[e.Action] = true
		if e.SessionID != r.SessionID() {
			t.Errorf("session id = %q, want %q", e.SessionID, r.SessionID())
		}
	}
	if !actions["start"] || !actions["abort"] {
		t.Errorf("actions = %v, want start and abort", actions)
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		mode drill.Mode
		o    drill.Outcome
		want string
	}{
		{"quiz correct", drill.ModeQuiz, drill.Outcome{Correct: true}, store.StatusMastered},
		{"quiz wrong", drill.ModeQuiz, drill.Outcome{Correct: false}, store.StatusLearning},
		{"flash marked", drill.ModeFlashcard, drill.Outcome{Correct: true, Resolution: drill.ResolutionMarked}, store.StatusLearning},
		{"flash timeout", drill.ModeFlashcard, drill.Outcome{}, store.StatusLearning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.mode, tt.o); got != tt.want {
				t.Errorf("DeriveStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
