package drill

import (
	"errors"
	"testing"

	"github.com/fujioka8700/eitan/internal/catalog"
)

func quizController(t *testing.T, poolSize, requested int) *Controller {
	t.Helper()
	c := New(Spec{Mode: ModeQuiz, Level: catalog.LevelJHS1, RequestedSize: requested}, WithRand(testRand()))
	if err := c.Start(testWords(poolSize)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return c
}

func flashController(t *testing.T, poolSize, requested int) *Controller {
	t.Helper()
	c := New(Spec{Mode: ModeFlashcard, Level: catalog.LevelAny, RequestedSize: requested}, WithRand(testRand()))
	if err := c.Start(testWords(poolSize)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return c
}

// tickUntilAutoAdvance drives the clock of the current item through expiry
// and grace, returning the result of the auto-advance tick.
func tickUntilAutoAdvance(t *testing.T, c *Controller, units int) TickResult {
	t.Helper()
	for i := 0; i < units; i++ {
		res := c.Tick(c.Gen())
		if res.Stale {
			t.Fatalf("tick %d unexpectedly stale", i)
		}
		if i == units-1 && !res.Expired {
			t.Fatalf("tick %d: expected expiry at zero", i)
		}
	}
	return c.Tick(c.Gen())
}

func TestStart_EmptyPool(t *testing.T) {
	c := New(Spec{Mode: ModeQuiz, RequestedSize: 10})
	err := c.Start(nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
	if c.View().Phase != PhaseConfiguring {
		t.Error("failed start must leave the session in PhaseConfiguring")
	}
}

func TestStart_SnapshotTruncatesToPool(t *testing.T) {
	c := quizController(t, 12, 50)
	if got := c.View().Total; got != 12 {
		t.Errorf("Total = %d, want 12", got)
	}
}

func TestStart_InvalidSize(t *testing.T) {
	c := New(Spec{Mode: ModeQuiz, RequestedSize: 0})
	if err := c.Start(testWords(5)); err == nil {
		t.Error("expected validation error for zero size")
	}
}

func TestConfigure_BeforeStartOnly(t *testing.T) {
	c := New(Spec{Mode: ModeQuiz, RequestedSize: 10})
	if err := c.Configure(Spec{Mode: ModeFlashcard, RequestedSize: 5}); err != nil {
		t.Fatalf("Configure before start: %v", err)
	}
	if err := c.Start(testWords(5)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.Configure(Spec{Mode: ModeQuiz, RequestedSize: 3}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Configure after start: err = %v, want ErrInvalidTransition", err)
	}
}

func TestQuiz_FullRun_ExactPool(t *testing.T) {
	c := quizController(t, 3, 3)

	seen := make(map[int]bool)
	for i := 0; i < 3; i++ {
		v := c.View()
		if v.Phase != PhaseActive {
			t.Fatalf("item %d: phase = %v, want PhaseActive", i, v.Phase)
		}
		if seen[v.Word.ID] {
			t.Fatalf("word %d presented twice", v.Word.ID)
		}
		seen[v.Word.ID] = true

		o, err := c.Resolve(v.Index, v.Word.Japanese)
		if err != nil {
			t.Fatalf("Resolve item %d: %v", i, err)
		}
		if !o.Correct {
			t.Fatalf("item %d: expected correct outcome", i)
		}

		// Feedback lasts two units, then the session advances.
		res := c.Tick(c.Gen())
		if res.Advanced || res.Finished {
			t.Fatalf("item %d: advanced after one feedback unit", i)
		}
		res = c.Tick(c.Gen())
		if i < 2 && !res.Advanced {
			t.Fatalf("item %d: expected advance after feedback", i)
		}
		if i == 2 && !res.Finished {
			t.Fatal("expected session to finish after last item")
		}
	}

	sum := c.Summary()
	if sum.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", sum.TotalItems)
	}
	if sum.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", sum.CorrectCount)
	}
	if sum.AccuracyPercent != 100 {
		t.Errorf("AccuracyPercent = %d, want 100", sum.AccuracyPercent)
	}
}

func TestQuiz_TimeoutSynthesizesOutcome(t *testing.T) {
	c := quizController(t, 5, 2)

	res := tickUntilAutoAdvance(t, c, QuizItemUnits)
	if res.TimedOut == nil {
		t.Fatal("expected a synthesized timeout outcome")
	}
	if res.TimedOut.Correct {
		t.Error("timeout outcome must be incorrect")
	}
	if res.TimedOut.Response != "" {
		t.Errorf("timeout response = %q, want empty", res.TimedOut.Response)
	}
	if res.TimedOut.Resolution != ResolutionTimedOut {
		t.Errorf("resolution = %v, want ResolutionTimedOut", res.TimedOut.Resolution)
	}
	if res.TimedOut.ElapsedUnits != QuizItemUnits {
		t.Errorf("elapsed = %d, want %d", res.TimedOut.ElapsedUnits, QuizItemUnits)
	}
	if !res.Advanced {
		t.Error("expected advance after auto-advance")
	}
}

func TestQuiz_ManualResolveCancelsTimer(t *testing.T) {
	c := quizController(t, 5, 2)

	staleGen := c.Gen()
	v := c.View()
	if _, err := c.Resolve(v.Index, v.Word.Japanese); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// A tick scheduled before the resolve arrives late: it must be dropped.
	res := c.Tick(staleGen)
	if !res.Stale {
		t.Error("tick with cancelled token must be stale")
	}
	if n := len(c.Outcomes()); n != 1 {
		t.Errorf("outcome count = %d, want 1 (no double resolution)", n)
	}
}

func TestQuiz_TimerWinsRace(t *testing.T) {
	c := quizController(t, 5, 2)

	res := tickUntilAutoAdvance(t, c, QuizItemUnits)
	if res.TimedOut == nil {
		t.Fatal("expected timeout outcome")
	}

	// Manual resolution of item 0 arrives after the timer already won.
	v := c.View()
	if _, err := c.Resolve(0, v.Word.Japanese); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("late resolve err = %v, want ErrInvalidTransition", err)
	}
	if n := len(c.Outcomes()); n != 1 {
		t.Errorf("outcome count = %d, want 1", n)
	}
}

func TestQuiz_ResolveDuringFeedbackRejected(t *testing.T) {
	c := quizController(t, 5, 2)
	v := c.View()
	if _, err := c.Resolve(v.Index, "x"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, err := c.Resolve(v.Index, "y"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second resolve err = %v, want ErrInvalidTransition", err)
	}
}

func TestQuiz_CompletedLogHasOneOutcomePerItem(t *testing.T) {
	c := quizController(t, 8, 5)

	for c.View().Phase == PhaseActive {
		v := c.View()
		if !v.InFeedback && !v.Resolved {
			// Answer wrong on purpose; content does not matter here.
			if _, err := c.Resolve(v.Index, "まちがい"); err != nil {
				t.Fatalf("Resolve: %v", err)
			}
		}
		c.Tick(c.Gen())
	}

	outcomes := c.Outcomes()
	if len(outcomes) != 5 {
		t.Fatalf("log length = %d, want 5", len(outcomes))
	}
	seen := make(map[int]bool)
	for _, o := range outcomes {
		if seen[o.WordID] {
			t.Fatalf("duplicate outcome for word %d", o.WordID)
		}
		seen[o.WordID] = true
	}
}

func TestQuiz_OptionsRerolledPerQuestion(t *testing.T) {
	c := quizController(t, 10, 4)
	first := append([]string(nil), c.View().Options...)

	v := c.View()
	if _, err := c.Resolve(v.Index, v.Word.Japanese); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	c.Tick(c.Gen())
	c.Tick(c.Gen())

	v2 := c.View()
	if len(v2.Options) != 4 {
		t.Fatalf("second question has %d options, want 4", len(v2.Options))
	}
	// Options are rolled for the question being presented: the new target's
	// translation must appear, and appear exactly once.
	hits := 0
	for _, opt := range v2.Options {
		if opt == v2.Word.Japanese {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("new target's answer appears %d times, want 1", hits)
	}
	if len(first) != 4 {
		t.Errorf("first question had %d options, want 4", len(first))
	}
}

func TestFlash_FlipIsDisplayOnly(t *testing.T) {
	c := flashController(t, 5, 3)
	if err := c.Flip(0); err != nil {
		t.Fatalf("Flip: %v", err)
	}
	v := c.View()
	if !v.Flipped {
		t.Error("expected card flipped")
	}
	if v.Resolved {
		t.Error("flip must not resolve the item")
	}
	if len(c.Outcomes()) != 0 {
		t.Error("flip must not produce an outcome")
	}
	if err := c.Flip(0); err != nil {
		t.Fatalf("Flip back: %v", err)
	}
	if c.View().Flipped {
		t.Error("expected card flipped back")
	}
}

func TestFlash_MarkLearnedResolvesAndAdvances(t *testing.T) {
	c := flashController(t, 5, 3)

	o, res, err := c.MarkLearned(0)
	if err != nil {
		t.Fatalf("MarkLearned: %v", err)
	}
	if !o.Correct || o.Resolution != ResolutionMarked {
		t.Errorf("outcome = %+v, want correct marked", o)
	}
	if !res.Advanced {
		t.Error("expected immediate advance (no feedback delay)")
	}
	if c.View().Index != 1 {
		t.Errorf("index = %d, want 1", c.View().Index)
	}
}

func TestFlash_MarkLearnedIdempotentPerItem(t *testing.T) {
	c := flashController(t, 5, 3)

	if _, _, err := c.MarkLearned(0); err != nil {
		t.Fatalf("MarkLearned: %v", err)
	}
	// Navigate back to the resolved card and mark again.
	if _, err := c.Navigate(-1); err != nil {
		t.Fatalf("Navigate back: %v", err)
	}
	_, _, err := c.MarkLearned(0)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second mark err = %v, want ErrInvalidTransition", err)
	}
	if n := len(c.Outcomes()); n != 1 {
		t.Errorf("outcome count = %d, want 1", n)
	}
}

func TestFlash_NavigationProducesNoOutcome(t *testing.T) {
	c := flashController(t, 5, 3)

	if _, err := c.Navigate(+1); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if _, err := c.Navigate(-1); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if len(c.Outcomes()) != 0 {
		t.Error("navigation must not produce outcomes")
	}
	if c.View().Index != 0 {
		t.Errorf("index = %d, want 0", c.View().Index)
	}
}

func TestFlash_PrevAtFirstCardNoop(t *testing.T) {
	c := flashController(t, 5, 3)
	res, err := c.Navigate(-1)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if res.Advanced || res.Finished {
		t.Error("prev at first card must be a no-op")
	}
}

func TestFlash_NavigationRearmsFreshTimer(t *testing.T) {
	c := flashController(t, 5, 3)
	c.Tick(c.Gen())
	c.Tick(c.Gen())
	if got := c.View().TimeRemaining; got != FlashItemUnits-2 {
		t.Fatalf("remaining = %d, want %d", got, FlashItemUnits-2)
	}
	if _, err := c.Navigate(+1); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got := c.View().TimeRemaining; got != FlashItemUnits {
		t.Errorf("remaining after navigate = %d, want fresh %d", got, FlashItemUnits)
	}
}

func TestFlash_TimeoutAutoAdvances(t *testing.T) {
	c := flashController(t, 5, 2)

	res := tickUntilAutoAdvance(t, c, FlashItemUnits)
	if res.TimedOut == nil {
		t.Fatal("expected timeout outcome for unmarked card")
	}
	if !res.Advanced {
		t.Error("expected advance to next card")
	}
}

func TestFlash_RevisitedResolvedCardTimeoutAddsNoOutcome(t *testing.T) {
	c := flashController(t, 5, 3)

	if _, _, err := c.MarkLearned(0); err != nil {
		t.Fatalf("MarkLearned: %v", err)
	}
	if _, err := c.Navigate(-1); err != nil {
		t.Fatalf("Navigate back: %v", err)
	}

	res := tickUntilAutoAdvance(t, c, FlashItemUnits)
	if res.TimedOut != nil {
		t.Error("resolved card must not get a second outcome on timeout")
	}
	if !res.Advanced {
		t.Error("auto-advance must still move on")
	}
	if n := len(c.Outcomes()); n != 1 {
		t.Errorf("outcome count = %d, want 1", n)
	}
}

func TestFlash_FinishSynthesizesSkippedItems(t *testing.T) {
	c := flashController(t, 5, 3)

	// Mark the first card; skip the rest via navigation.
	if _, _, err := c.MarkLearned(0); err != nil {
		t.Fatalf("MarkLearned: %v", err)
	}
	if _, err := c.Navigate(+1); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	res, err := c.Navigate(+1)
	if err != nil {
		t.Fatalf("Navigate past last: %v", err)
	}
	if !res.Finished {
		t.Fatal("expected session to finish past the last card")
	}

	outcomes := c.Outcomes()
	if len(outcomes) != 3 {
		t.Fatalf("log length = %d, want 3 (one per item)", len(outcomes))
	}
	marked, timedOut := 0, 0
	for _, o := range outcomes {
		switch o.Resolution {
		case ResolutionMarked:
			marked++
		case ResolutionTimedOut:
			timedOut++
		}
	}
	if marked != 1 || timedOut != 2 {
		t.Errorf("marked = %d, timedOut = %d, want 1 and 2", marked, timedOut)
	}
}

func TestAbort_CancelsWithoutSynthesis(t *testing.T) {
	c := quizController(t, 5, 3)
	gen := c.Gen()
	c.Abort()

	if c.View().Phase != PhaseFinished {
		t.Error("expected PhaseFinished after abort")
	}
	if res := c.Tick(gen); !res.Stale {
		t.Error("ticks after abort must be stale")
	}
	if len(c.Outcomes()) != 0 {
		t.Error("abort must not synthesize outcomes")
	}
	if got := c.Summary().AccuracyPercent; got != 0 {
		t.Errorf("accuracy of empty log = %d, want 0", got)
	}
}

func TestSummary_Rounding(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := accuracyPercent(tt.correct, tt.total); got != tt.want {
			t.Errorf("accuracyPercent(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
