package session

import (
	"context"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fujioka8700/eitan/internal/catalog"
	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/router"
	"github.com/fujioka8700/eitan/internal/screen"
	"github.com/fujioka8700/eitan/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	words := []catalog.Word{
		{English: "apple", Japanese: "りんご", Level: catalog.LevelJHS1},
		{English: "book", Japanese: "本", Level: catalog.LevelJHS1},
		{English: "cat", Japanese: "猫", Level: catalog.LevelJHS1},
		{English: "believe", Japanese: "信じる", Level: catalog.LevelJHS2},
		{English: "culture", Japanese: "文化", Level: catalog.LevelJHS2},
		{English: "environment", Japanese: "環境", Level: catalog.LevelJHS3},
	}
	if _, err := st.WordRepo().Import(context.Background(), words); err != nil {
		t.Fatalf("seed words: %v", err)
	}
	return st
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// startedScreen builds a session screen and walks it through pool load, so
// the drill is active when the test takes over.
func startedScreen(t *testing.T, mode drill.Mode, size int) *SessionScreen {
	t.Helper()
	st := openTestStore(t)
	s := New(st, "", drill.Spec{Mode: mode, Level: catalog.LevelAny, RequestedSize: size})

	msg := s.Init()()
	loaded, ok := msg.(poolLoadedMsg)
	if !ok {
		t.Fatalf("Init produced %T, want poolLoadedMsg", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("pool load failed: %v", loaded.Err)
	}
	scr, _ := s.Update(loaded)
	return scr.(*SessionScreen)
}

// tick delivers one timer unit using the controller's current token.
func tick(s *SessionScreen) (screen.Screen, tea.Cmd) {
	return s.Update(tickMsg{Gen: s.ctrl.Gen()})
}

func TestSessionScreen_Title(t *testing.T) {
	st := openTestStore(t)

	quiz := New(st, "", drill.Spec{Mode: drill.ModeQuiz, RequestedSize: 10})
	if quiz.Title() != "クイズ" {
		t.Errorf("quiz Title = %q, want %q", quiz.Title(), "クイズ")
	}

	flash := New(st, "", drill.Spec{Mode: drill.ModeFlashcard, RequestedSize: 10})
	if flash.Title() != "フラッシュカード" {
		t.Errorf("flash Title = %q, want %q", flash.Title(), "フラッシュカード")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	st := openTestStore(t)
	s := New(st, "", drill.Spec{Mode: drill.ModeQuiz, RequestedSize: 10})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestSessionScreen_PoolError(t *testing.T) {
	st := openTestStore(t)
	s := New(st, "", drill.Spec{Mode: drill.ModeQuiz, RequestedSize: 10})

	scr, _ := s.Update(poolLoadedMsg{Err: drill.ErrPoolUnavailable})
	ss := scr.(*SessionScreen)
	if ss.errMsg == "" {
		t.Fatal("expected error message after failed pool load")
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty view for error state")
	}

	// Any key goes back.
	_, cmd := ss.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after key press in error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from error state")
	}
}

func TestSessionScreen_EmptyPool(t *testing.T) {
	st := openTestStore(t)
	s := New(st, "", drill.Spec{Mode: drill.ModeQuiz, RequestedSize: 10})

	scr, _ := s.Update(poolLoadedMsg{Words: nil})
	ss := scr.(*SessionScreen)
	if ss.errMsg != "この条件に合う単語がありません" {
		t.Errorf("errMsg = %q, want empty pool message", ss.errMsg)
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.quitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
	if ss.ctrl.View().Phase != drill.PhaseActive {
		t.Error("dismissing the dialog must keep the session active")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the summary screen")
	}

	ss := scr.(*SessionScreen)
	if ss.ctrl.View().Phase != drill.PhaseFinished {
		t.Error("confirming quit must finish the session")
	}
}

func TestSessionScreen_QuizAnswer(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)
	v := s.ctrl.View()

	correct := -1
	for i, opt := range v.Options {
		if opt == v.Word.Japanese {
			correct = i
		}
	}
	if correct < 0 {
		t.Fatal("correct answer missing from options")
	}

	scr, _ := s.Update(keyPress(rune('1' + correct)))
	ss := scr.(*SessionScreen)

	nv := ss.ctrl.View()
	if !nv.InFeedback {
		t.Error("expected feedback after answering")
	}
	if nv.LastOutcome == nil || !nv.LastOutcome.Correct {
		t.Error("expected a correct outcome")
	}
	if !ss.persisted[v.Word.ID] {
		t.Error("expected the outcome to be persisted")
	}
}

func TestSessionScreen_QuizWrongAnswer(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)
	v := s.ctrl.View()

	wrong := -1
	for i, opt := range v.Options {
		if opt != v.Word.Japanese {
			wrong = i
		}
	}

	scr, _ := s.Update(keyPress(rune('1' + wrong)))
	ss := scr.(*SessionScreen)

	nv := ss.ctrl.View()
	if nv.LastOutcome == nil || nv.LastOutcome.Correct {
		t.Error("expected an incorrect outcome")
	}
}

func TestSessionScreen_QuizSelectNavigation(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)

	scr, _ := s.Update(specialKey(tea.KeyDown))
	ss := scr.(*SessionScreen)
	if ss.mcSelected != 1 {
		t.Errorf("mcSelected = %d, want 1 after down", ss.mcSelected)
	}

	scr, _ = ss.Update(specialKey(tea.KeyUp))
	ss = scr.(*SessionScreen)
	if ss.mcSelected != 0 {
		t.Errorf("mcSelected = %d, want 0 after up", ss.mcSelected)
	}

	v := ss.ctrl.View()
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)
	if !ss.persisted[v.Word.ID] {
		t.Error("expected enter to submit the highlighted option")
	}
}

func TestSessionScreen_StaleTickIgnored(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)
	before := s.ctrl.View().TimeRemaining

	scr, cmd := s.Update(tickMsg{Gen: s.ctrl.Gen() - 1})
	ss := scr.(*SessionScreen)
	if got := ss.ctrl.View().TimeRemaining; got != before {
		t.Errorf("TimeRemaining = %d, want %d after stale tick", got, before)
	}
	// The stream continues with the current token.
	if cmd == nil {
		t.Error("a stale tick must still reschedule")
	}
}

func TestSessionScreen_FlashFlow(t *testing.T) {
	s := startedScreen(t, drill.ModeFlashcard, 2)
	v := s.ctrl.View()

	// Flip the first card.
	scr, _ := s.Update(keyPress(' '))
	ss := scr.(*SessionScreen)
	if !ss.ctrl.View().Flipped {
		t.Error("expected card to be flipped")
	}

	// Mark it learned; the session advances and the outcome persists.
	scr, _ = ss.Update(keyPress('m'))
	ss = scr.(*SessionScreen)
	if !ss.persisted[v.Word.ID] {
		t.Error("expected marked card to be persisted")
	}
	if ss.ctrl.View().Index != 1 {
		t.Errorf("Index = %d, want 1 after marking", ss.ctrl.View().Index)
	}

	// Step back to the resolved card and forward again.
	scr, _ = ss.Update(specialKey(tea.KeyLeft))
	ss = scr.(*SessionScreen)
	if ss.ctrl.View().Index != 0 {
		t.Errorf("Index = %d, want 0 after left", ss.ctrl.View().Index)
	}
	scr, _ = ss.Update(specialKey(tea.KeyRight))
	ss = scr.(*SessionScreen)
	if ss.ctrl.View().Index != 1 {
		t.Errorf("Index = %d, want 1 after right", ss.ctrl.View().Index)
	}
}

func TestSessionScreen_FlashTimeoutFinishes(t *testing.T) {
	s := startedScreen(t, drill.ModeFlashcard, 1)

	var cmd tea.Cmd
	var scr screen.Screen = s
	for i := 0; i < drill.FlashItemUnits+1; i++ {
		scr, cmd = tick(scr.(*SessionScreen))
	}

	ss := scr.(*SessionScreen)
	if ss.ctrl.View().Phase != drill.PhaseFinished {
		t.Fatal("expected session to finish after the last card times out")
	}
	if cmd == nil {
		t.Fatal("expected a command on finish")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the summary screen")
	}

	outcomes := ss.ctrl.Outcomes()
	if len(outcomes) != 1 {
		t.Fatalf("outcomes = %d, want 1", len(outcomes))
	}
	if outcomes[0].Resolution != drill.ResolutionTimedOut {
		t.Errorf("resolution = %v, want timed out", outcomes[0].Resolution)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	for _, mode := range []drill.Mode{drill.ModeQuiz, drill.ModeFlashcard} {
		t.Run(mode.String(), func(t *testing.T) {
			s := startedScreen(t, mode, 2)
			if len(s.KeyHints()) == 0 {
				t.Error("expected non-empty key hints")
			}

			scr, _ := s.Update(specialKey(tea.KeyEscape))
			ss := scr.(*SessionScreen)
			hints := ss.KeyHints()
			if len(hints) != 2 {
				t.Errorf("quit confirm hints = %d, want 2", len(hints))
			}
		})
	}
}

func TestSessionScreen_ViewDuringDrill(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty quiz view")
	}

	f := startedScreen(t, drill.ModeFlashcard, 3)
	if f.View(80, 24) == "" {
		t.Error("expected non-empty flashcard view")
	}
}

func TestSessionScreen_DigitOutOfRange(t *testing.T) {
	s := startedScreen(t, drill.ModeQuiz, 3)
	options := len(s.ctrl.View().Options)

	// Pressing a digit beyond the option count must do nothing.
	key := strconv.Itoa(options + 1)
	scr, _ := s.Update(keyPress(rune(key[0])))
	ss := scr.(*SessionScreen)
	if len(ss.persisted) != 0 {
		t.Error("out of range digit must not resolve anything")
	}
}
