package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/progress"
	"github.com/fujioka8700/eitan/internal/router"
	"github.com/fujioka8700/eitan/internal/screen"
	"github.com/fujioka8700/eitan/internal/screens/summary"
	"github.com/fujioka8700/eitan/internal/store"
	"github.com/fujioka8700/eitan/internal/ui/layout"
)

// unitDuration is the wall-clock length of one timer unit.
const unitDuration = time.Second

// SessionScreen implements screen.Screen for an active study session.
type SessionScreen struct {
	st   *store.Store
	rec  *progress.Recorder
	ctrl *drill.Controller
	spec drill.Spec

	loading     bool
	quitConfirm bool
	mcSelected  int
	errMsg      string

	// persisted tracks which outcomes already reached the recorder, so
	// the end-of-session sweep never writes an item twice.
	persisted map[int]bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscHandler = (*SessionScreen)(nil)

// New creates a session screen for the given spec.
func New(st *store.Store, userID string, spec drill.Spec) *SessionScreen {
	return &SessionScreen{
		st:        st,
		rec:       progress.NewRecorder(userID, st),
		ctrl:      drill.New(spec),
		spec:      spec,
		loading:   true,
		persisted: make(map[int]bool),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.loadPool()
}

func (s *SessionScreen) Title() string {
	if s.spec.Mode == drill.ModeFlashcard {
		return "フラッシュカード"
	}
	return "クイズ"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.spec.Mode == drill.ModeFlashcard {
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "M", Description: "Learned"},
			{Key: "←→", Description: "Prev/Next"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

// OwnsEsc routes Esc through the quit confirmation instead of popping
// the screen mid-session.
func (s *SessionScreen) OwnsEsc() bool {
	return true
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolLoadedMsg:
		return s.handlePoolLoaded(msg)
	case tickMsg:
		return s.handleTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// loadPool fetches the word pool asynchronously so a slow database
// never blocks the first frame.
func (s *SessionScreen) loadPool() tea.Cmd {
	spec := s.spec
	repo := s.st.WordRepo()
	return func() tea.Msg {
		words, _, err := repo.Random(context.Background(), spec.Level, spec.RequestedSize)
		if err != nil {
			return poolLoadedMsg{Err: errors.Join(drill.ErrPoolUnavailable, err)}
		}
		return poolLoadedMsg{Words: words}
	}
}

func (s *SessionScreen) handlePoolLoaded(msg poolLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = "単語の読み込みに失敗しました"
		return s, nil
	}

	if err := s.ctrl.Start(msg.Words); err != nil {
		if errors.Is(err, drill.ErrEmptyPool) {
			s.errMsg = "この条件に合う単語がありません"
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}

	ctx := context.Background()
	if s.spec.Mode == drill.ModeFlashcard {
		_ = s.rec.LoadFlash(ctx)
	}
	_ = s.rec.SessionStarted(ctx, s.spec)

	return s, s.tickCmd()
}

// tickCmd schedules exactly one tick carrying the current cancellation
// token. Only the tick handler reschedules, so at most one tick is ever
// in flight and the stream can never double up.
func (s *SessionScreen) tickCmd() tea.Cmd {
	gen := s.ctrl.Gen()
	return tea.Tick(unitDuration, func(time.Time) tea.Msg {
		return tickMsg{Gen: gen}
	})
}

func (s *SessionScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	res := s.ctrl.Tick(msg.Gen)

	if res.TimedOut != nil {
		s.persistOutcome(*res.TimedOut)
	}
	if res.Finished {
		return s, s.finishSession("end")
	}
	if s.ctrl.View().Phase != drill.PhaseActive {
		return s, nil
	}
	return s, s.tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.loading {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			s.ctrl.Abort()
			return s, s.finishSession("abort")
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.spec.Mode == drill.ModeQuiz {
		return s.handleQuizKey(key)
	}
	return s.handleFlashKey(key)
}

func (s *SessionScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	v := s.ctrl.View()
	if v.Phase != drill.PhaseActive || v.InFeedback {
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
		}
	case "down", "j":
		if s.mcSelected < len(v.Options)-1 {
			s.mcSelected++
		}
	case "enter":
		return s.submitChoice(s.mcSelected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(v.Options) {
			return s.submitChoice(idx)
		}
	}
	return s, nil
}

func (s *SessionScreen) submitChoice(idx int) (screen.Screen, tea.Cmd) {
	v := s.ctrl.View()
	if idx < 0 || idx >= len(v.Options) {
		return s, nil
	}
	o, err := s.ctrl.Resolve(v.Index, v.Options[idx])
	if err != nil {
		// The timer won the race; nothing to record.
		return s, nil
	}
	s.mcSelected = 0
	s.persistOutcome(*o)
	return s, nil
}

func (s *SessionScreen) handleFlashKey(key string) (screen.Screen, tea.Cmd) {
	v := s.ctrl.View()
	if v.Phase != drill.PhaseActive {
		return s, nil
	}

	switch key {
	case " ", "space", "enter":
		_ = s.ctrl.Flip(v.Index)
	case "m", "M":
		o, res, err := s.ctrl.MarkLearned(v.Index)
		if err != nil {
			return s, nil
		}
		s.persistOutcome(*o)
		if res.Finished {
			return s, s.finishSession("end")
		}
	case "right", "l", "n":
		res, err := s.ctrl.Navigate(+1)
		if err == nil && res.Finished {
			return s, s.finishSession("end")
		}
	case "left", "h", "p":
		_, _ = s.ctrl.Navigate(-1)
	}
	return s, nil
}

// persistOutcome records one resolved item, at most once per word.
func (s *SessionScreen) persistOutcome(o drill.Outcome) {
	if s.persisted[o.WordID] {
		return
	}
	s.persisted[o.WordID] = true
	_ = s.rec.RecordOutcome(context.Background(), s.spec.Mode, o)
}

// finishSession sweeps unpersisted outcomes, records the end event, and
// swaps in the summary screen. Ending a session must not be returnable
// with Esc, so this replaces rather than pushes.
func (s *SessionScreen) finishSession(action string) tea.Cmd {
	ctx := context.Background()

	for _, o := range s.ctrl.Outcomes() {
		s.persistOutcome(o)
	}

	sum := s.ctrl.Summary()
	if action == "abort" {
		_ = s.rec.SessionAborted(ctx, s.spec, sum)
	} else {
		_ = s.rec.SessionFinished(ctx, s.spec, sum)
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(s.spec, sum, action == "abort"),
		}
	}
}
