package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fujioka8700/eitan/internal/catalog"
	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/router"
	"github.com/fujioka8700/eitan/internal/screen"
	"github.com/fujioka8700/eitan/internal/screens/session"
	"github.com/fujioka8700/eitan/internal/store"
	"github.com/fujioka8700/eitan/internal/ui/layout"
	"github.com/fujioka8700/eitan/internal/ui/theme"
)

// step is the configuration stage the learner is on.
type step int

const (
	stepLevel step = iota
	stepSize
)

// QuizSizes and FlashSizes are the selectable session lengths.
var (
	QuizSizes  = []int{10, 30, 50}
	FlashSizes = []int{10, 30, 50, 100}
)

// SetupScreen configures a session before it starts: level filter
// first, then word count.
type SetupScreen struct {
	st     *store.Store
	userID string
	mode   drill.Mode

	step     step
	levels   []catalog.Level
	sizes    []int
	levelIdx int
	sizeIdx  int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.EscHandler = (*SetupScreen)(nil)

// New creates a setup screen for the mode.
func New(st *store.Store, userID string, mode drill.Mode) *SetupScreen {
	sizes := QuizSizes
	if mode == drill.ModeFlashcard {
		sizes = FlashSizes
	}
	return &SetupScreen{
		st:     st,
		userID: userID,
		mode:   mode,
		levels: append([]catalog.Level{catalog.LevelAny}, catalog.Levels()...),
		sizes:  sizes,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.mode == drill.ModeFlashcard {
		return "フラッシュカード設定"
	}
	return "クイズ設定"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.step == stepLevel && s.levelIdx > 0 {
			s.levelIdx--
		}
		if s.step == stepSize && s.sizeIdx > 0 {
			s.sizeIdx--
		}
	case "down", "j":
		if s.step == stepLevel && s.levelIdx < len(s.levels)-1 {
			s.levelIdx++
		}
		if s.step == stepSize && s.sizeIdx < len(s.sizes)-1 {
			s.sizeIdx++
		}
	case "enter":
		if s.step == stepLevel {
			s.step = stepSize
			return s, nil
		}
		return s, s.startSession()
	case "esc":
		if s.step == stepSize {
			s.step = stepLevel
		}
	}
	return s, nil
}

// OwnsEsc keeps Esc on the size step as "back to level" instead of
// leaving the screen.
func (s *SetupScreen) OwnsEsc() bool {
	return s.step == stepSize
}

// startSession swaps this screen for the running session, so finishing
// lands back on home rather than the half-filled setup form.
func (s *SetupScreen) startSession() tea.Cmd {
	spec := drill.Spec{
		Mode:          s.mode,
		Level:         s.levels[s.levelIdx],
		RequestedSize: s.sizes[s.sizeIdx],
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: session.New(s.st, s.userID, spec),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render(s.Title()))
	b.WriteString("\n\n")

	b.WriteString(s.renderLevelPicker(width))
	b.WriteString("\n")
	if s.step == stepSize {
		b.WriteString(s.renderSizePicker(width))
	}
	return b.String()
}

func (s *SetupScreen) renderLevelPicker(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("レベル"))
	b.WriteString("\n")

	for i, lvl := range s.levels {
		label := lvl.String()
		if lvl == catalog.LevelAny {
			label = "すべて"
		}
		b.WriteString(renderChoice(label, i == s.levelIdx, s.step == stepLevel))
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *SetupScreen) renderSizePicker(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("出題数"))
	b.WriteString("\n")

	for i, n := range s.sizes {
		b.WriteString(renderChoice(fmt.Sprintf("%d語", n), i == s.sizeIdx, true))
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderChoice(label string, selected, active bool) string {
	switch {
	case selected && active:
		return theme.Selected.Render("▸ " + label)
	case selected:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render("✓ " + label)
	default:
		return theme.Unselected.Render("  " + label)
	}
}
