package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/router"
	"github.com/fujioka8700/eitan/internal/screen"
	"github.com/fujioka8700/eitan/internal/ui/layout"
	"github.com/fujioka8700/eitan/internal/ui/theme"
)

// SummaryScreen displays the results of a finished session.
type SummaryScreen struct {
	spec    drill.Spec
	summary drill.Summary
	aborted bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(spec drill.Spec, summary drill.Summary, aborted bool) *SummaryScreen {
	return &SummaryScreen{spec: spec, summary: summary, aborted: aborted}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "結果"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The session screen was replaced by this one, so a single
			// pop lands back on the screen that launched the session.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	title := "おつかれさまでした!"
	if s.aborted {
		title = "セッションを中断しました"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("出題: %d        正解: %d        正答率: %d%%",
		sum.TotalItems, sum.CorrectCount, sum.AccuracyPercent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("単語")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-word results in item order.
	var rows strings.Builder
	for _, o := range sum.Outcomes {
		rows.WriteString(renderOutcomeRow(o))
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter でホームに戻る"))

	return b.String()
}

func renderOutcomeRow(o drill.Outcome) string {
	var mark string
	switch {
	case o.Resolution == drill.ResolutionTimedOut:
		mark = lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱")
	case o.Correct:
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	default:
		mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}

	word := lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("%-18s", o.English))
	answer := lipgloss.NewStyle().Foreground(theme.TextDim).Render(o.CorrectAnswer)
	return fmt.Sprintf("%s  %s %s", mark, word, answer)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
