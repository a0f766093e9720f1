package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fujioka8700/eitan/internal/screen"
	"github.com/fujioka8700/eitan/internal/store"
	"github.com/fujioka8700/eitan/internal/ui/layout"
	"github.com/fujioka8700/eitan/internal/ui/theme"
)

// recentLimit bounds the recently-studied list.
const recentLimit = 100

// statsLoadedMsg delivers the learner's aggregates and recent words.
type statsLoadedMsg struct {
	Studied  int
	Mastered int
	Accuracy int
	Recent   []store.WordStat
	Err      error
}

// StatsScreen shows the learner's study record.
type StatsScreen struct {
	st     *store.Store
	userID string

	loaded   bool
	studied  int
	mastered int
	accuracy int
	recent   []store.WordStat
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(st *store.Store, userID string) *StatsScreen {
	return &StatsScreen{st: st, userID: userID}
}

func (s *StatsScreen) Init() tea.Cmd {
	repo := s.st.StatRepo()
	userID := s.userID
	return func() tea.Msg {
		ctx := context.Background()
		studied, mastered, accuracy, err := repo.Totals(ctx, userID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		recent, err := repo.ListRecent(ctx, userID, recentLimit)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{
			Studied:  studied,
			Mastered: mastered,
			Accuracy: accuracy,
			Recent:   recent,
		}
	}
}

func (s *StatsScreen) Title() string {
	return "学習記録"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = "学習記録を読み込めませんでした"
			return s, nil
		}
		s.loaded = true
		s.studied = m.Studied
		s.mastered = m.Mastered
		s.accuracy = m.Accuracy
		s.recent = m.Recent
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n読み込み中...")
	}

	var b strings.Builder
	b.WriteString("\n")

	statsLine := fmt.Sprintf("学習した単語: %d        習得済み: %d        正答率: %d%%",
		s.studied, s.mastered, s.accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(statsLine))
	b.WriteString("\n\n")

	if len(s.recent) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("まだ学習記録がありません"))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("最近学習した単語")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	shown := s.recent
	maxRows := height - 8
	if maxRows > 0 && len(shown) > maxRows {
		shown = shown[:maxRows]
	}

	var rows strings.Builder
	for _, st := range shown {
		rows.WriteString(renderStatRow(st))
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	return b.String()
}

func renderStatRow(st store.WordStat) string {
	status := lipgloss.NewStyle().Foreground(theme.Secondary).Render(st.Status)
	if st.Status == store.StatusMastered {
		status = lipgloss.NewStyle().Foreground(theme.Success).Render(st.Status)
	}

	english := st.English
	if english == "" {
		english = fmt.Sprintf("(#%d)", st.WordID)
	}

	return fmt.Sprintf("%s  %-18s %-12s %s",
		status,
		lipgloss.NewStyle().Foreground(theme.Text).Render(english),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(st.Japanese),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("○%d ×%d", st.CorrectCount, st.IncorrectCount)),
	)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
