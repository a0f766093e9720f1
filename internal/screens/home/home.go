package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/router"
	"github.com/fujioka8700/eitan/internal/screen"
	"github.com/fujioka8700/eitan/internal/screens/setup"
	"github.com/fujioka8700/eitan/internal/screens/stats"
	"github.com/fujioka8700/eitan/internal/screens/words"
	"github.com/fujioka8700/eitan/internal/store"
	"github.com/fujioka8700/eitan/internal/ui/components"
	"github.com/fujioka8700/eitan/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	wordCounts map[string]int
	guest      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, userID string) *HomeScreen {
	counts, _ := st.WordRepo().Count(context.Background())

	items := []components.MenuItem{
		{Label: "クイズ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(st, userID, drill.ModeQuiz),
				}
			}
		}},
		{Label: "フラッシュカード", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(st, userID, drill.ModeFlashcard),
				}
			}
		}},
		{Label: "単語リスト", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: words.New(st)}
			}
		}},
		{Label: "学習記録", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st, userID)}
			}
		}, Disabled: userID == ""},
		{Label: "終了", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		wordCounts: counts,
		guest:      userID == "",
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("英単語を楽しく覚えよう"))
	b.WriteString("\n")

	total := 0
	var parts []string
	for _, label := range []string{"中1", "中2", "中3"} {
		n := h.wordCounts[label]
		total += n
		parts = append(parts, fmt.Sprintf("%s: %d語", label, n))
	}
	countLine := fmt.Sprintf("収録 %d語   (%s)", total, strings.Join(parts, " / "))
	b.WriteString(theme.Subtitle.Width(width).Render(countLine))

	if h.guest {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("ゲストモード: 学習記録は保存されません"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "ホーム"
}
