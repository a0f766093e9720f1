package words

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fujioka8700/eitan/internal/catalog"
	"github.com/fujioka8700/eitan/internal/screen"
	"github.com/fujioka8700/eitan/internal/store"
	"github.com/fujioka8700/eitan/internal/ui/components"
	"github.com/fujioka8700/eitan/internal/ui/layout"
	"github.com/fujioka8700/eitan/internal/ui/theme"
)

// pageSize is how many words one page shows.
const pageSize = 15

// listLoadedMsg delivers one page of catalog words.
type listLoadedMsg struct {
	Words []catalog.Word
	Total int
	Err   error
}

// WordsScreen browses the catalog with level filter, search, and paging.
type WordsScreen struct {
	st *store.Store

	search    components.TextInput
	searching bool
	level     catalog.Level
	page      int

	words  []catalog.Word
	total  int
	errMsg string
}

var _ screen.Screen = (*WordsScreen)(nil)
var _ screen.KeyHintProvider = (*WordsScreen)(nil)
var _ screen.EscHandler = (*WordsScreen)(nil)

// OwnsEsc keeps Esc as "cancel search" while the search box is open.
func (w *WordsScreen) OwnsEsc() bool {
	return w.searching
}

// New creates a new WordsScreen.
func New(st *store.Store) *WordsScreen {
	return &WordsScreen{
		st:     st,
		search: components.NewTextInput("検索...", false, 30),
	}
}

func (w *WordsScreen) Init() tea.Cmd {
	return w.load()
}

func (w *WordsScreen) Title() string {
	return "単語リスト"
}

func (w *WordsScreen) KeyHints() []layout.KeyHint {
	if w.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "Tab", Description: "Level"},
		{Key: "←→", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

// load fetches the current page asynchronously.
func (w *WordsScreen) load() tea.Cmd {
	opts := store.ListOpts{
		Level:  w.level,
		Search: strings.TrimSpace(w.search.Value()),
		Offset: w.page * pageSize,
		Limit:  pageSize,
	}
	repo := w.st.WordRepo()
	return func() tea.Msg {
		words, total, err := repo.List(context.Background(), opts)
		return listLoadedMsg{Words: words, Total: total, Err: err}
	}
}

func (w *WordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.Err != nil {
			w.errMsg = "単語リストを読み込めませんでした"
			return w, nil
		}
		w.words = msg.Words
		w.total = msg.Total
		return w, nil

	case tea.KeyMsg:
		return w.handleKey(msg)
	}
	return w, nil
}

func (w *WordsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if w.searching {
		switch key {
		case "enter":
			w.searching = false
			w.page = 0
			return w, w.load()
		case "esc":
			w.searching = false
			return w, nil
		}
		var cmd tea.Cmd
		w.search, cmd = w.search.Update(msg)
		return w, cmd
	}

	switch key {
	case "/":
		w.searching = true
		return w, w.search.Init()
	case "tab":
		w.level = nextLevel(w.level)
		w.page = 0
		return w, w.load()
	case "right", "l", "n":
		if (w.page+1)*pageSize < w.total {
			w.page++
			return w, w.load()
		}
	case "left", "h", "p":
		if w.page > 0 {
			w.page--
			return w, w.load()
		}
	}
	return w, nil
}

// nextLevel cycles すべて → 中1 → 中2 → 中3 → すべて.
func nextLevel(l catalog.Level) catalog.Level {
	switch l {
	case catalog.LevelAny:
		return catalog.LevelJHS1
	case catalog.LevelJHS1:
		return catalog.LevelJHS2
	case catalog.LevelJHS2:
		return catalog.LevelJHS3
	default:
		return catalog.LevelAny
	}
}

func (w *WordsScreen) View(width, height int) string {
	if w.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + w.errMsg)
	}

	var b strings.Builder
	b.WriteString("\n")

	levelLabel := w.level.String()
	if w.level == catalog.LevelAny {
		levelLabel = "すべて"
	}
	status := fmt.Sprintf("  レベル: %s   %d語", levelLabel, w.total)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(status))
	b.WriteString("\n")

	if w.searching || w.search.Value() != "" {
		b.WriteString("  検索: " + w.search.View())
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	if len(w.words) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("該当する単語がありません"))
		return b.String()
	}

	var rows strings.Builder
	for _, word := range w.words {
		rows.WriteString(fmt.Sprintf("%s  %-20s %s\n",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(word.Level.String()),
			lipgloss.NewStyle().Foreground(theme.Text).Render(word.English),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(word.Japanese),
		))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	totalPages := (w.total + pageSize - 1) / pageSize
	if totalPages > 1 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d / %d ページ", w.page+1, totalPages)))
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
