package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/ui/components"
	"github.com/fujioka8700/eitan/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.loading {
		return renderLoading(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	v := s.ctrl.View()
	if s.spec.Mode == drill.ModeQuiz {
		return s.renderQuiz(v, width)
	}
	return s.renderFlash(v, width)
}

// renderQuiz renders the question, timer, and options, with inline
// feedback after an answer.
func (s *SessionScreen) renderQuiz(v drill.View, width int) string {
	var b strings.Builder

	b.WriteString(renderStatusLine(v, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(v.Word.English)
	b.WriteString(question)
	b.WriteString("\n\n")

	bar := components.NewTimerBar(v.TimeRemaining, s.spec.ItemUnits(), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if v.InFeedback && v.LastOutcome != nil {
		b.WriteString(renderQuizFeedback(v, width))
		return b.String()
	}
	if v.InGrace {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("時間切れ!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("正解: %s", v.Word.Japanese)))
		return b.String()
	}

	b.WriteString(s.renderOptions(v, width))
	return b.String()
}

// renderOptions renders the multiple-choice answers.
func (s *SessionScreen) renderOptions(v drill.View, width int) string {
	var b strings.Builder
	for i, opt := range v.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("\n番号キー、または ↑↓ + Enter で回答")
	b.WriteString(hint)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderQuizFeedback shows the answer result during the feedback pause.
func renderQuizFeedback(v drill.View, width int) string {
	o := v.LastOutcome
	var b strings.Builder

	if o.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("正解!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("不正解"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("正解: %s", o.CorrectAnswer)))
	}
	return b.String()
}

// renderFlash renders the flashcard with timer and navigation state.
func (s *SessionScreen) renderFlash(v drill.View, width int) string {
	var b strings.Builder

	b.WriteString(renderStatusLine(v, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	card := components.FlashCard{
		English:  v.Word.English,
		Japanese: v.Word.Japanese,
		Flipped:  v.Flipped,
		Learned:  v.Resolved,
		Width:    min(width-8, 50),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card.View()))
	b.WriteString("\n\n")

	bar := components.NewTimerBar(v.TimeRemaining, s.spec.ItemUnits(), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	if v.InGrace {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("次のカードへ..."))
	}
	return b.String()
}

// renderStatusLine shows progress through the snapshot.
func renderStatusLine(v drill.View, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %d / %d", v.Index+1, v.Total))

	correct := 0
	for _, o := range v.Outcomes {
		if o.Correct {
			correct++
		}
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("正解 %d", correct))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("セッションを終了しますか?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("回答済みの結果は保存されます。"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] 終了する"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] 続ける"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  単語を読み込んでいます...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  キーを押して戻る", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
