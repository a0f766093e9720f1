package components

import (
	"charm.land/lipgloss/v2"

	"github.com/fujioka8700/eitan/internal/ui/theme"
)

// FlashCard renders one vocabulary card. The front shows the English
// headword; flipping reveals the Japanese translation beneath it.
type FlashCard struct {
	English  string
	Japanese string
	Flipped  bool
	Learned  bool
	Width    int
}

// View renders the card.
func (c FlashCard) View() string {
	front := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(c.English)

	body := front
	if c.Flipped {
		back := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(c.Japanese)
		body = front + "\n\n" + back
	} else {
		body = front + "\n\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("space to flip")
	}

	if c.Learned {
		body += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("✓ 習得済み")
	}

	w := c.Width
	if w < 24 {
		w = 24
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(w).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(body)
}
