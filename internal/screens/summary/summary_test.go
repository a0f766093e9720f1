package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/router"
)

func testSummary() drill.Summary {
	return drill.Summary{
		TotalItems:      3,
		CorrectCount:    2,
		AccuracyPercent: 67,
		Outcomes: []drill.Outcome{
			{WordID: 1, English: "apple", CorrectAnswer: "りんご", Correct: true, Resolution: drill.ResolutionAnswered},
			{WordID: 2, English: "book", CorrectAnswer: "本", Correct: true, Resolution: drill.ResolutionAnswered},
			{WordID: 3, English: "cat", CorrectAnswer: "猫", Correct: false, Resolution: drill.ResolutionTimedOut},
		},
	}
}

func testSpec() drill.Spec {
	return drill.Spec{Mode: drill.ModeQuiz, RequestedSize: 3}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSpec(), testSummary(), false)
	if s.Title() != "結果" {
		t.Errorf("Title = %q, want %q", s.Title(), "結果")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSpec(), testSummary(), false)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"apple", "りんご", "本", "猫", "67%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Display_Aborted(t *testing.T) {
	s := New(testSpec(), testSummary(), true)
	view := s.View(80, 24)
	if !strings.Contains(view, "中断") {
		t.Error("aborted view must say the session was interrupted")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSpec(), testSummary(), false)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Enter")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSpec(), testSummary(), false)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSpec(), testSummary(), false)
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
