package drill

import (
	"errors"
	"fmt"

	"github.com/fujioka8700/eitan/internal/catalog"
)

// Mode selects the resolution semantics of a session.
type Mode int

const (
	ModeQuiz      Mode = iota // timed multiple choice
	ModeFlashcard             // timed flip cards with manual navigation
)

func (m Mode) String() string {
	if m == ModeFlashcard {
		return "flashcard"
	}
	return "quiz"
}

// Spec configures a session. Immutable once the session starts.
type Spec struct {
	Mode          Mode
	Level         catalog.Level
	RequestedSize int
}

// Validate checks the spec before a session may start.
func (s Spec) Validate() error {
	if s.RequestedSize <= 0 {
		return fmt.Errorf("requested size %d: must be positive", s.RequestedSize)
	}
	return nil
}

// ItemUnits returns the per-item countdown duration for the mode.
func (s Spec) ItemUnits() int {
	if s.Mode == ModeFlashcard {
		return FlashItemUnits
	}
	return QuizItemUnits
}

var (
	// ErrEmptyPool means no catalog words matched the session filters.
	ErrEmptyPool = errors.New("no words match the session filters")

	// ErrPoolUnavailable means the word pool could not be fetched. Retryable.
	ErrPoolUnavailable = errors.New("word pool unavailable")

	// ErrInvalidTransition means an action arrived for an item that is not
	// in the expected state. Callers racing the timer treat it as a no-op.
	ErrInvalidTransition = errors.New("invalid session transition")
)
