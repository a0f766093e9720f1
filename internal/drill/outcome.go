package drill

// Resolution says how an item reached its terminal state.
type Resolution int

const (
	ResolutionAnswered Resolution = iota // quiz: an option was chosen
	ResolutionMarked                     // flashcard: marked learned
	ResolutionTimedOut                   // countdown expired with no action
)

func (r Resolution) String() string {
	switch r {
	case ResolutionAnswered:
		return "answered"
	case ResolutionMarked:
		return "marked"
	default:
		return "timed_out"
	}
}

// Outcome is the recorded result of resolving one item. Appended to the
// session log in item order; exactly one Outcome exists per item at the
// end of a completed session.
type Outcome struct {
	WordID        int
	English       string
	Response      string // empty on timeout
	CorrectAnswer string
	Correct       bool
	ElapsedUnits  int
	Resolution    Resolution
}
