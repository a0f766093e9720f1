package drill

import (
	"math/rand"
	"time"

	"github.com/fujioka8700/eitan/internal/catalog"
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseConfiguring Phase = iota
	PhaseActive
	PhaseFinished
)

// ItemStatus is the lifecycle of one snapshot item.
type ItemStatus int

const (
	ItemPending ItemStatus = iota
	ItemPresented
	ItemResolved
)

// Item is one word of the session snapshot plus its runtime state.
type Item struct {
	Word    catalog.Word
	Status  ItemStatus
	Options []string // quiz answer options, rolled at presentation
	Flipped bool     // flashcard display side
	Outcome *Outcome // set exactly once, on resolution
}

// Controller drives a single study session: snapshot sampling, per-item
// countdowns, answer/flip handling, auto-advance, and the outcome log.
//
// It is a plain state machine with no timers of its own. The caller owns
// the clock: it delivers one Tick per unit, tagged with the generation
// token obtained from Gen(). Any action that invalidates pending ticks
// (resolution, navigation, advancing) bumps the generation, so a tick
// racing a user action always loses and is dropped as stale. All methods
// must be called from a single goroutine; under Bubble Tea that is the
// Update loop.
type Controller struct {
	spec  Spec
	rng   *rand.Rand
	items []Item
	index int
	phase Phase

	gen          int
	clock        *Countdown
	feedbackLeft int
	lastOutcome  *Outcome
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand substitutes the random source. Tests use it for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// New creates a controller in PhaseConfiguring.
func New(spec Spec, opts ...Option) *Controller {
	c := &Controller{
		spec: spec,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure replaces the session spec. Permitted only before Start; an
// active session must be finished or abandoned first.
func (c *Controller) Configure(spec Spec) error {
	if c.phase != PhaseConfiguring {
		return ErrInvalidTransition
	}
	c.spec = spec
	return nil
}

// Spec returns the session spec.
func (c *Controller) Spec() Spec {
	return c.spec
}

// Gen returns the current cancellation token. Ticks delivered with an
// older token are ignored.
func (c *Controller) Gen() int {
	return c.gen
}

// Start samples the snapshot from the pool and presents the first item.
// The snapshot is fixed here; the pool is never re-queried mid-session.
func (c *Controller) Start(pool []catalog.Word) error {
	if c.phase != PhaseConfiguring {
		return ErrInvalidTransition
	}
	if err := c.spec.Validate(); err != nil {
		return err
	}

	sample := Sample(c.rng, pool, c.spec.RequestedSize)
	if len(sample) == 0 {
		return ErrEmptyPool
	}

	c.items = make([]Item, len(sample))
	for i, w := range sample {
		c.items[i] = Item{Word: w}
	}
	c.phase = PhaseActive
	c.index = 0
	c.present(0)
	return nil
}

// present arms a fresh countdown for item i and rolls its quiz options.
// Revisited (already resolved) flashcard items keep their status but still
// get a clock so the card keeps auto-advancing.
func (c *Controller) present(i int) {
	item := &c.items[i]
	if item.Status == ItemPending {
		item.Status = ItemPresented
	}
	item.Flipped = false
	if c.spec.Mode == ModeQuiz {
		item.Options = RollOptions(c.rng, item.Word, c.snapshot())
	}
	c.feedbackLeft = 0
	c.clock = NewCountdown(c.spec.ItemUnits())
	c.gen++
}

func (c *Controller) snapshot() []catalog.Word {
	words := make([]catalog.Word, len(c.items))
	for i := range c.items {
		words[i] = c.items[i].Word
	}
	return words
}

// TickResult describes what one delivered tick caused.
type TickResult struct {
	Stale    bool     // tick belonged to a cancelled clock; no effect
	Expired  bool     // countdown hit zero this tick; grace display began
	TimedOut *Outcome // outcome synthesized by auto-advance, if any
	Advanced bool     // session moved to another item
	Finished bool     // session completed this tick
}

// Tick delivers one elapsed unit. gen must be the token that was current
// when the tick was scheduled; a mismatch means the clock it belonged to
// was cancelled, and the tick is dropped without effect.
func (c *Controller) Tick(gen int) TickResult {
	if c.phase != PhaseActive || gen != c.gen {
		return TickResult{Stale: true}
	}

	if c.feedbackLeft > 0 {
		c.feedbackLeft--
		if c.feedbackLeft > 0 {
			return TickResult{}
		}
		return c.advance()
	}

	if c.clock == nil {
		return TickResult{Stale: true}
	}

	switch c.clock.Tick() {
	case TimerExpired:
		return TickResult{Expired: true}
	case TimerAutoAdvance:
		var res TickResult
		item := &c.items[c.index]
		if item.Status != ItemResolved {
			res.TimedOut = c.resolveTimeout(item)
		}
		adv := c.advance()
		res.Advanced = adv.Advanced
		res.Finished = adv.Finished
		return res
	default:
		return TickResult{}
	}
}

// resolveTimeout performs the timer's half of the resolution race. The
// caller has already checked that the item is unresolved.
func (c *Controller) resolveTimeout(item *Item) *Outcome {
	o := &Outcome{
		WordID:        item.Word.ID,
		English:       item.Word.English,
		CorrectAnswer: item.Word.Japanese,
		Correct:       false,
		ElapsedUnits:  c.spec.ItemUnits(),
		Resolution:    ResolutionTimedOut,
	}
	item.Status = ItemResolved
	item.Outcome = o
	c.lastOutcome = o
	return o
}

// Resolve is the manual quiz answer for the currently presented item. It
// wins the race against the countdown by cancelling it synchronously; a
// tick already in flight will find its token stale. Resolving an item
// that is not the current unresolved one returns ErrInvalidTransition.
func (c *Controller) Resolve(itemIndex int, response string) (*Outcome, error) {
	if c.phase != PhaseActive || c.spec.Mode != ModeQuiz {
		return nil, ErrInvalidTransition
	}
	if itemIndex != c.index || c.feedbackLeft > 0 {
		return nil, ErrInvalidTransition
	}
	item := &c.items[itemIndex]
	if item.Status != ItemPresented {
		return nil, ErrInvalidTransition
	}

	elapsed := c.spec.ItemUnits()
	if c.clock != nil {
		elapsed -= c.clock.Remaining()
	}
	c.clock = nil
	c.gen++

	o := &Outcome{
		WordID:        item.Word.ID,
		English:       item.Word.English,
		Response:      response,
		CorrectAnswer: item.Word.Japanese,
		Correct:       response == item.Word.Japanese,
		ElapsedUnits:  elapsed,
		Resolution:    ResolutionAnswered,
	}
	item.Status = ItemResolved
	item.Outcome = o
	c.lastOutcome = o
	c.feedbackLeft = QuizFeedbackUnits
	return o, nil
}

// Flip toggles the display side of the current flashcard. Pure display
// state; it neither resolves the item nor touches the countdown.
func (c *Controller) Flip(itemIndex int) error {
	if c.phase != PhaseActive || c.spec.Mode != ModeFlashcard || itemIndex != c.index {
		return ErrInvalidTransition
	}
	c.items[itemIndex].Flipped = !c.items[itemIndex].Flipped
	return nil
}

// MarkLearned resolves the current flashcard as learned and advances
// immediately. Marking an already resolved card is a no-op race loser.
func (c *Controller) MarkLearned(itemIndex int) (*Outcome, TickResult, error) {
	if c.phase != PhaseActive || c.spec.Mode != ModeFlashcard || itemIndex != c.index {
		return nil, TickResult{}, ErrInvalidTransition
	}
	item := &c.items[itemIndex]
	if item.Status == ItemResolved {
		return nil, TickResult{}, ErrInvalidTransition
	}

	elapsed := c.spec.ItemUnits()
	if c.clock != nil {
		elapsed -= c.clock.Remaining()
	}
	c.clock = nil
	c.gen++

	o := &Outcome{
		WordID:        item.Word.ID,
		English:       item.Word.English,
		CorrectAnswer: item.Word.Japanese,
		Correct:       true,
		ElapsedUnits:  elapsed,
		Resolution:    ResolutionMarked,
	}
	item.Status = ItemResolved
	item.Outcome = o
	c.lastOutcome = o
	return o, c.advance(), nil
}

// Navigate moves the flashcard cursor by delta (-1 or +1) without
// producing an outcome. Moving past the last card ends the session;
// moving before the first is a no-op. Each move re-arms a fresh clock.
func (c *Controller) Navigate(delta int) (TickResult, error) {
	if c.phase != PhaseActive || c.spec.Mode != ModeFlashcard {
		return TickResult{}, ErrInvalidTransition
	}
	next := c.index + delta
	if next < 0 {
		return TickResult{}, nil
	}
	if next >= len(c.items) {
		return c.finish(), nil
	}
	c.index = next
	c.present(next)
	return TickResult{Advanced: true}, nil
}

// advance moves past the current item: next item, or session end.
func (c *Controller) advance() TickResult {
	if c.index+1 >= len(c.items) {
		return c.finish()
	}
	c.index++
	c.present(c.index)
	return TickResult{Advanced: true}
}

// finish completes the session. Flashcard items skipped via navigation
// and never marked get a synthesized timeout outcome here, keeping the
// one-outcome-per-item invariant for completed sessions.
func (c *Controller) finish() TickResult {
	for i := range c.items {
		if c.items[i].Status != ItemResolved {
			c.resolveTimeout(&c.items[i])
		}
	}
	c.phase = PhaseFinished
	c.clock = nil
	c.feedbackLeft = 0
	c.gen++
	return TickResult{Finished: true}
}

// Abort ends the session early, cancelling the armed clock. No outcomes
// are synthesized; the log keeps only what was actually resolved.
func (c *Controller) Abort() {
	if c.phase != PhaseActive {
		return
	}
	c.phase = PhaseFinished
	c.clock = nil
	c.feedbackLeft = 0
	c.gen++
}

// Outcomes returns the resolved outcomes in item order.
func (c *Controller) Outcomes() []Outcome {
	var log []Outcome
	for i := range c.items {
		if c.items[i].Outcome != nil {
			log = append(log, *c.items[i].Outcome)
		}
	}
	return log
}

// View is the public snapshot of session state handed to the UI layer.
type View struct {
	Phase         Phase
	Mode          Mode
	Index         int
	Total         int
	Word          catalog.Word
	Options       []string
	Flipped       bool
	Resolved      bool
	TimeRemaining int
	InGrace       bool
	InFeedback    bool
	LastOutcome   *Outcome
	Outcomes      []Outcome
}

// View builds the current public session view.
func (c *Controller) View() View {
	v := View{
		Phase:    c.phase,
		Mode:     c.spec.Mode,
		Index:    c.index,
		Total:    len(c.items),
		Outcomes: c.Outcomes(),
	}
	if c.phase == PhaseConfiguring || len(c.items) == 0 {
		return v
	}
	item := c.items[c.index]
	v.Word = item.Word
	v.Options = item.Options
	v.Flipped = item.Flipped
	v.Resolved = item.Status == ItemResolved
	v.InFeedback = c.feedbackLeft > 0
	v.LastOutcome = c.lastOutcome
	if c.clock != nil {
		v.TimeRemaining = c.clock.Remaining()
		v.InGrace = c.clock.InGrace()
	}
	return v
}
