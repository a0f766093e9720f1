package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fujioka8700/eitan/internal/drill"
	"github.com/fujioka8700/eitan/internal/store"
)

// snapshotKeep bounds how many flashcard snapshots survive per learner.
const snapshotKeep = 5

// Recorder persists what a session produces: lifecycle events, per-item
// answer events, word stats, and flashcard snapshots. An empty userID
// selects guest mode, where every method succeeds without writing.
type Recorder struct {
	userID    string
	sessionID string

	stats  store.StatRepo
	events store.EventRepo
	snaps  store.SnapshotRepo

	flash *FlashProgress
}

// NewRecorder creates a recorder for one session.
func NewRecorder(userID string, s *store.Store) *Recorder {
	return &Recorder{
		userID:    userID,
		sessionID: uuid.NewString(),
		stats:     s.StatRepo(),
		events:    s.EventRepo(),
		snaps:     s.SnapshotRepo(),
		flash:     NewFlashProgress(),
	}
}

// Guest reports whether this session persists nothing.
func (r *Recorder) Guest() bool {
	return r.userID == ""
}

// SessionID returns the UUID grouping this session's events.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Flash returns the flashcard progress state for this session.
func (r *Recorder) Flash() *FlashProgress {
	return r.flash
}

// LoadFlash restores the learner's flashcard progress from the latest
// snapshot. Guests start empty.
func (r *Recorder) LoadFlash(ctx context.Context) error {
	if r.Guest() {
		return nil
	}
	snap, err := r.snaps.Latest(ctx, r.userID)
	if err != nil {
		return fmt.Errorf("load flash progress: %w", err)
	}
	if snap != nil {
		r.flash = FromSnapshot(snap.Data)
	}
	return nil
}

// SessionStarted appends the start event.
func (r *Recorder) SessionStarted(ctx context.Context, spec drill.Spec) error {
	if r.Guest() {
		return nil
	}
	return r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     r.sessionID,
		UserID:        r.userID,
		Action:        "start",
		Mode:          spec.Mode.String(),
		Level:         spec.Level,
		RequestedSize: spec.RequestedSize,
	})
}

// RecordOutcome persists one resolved item: the answer event plus the
// word stat update. For flashcards the stat write is gated on the
// learned set, keeping mark-learned at-most-once durable per word;
// re-marks and repeat studies only touch the in-memory progress.
func (r *Recorder) RecordOutcome(ctx context.Context, mode drill.Mode, o drill.Outcome) error {
	if r.Guest() {
		return nil
	}

	if err := r.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     r.sessionID,
		WordID:        o.WordID,
		English:       o.English,
		CorrectAnswer: o.CorrectAnswer,
		LearnerAnswer: o.Response,
		Correct:       o.Correct,
		Resolution:    o.Resolution.String(),
		TimeUnits:     o.ElapsedUnits,
	}); err != nil {
		return err
	}

	if mode == drill.ModeFlashcard {
		learned := o.Resolution == drill.ResolutionMarked
		alreadyLearned := r.flash.Learned(o.WordID)
		r.flash.MarkStudied(o.WordID, learned, time.Now())
		if !learned || alreadyLearned {
			return nil
		}
	}

	return r.stats.Upsert(ctx, r.userID, store.StatUpdate{
		WordID:  o.WordID,
		Status:  DeriveStatus(mode, o),
		Correct: o.Correct,
	})
}

// SessionFinished appends the end event and, when flashcard progress
// changed, writes a fresh snapshot and prunes old ones.
func (r *Recorder) SessionFinished(ctx context.Context, spec drill.Spec, sum drill.Summary) error {
	return r.sessionEnded(ctx, "end", spec, sum)
}

// SessionAborted records an early quit. Progress already persisted for
// resolved items is kept.
func (r *Recorder) SessionAborted(ctx context.Context, spec drill.Spec, sum drill.Summary) error {
	return r.sessionEnded(ctx, "abort", spec, sum)
}

func (r *Recorder) sessionEnded(ctx context.Context, action string, spec drill.Spec, sum drill.Summary) error {
	if r.Guest() {
		return nil
	}

	if err := r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       r.sessionID,
		UserID:          r.userID,
		Action:          action,
		Mode:            spec.Mode.String(),
		Level:           spec.Level,
		RequestedSize:   spec.RequestedSize,
		ItemsServed:     sum.TotalItems,
		CorrectAnswers:  sum.CorrectCount,
		AccuracyPercent: sum.AccuracyPercent,
	}); err != nil {
		return err
	}

	if spec.Mode == drill.ModeFlashcard && r.flash.Dirty() {
		if err := r.snaps.Save(ctx, &store.Snapshot{
			UserID: r.userID,
			Data:   r.flash.Data(),
		}); err != nil {
			return fmt.Errorf("save flash snapshot: %w", err)
		}
		if err := r.snaps.Prune(ctx, r.userID, snapshotKeep); err != nil {
			return fmt.Errorf("prune flash snapshots: %w", err)
		}
	}
	return nil
}

// DeriveStatus maps an item outcome to the stored study status. A quiz
// answer proves recall, so a correct one marks the word mastered; every
// other path leaves the word in the learning state.
func DeriveStatus(mode drill.Mode, o drill.Outcome) string {
	if mode == drill.ModeQuiz && o.Correct {
		return store.StatusMastered
	}
	return store.StatusLearning
}
