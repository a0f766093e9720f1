package store

import (
	"context"
	"time"

	"github.com/fujioka8700/eitan/internal/catalog"
)

// ListOpts configures word list queries with search and pagination.
type ListOpts struct {
	Level  catalog.Level // LevelAny matches every level
	Search string        // substring match on english or japanese
	Offset int
	Limit  int // max results (0 = unlimited)
}

// WordRepo provides access to the word catalog.
type WordRepo interface {
	// Random returns up to count words for the level, shuffled, plus the
	// total pool size before truncation.
	Random(ctx context.Context, level catalog.Level, count int) ([]catalog.Word, int, error)

	// List returns words matching opts in catalog order.
	List(ctx context.Context, opts ListOpts) ([]catalog.Word, int, error)

	// Import replaces the entire catalog with words.
	Import(ctx context.Context, words []catalog.Word) (int, error)

	// Count returns the number of catalog words per level label.
	Count(ctx context.Context) (map[string]int, error)
}

// WordStat is one learner's accumulated history with one word.
type WordStat struct {
	WordID         int
	English        string
	Japanese       string
	Status         string
	CorrectCount   int
	IncorrectCount int
	LastStudiedAt  time.Time
}

// StatUpdate is the delta applied by one resolved session item.
type StatUpdate struct {
	WordID  int
	Status  string
	Correct bool
}

// StatRepo accumulates per-word study results. All methods are no-ops
// for an empty userID; guests leave no trace.
type StatRepo interface {
	// Upsert applies one item result: it creates the (user, word) row on
	// first study and otherwise increments exactly one counter and
	// refreshes status and last-studied time.
	Upsert(ctx context.Context, userID string, upd StatUpdate) error

	// ListRecent returns the most recently studied stats, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]WordStat, error)

	// Totals returns studied word count, mastered count, and overall
	// answer accuracy percent for the learner.
	Totals(ctx context.Context, userID string) (studied, mastered, accuracy int, err error)

	// Reset deletes all stats for the learner.
	Reset(ctx context.Context, userID string) error
}

// SessionEventData records a session lifecycle transition.
type SessionEventData struct {
	SessionID       string
	UserID          string
	Action          string // start, end, or abort
	Mode            string
	Level           catalog.Level
	RequestedSize   int
	ItemsServed     int
	CorrectAnswers  int
	AccuracyPercent int
}

// AnswerEventData records one resolved session item.
type AnswerEventData struct {
	SessionID     string
	WordID        int
	English       string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Resolution    string
	TimeUnits     int
}

// EventRepo provides append access to the session event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
}

// FlashWordProgress is one word's flashcard state inside a snapshot.
type FlashWordProgress struct {
	Learned       bool      `json:"learned"`
	StudyCount    int       `json:"study_count"`
	LastStudiedAt time.Time `json:"last_studied_at"`
}

// SnapshotData captures a learner's flashcard progress at a point in time.
type SnapshotData struct {
	Version int                       `json:"version"`
	Words   map[int]FlashWordProgress `json:"words"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if none.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error
}
