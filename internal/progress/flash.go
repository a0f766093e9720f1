package progress

import (
	"time"

	"github.com/fujioka8700/eitan/internal/store"
)

// FlashProgress is the in-memory flashcard state for one learner. It is
// loaded from the latest snapshot when a flashcard session starts and
// written back as a new snapshot when the session ends. The learned set
// is the durable guard: a word already learned here never triggers a
// second stat write, no matter how many times it is re-marked.
type FlashProgress struct {
	words map[int]store.FlashWordProgress
	dirty bool
}

// NewFlashProgress returns an empty progress state.
func NewFlashProgress() *FlashProgress {
	return &FlashProgress{words: make(map[int]store.FlashWordProgress)}
}

// FromSnapshot restores progress from persisted snapshot data.
func FromSnapshot(data store.SnapshotData) *FlashProgress {
	p := NewFlashProgress()
	for id, w := range data.Words {
		p.words[id] = w
	}
	return p
}

// Learned reports whether the word has ever been marked learned.
func (p *FlashProgress) Learned(wordID int) bool {
	return p.words[wordID].Learned
}

// MarkStudied records one study of the word. learned is sticky: once a
// word is learned it stays learned. The return value reports whether
// this call transitioned the word to learned for the first time, which
// is the only case that warrants a durable stat write.
func (p *FlashProgress) MarkStudied(wordID int, learned bool, now time.Time) bool {
	w := p.words[wordID]
	firstLearn := learned && !w.Learned

	w.Learned = w.Learned || learned
	w.StudyCount++
	w.LastStudiedAt = now
	p.words[wordID] = w
	p.dirty = true
	return firstLearn
}

// StudyCount returns how many times the word has been studied.
func (p *FlashProgress) StudyCount(wordID int) int {
	return p.words[wordID].StudyCount
}

// Dirty reports whether the state changed since it was loaded.
func (p *FlashProgress) Dirty() bool {
	return p.dirty
}

// Data serializes the progress for snapshot storage.
func (p *FlashProgress) Data() store.SnapshotData {
	words := make(map[int]store.FlashWordProgress, len(p.words))
	for id, w := range p.words {
		words[id] = w
	}
	return store.SnapshotData{Version: 1, Words: words}
}
