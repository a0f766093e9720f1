package catalog

import "fmt"

// Word is a single catalog entry. Entries are immutable once imported;
// the session engine never mutates them.
type Word struct {
	ID       int
	English  string
	Japanese string
	Level    Level
}

// Level is the difficulty band a word belongs to. The catalog follows the
// Japanese junior-high curriculum split (中1/中2/中3).
type Level int

const (
	LevelAny Level = iota // no level restriction
	LevelJHS1
	LevelJHS2
	LevelJHS3
)

// levelLabels are the canonical strings stored in the catalog.
var levelLabels = map[Level]string{
	LevelJHS1: "中1",
	LevelJHS2: "中2",
	LevelJHS3: "中3",
}

// String returns the catalog label for the level, or "all" for LevelAny.
func (l Level) String() string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return "all"
}

// Restricted reports whether the level narrows the pool.
func (l Level) Restricted() bool {
	return l != LevelAny
}

// ParseLevel maps a catalog or CLI string to a Level. It accepts both the
// canonical 中N labels and the plain forms "1".."3"; empty and "all" mean
// LevelAny.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "", "all", "any":
		return LevelAny, nil
	case "中1", "1", "jhs1":
		return LevelJHS1, nil
	case "中2", "2", "jhs2":
		return LevelJHS2, nil
	case "中3", "3", "jhs3":
		return LevelJHS3, nil
	}
	return LevelAny, fmt.Errorf("unknown level %q", s)
}

// Levels lists the restricted levels in curriculum order.
func Levels() []Level {
	return []Level{LevelJHS1, LevelJHS2, LevelJHS3}
}
