package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// wordEntry is the JSON shape of one wordlist row.
type wordEntry struct {
	English  string `json:"english"`
	Japanese string `json:"japanese"`
	Level    string `json:"level"`
}

// LoadWordlist reads a JSON wordlist file ([{english, japanese, level}, ...])
// and returns normalized catalog words. English is trimmed and lowercased,
// Japanese is trimmed; rows with an empty side or an unknown level are
// rejected so a bad list never half-imports.
func LoadWordlist(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	var entries []wordEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode wordlist: %w", err)
	}

	words := make([]Word, 0, len(entries))
	for i, e := range entries {
		english := strings.ToLower(strings.TrimSpace(e.English))
		japanese := strings.TrimSpace(e.Japanese)
		if english == "" || japanese == "" {
			return nil, fmt.Errorf("wordlist row %d: empty english or japanese", i+1)
		}
		level, err := ParseLevel(strings.TrimSpace(e.Level))
		if err != nil {
			return nil, fmt.Errorf("wordlist row %d (%s): %w", i+1, english, err)
		}
		if !level.Restricted() {
			return nil, fmt.Errorf("wordlist row %d (%s): level is required", i+1, english)
		}
		words = append(words, Word{
			English:  english,
			Japanese: japanese,
			Level:    level,
		})
	}
	return words, nil
}
