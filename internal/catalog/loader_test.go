package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWordlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}
	return path
}

func TestLoadWordlist(t *testing.T) {
	path := writeWordlist(t, `[
		{"english": "  Apple ", "japanese": " りんご ", "level": "中1"},
		{"english": "run", "japanese": "走る", "level": "中2"}
	]`)

	words, err := LoadWordlist(path)
	if err != nil {
		t.Fatalf("LoadWordlist: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("len(words) = %d, want 2", len(words))
	}
	if words[0].English != "apple" {
		t.Errorf("English = %q, want normalized %q", words[0].English, "apple")
	}
	if words[0].Japanese != "りんご" {
		t.Errorf("Japanese = %q, want trimmed %q", words[0].Japanese, "りんご")
	}
	if words[0].Level != LevelJHS1 {
		t.Errorf("Level = %v, want LevelJHS1", words[0].Level)
	}
}

func TestLoadWordlist_RejectsEmptySides(t *testing.T) {
	path := writeWordlist(t, `[{"english": "", "japanese": "りんご", "level": "中1"}]`)
	if _, err := LoadWordlist(path); err == nil {
		t.Error("expected error for empty english")
	}
}

func TestLoadWordlist_RejectsUnknownLevel(t *testing.T) {
	path := writeWordlist(t, `[{"english": "apple", "japanese": "りんご", "level": "高1"}]`)
	if _, err := LoadWordlist(path); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoadWordlist_RejectsMissingLevel(t *testing.T) {
	path := writeWordlist(t, `[{"english": "apple", "japanese": "りんご", "level": "all"}]`)
	if _, err := LoadWordlist(path); err == nil {
		t.Error("expected error for unrestricted level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"", LevelAny, false},
		{"all", LevelAny, false},
		{"中1", LevelJHS1, false},
		{"2", LevelJHS2, false},
		{"jhs3", LevelJHS3, false},
		{"中4", LevelAny, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
