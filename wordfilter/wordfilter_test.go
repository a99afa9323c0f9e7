package wordfilter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spellscript/script"
	"github.com/stretchr/testify/assert"
)

func TestShouldFilterOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spellscript.filter")
	defer teardown()
	//
	tests := []struct {
		word   string
		script script.ID
		filter bool
	}{
		{"", script.Latin, true},
		{"a", script.Latin, true},
		{"hello", script.Latin, false},
		{"'tis", script.Latin, false},
		{"don't", script.Latin, false},
		{"Straße", script.Latin, false},
		{"привет", script.Latin, true},
		{"привет", script.Cyrillic, false},
		{"hello", script.Cyrillic, true},
		{"λόγος", script.Greek, false},
		{"and/or", script.Latin, true},
		{"1st", script.Latin, true},
		{"abc123", script.Latin, true},    // 3 of 6
		{"abcdef12", script.Latin, false}, // 6 of 8
		{"abcde123", script.Latin, true},  // 5 of 8
		{"x.y", script.Latin, true},
		{"12", script.Unknown, false},
		{"a/b", script.Unknown, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.filter, ShouldFilterOut(tt.word, tt.script), "ShouldFilterOut(%q, %s)", tt.word, tt.script)
	}
}

func TestWords(t *testing.T) {
	words := Words("Hello, world! It's a well-known fact -- see http://x.org.")
	assert.Equal(t, []string{"Hello", "world", "It's", "a", "well-known", "fact", "see", "http", "//x", "org"}, words)
	assert.Empty(t, Words("  ,;  "))
}

func TestCheckableWords(t *testing.T) {
	text := "Der Hund heißt Шарик, and/or 42 Katzen"
	assert.Equal(t, []string{"Der", "Hund", "heißt", "Katzen"}, CheckableWords(text, script.Latin))
	assert.Equal(t, []string{"Шарик"}, CheckableWords(text, script.Cyrillic))
}
