/*
Package wordfilter decides which words a spell checker should look up.

Words which are not written in the script of the active dictionary would be
underlined without ever getting a suggestion, so checking them is wasted
work. The same holds for tokens which are mostly digits or punctuation, or
look like URIs.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package wordfilter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spellscript/script"
)

// tracer traces with key 'spellscript.filter'
func tracer() tracing.Trace {
	return tracing.Select("spellscript.filter")
}

const (
	apostrophe = '\''
	slash      = '/'
	hyphen     = '-'
)

// ShouldFilterOut reports whether word should be excluded from spell
// checking for a dictionary written in script id. A word is filtered out if
//
//   - it has fewer than two runes,
//   - it starts with something other than a letter of the script or an apostrophe,
//   - it contains a slash, being either an ad-hoc compound or a URI,
//   - less than three quarters of its runes are letters of the script.
//
// ShouldFilterOut panics if id is not a valid script ID.
func ShouldFilterOut(word string, id script.ID) bool {
	length := utf8.RuneCountInString(word)
	if length <= 1 {
		return true
	}
	first, _ := utf8.DecodeRuneInString(word)
	if !script.IsLetterPartOfScript(first, id) && first != apostrophe {
		tracer().Debugf("filter out %q: starts with %U", word, first)
		return true
	}
	letters := 0
	for _, r := range word {
		if r == slash {
			return true
		}
		if script.IsLetterPartOfScript(r, id) {
			letters++
		}
	}
	if letters*4 < length*3 {
		tracer().Debugf("filter out %q: %d of %d runes are %s letters", word, letters, length, id)
		return true
	}
	return false
}

// Words splits text into candidate words. Words are separated by white space
// and by punctuation other than apostrophes, hyphens and slashes, which may
// occur inside words and are left for ShouldFilterOut to judge.
func Words(text string) []string {
	words := strings.FieldsFunc(text, isSeparator)
	for i, w := range words {
		words[i] = strings.Trim(w, "-")
	}
	return compact(words)
}

// CheckableWords returns the words of text which should be spell checked for
// a dictionary written in script id, in order of appearance.
func CheckableWords(text string, id script.ID) []string {
	var checkable []string
	for _, w := range Words(text) {
		if !ShouldFilterOut(w, id) {
			checkable = append(checkable, w)
		}
	}
	return checkable
}

func isSeparator(r rune) bool {
	switch r {
	case apostrophe, slash, hyphen:
		return false
	}
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func compact(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
