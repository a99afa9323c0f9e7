/*
Package script classifies runes by writing script.

The set of scripts is closed: it covers exactly the scripts a spell checker
with a small, fixed set of dictionaries needs to tell apart. The package is not
a Unicode script database; it tests runes against fixed Unicode block ranges.

All functions are pure and may be called concurrently.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package script

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	xlanguage "golang.org/x/text/language"
)

// tracer traces with key 'spellscript.script'
func tracer() tracing.Trace {
	return tracing.Select("spellscript.script")
}

// ID identifies a writing script. The zero value is Unknown.
//
// Only the constants declared in this package are valid IDs. Use Code and
// FromCode for persisting IDs.
type ID uint8

const (
	Unknown  ID = iota // used for hardware keyboards, accepts every rune
	Latin              // Latin
	Cyrillic           // Cyrillic
	Greek              // Greek
	Arabic             // Arabic
	Hebrew             // Hebrew
	Armenian           // Armenian
	Georgian           // Georgian
	Khmer              // Khmer
	Lao                // Lao
	Myanmar            // Myanmar
	Sinhala            // Sinhala
	Thai               // Thai
	Telugu             // Telugu
)

// Count is the number of valid script IDs, including Unknown.
const Count = int(Telugu) + 1

var scriptNames = [Count]string{
	"Unknown", "Latin", "Cyrillic", "Greek", "Arabic", "Hebrew", "Armenian",
	"Georgian", "Khmer", "Lao", "Myanmar", "Sinhala", "Thai", "Telugu",
}

// ISO 15924 codes, in ID order
var isoCodes = [Count]string{
	"Zzzz", "Latn", "Cyrl", "Grek", "Arab", "Hebr", "Armn",
	"Geor", "Khmr", "Laoo", "Mymr", "Sinh", "Thai", "Telu",
}

// All returns every valid script ID, Unknown first.
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Valid reports whether id is one of the constants of this package.
func (id ID) Valid() bool {
	return int(id) < Count
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", uint8(id))
	}
	return scriptNames[id]
}

// Code returns the stable integer identifier of a script. Unknown is -1,
// Latin is 0, and so on up to Telugu with 12. Codes never change between
// releases and are safe to persist.
func (id ID) Code() int {
	mustBeValid(id)
	return int(id) - 1
}

// FromCode returns the script for a code previously returned by ID.Code.
func FromCode(code int) (ID, bool) {
	if code < -1 || code >= Count-1 {
		return Unknown, false
	}
	return ID(code + 1), true
}

// Parse finds a script by its English name ("Cyrillic") or its ISO 15924
// code ("Cyrl"). Matching is case-insensitive.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for i, name := range scriptNames {
		if strings.EqualFold(s, name) {
			return ID(i), nil
		}
	}
	sc, err := xlanguage.ParseScript(s)
	if err != nil {
		return Unknown, fmt.Errorf("script %q: %w", s, err)
	}
	for i, code := range isoCodes {
		if sc.String() == code {
			return ID(i), nil
		}
	}
	return Unknown, fmt.Errorf("script %q not supported", s)
}

// mustBeValid panics if id is not a valid script ID. An invalid ID is a
// programming error on the caller's side, never bad input data.
func mustBeValid(id ID) {
	if !id.Valid() {
		tracer().Errorf("impossible value of script: %d", uint8(id))
		panic(fmt.Sprintf("script: impossible value of script: %d", uint8(id)))
	}
}
