package script

import (
	"github.com/go-text/typesetting/language"
)

var isoScripts = [Count]language.Script{
	Unknown:  language.Unknown,
	Latin:    language.Latin,
	Cyrillic: language.Cyrillic,
	Greek:    language.Greek,
	Arabic:   language.Arabic,
	Hebrew:   language.Hebrew,
	Armenian: language.Armenian,
	Georgian: language.Georgian,
	Khmer:    language.Khmer,
	Lao:      language.Lao,
	Myanmar:  language.Myanmar,
	Sinhala:  language.Sinhala,
	Thai:     language.Thai,
	Telugu:   language.Telugu,
}

// ISO15924 returns the ISO 15924 script of id. Unknown maps to `Zzzz`.
func (id ID) ISO15924() language.Script {
	mustBeValid(id)
	return isoScripts[id]
}

// ISOCode returns the four-letter ISO 15924 code of id, e.g. "Cyrl".
func (id ID) ISOCode() string {
	mustBeValid(id)
	return isoCodes[id]
}

// FromISO15924 maps an ISO 15924 script to a script ID. The second return
// value is false for scripts outside the supported set.
func FromISO15924(sc language.Script) (ID, bool) {
	for i, s := range isoScripts {
		if s == sc {
			return ID(i), true
		}
	}
	return Unknown, false
}

// Detect returns the script r is a letter of, or Unknown if r belongs to
// none of the supported scripts.
//
// The Unicode script property of r is consulted first; this assigns e.g.
// 'ò' to Latin rather than Greek. Runes the property does not settle are
// matched against the block ranges in ID order. For every rune,
// IsLetterPartOfScript(r, Detect(r)) holds.
func Detect(r rune) ID {
	if id, ok := FromISO15924(language.LookupScript(r)); ok && id != Unknown {
		if IsLetterPartOfScript(r, id) {
			return id
		}
	}
	for id := Latin; int(id) < Count; id++ {
		if IsLetterPartOfScript(r, id) {
			tracer().Debugf("rune %U detected by block range as %s", r, id)
			return id
		}
	}
	return Unknown
}
