package script

import "unicode"

// span is an inclusive range of code points.
type span struct {
	lo, hi rune
}

func (s span) contains(r rune) bool {
	return r >= s.lo && r <= s.hi
}

// blocks holds the Unicode block ranges for each script, indexed by ID.
// Unknown has no ranges; it is never consulted.
var blocks = [Count][]span{
	Latin: {
		// C0, C1, Latin Extended-A/B and IPA extensions are back to back.
		{0, 0x2AF},
	},
	Cyrillic: {
		// Archaic Cyrillic in the upper ranges is not in any dictionary.
		{0x400, 0x52F},
	},
	Greek: {
		{0x370, 0x3FF},   // Greek and Coptic
		{0x1F00, 0x1FFF}, // Greek Extended
		{0xF2, 0xF2},     // ò occurs in a few dictionary words
	},
	Arabic: {
		{0x600, 0x6FF},   // Arabic
		{0x750, 0x77F},   // Arabic Supplement
		{0x8A0, 0x8FF},   // Arabic Extended-A
		{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
		{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
	},
	Hebrew: {
		{0x590, 0x5FF},
		{0xFB1D, 0xFB4F}, // Hebrew part of Alphabetic Presentation Forms
	},
	Armenian: {
		{0x530, 0x58F},
		{0xFB13, 0xFB17}, // Armenian part of Alphabetic Presentation Forms
	},
	Georgian: {
		{0x10A0, 0x10FF},
		{0x2D00, 0x2D2F}, // Georgian Supplement
	},
	Khmer: {
		{0x1780, 0x17FF},
		{0x19E0, 0x19FF}, // Khmer Symbols
	},
	Lao: {
		{0xE80, 0xEFF},
	},
	Myanmar: {
		{0x1000, 0x109F},
		{0xAA60, 0xAA7F}, // Extended-A
		{0xA9E0, 0xA9FF}, // Extended-B
	},
	Sinhala: {
		{0xD80, 0xDFF},
	},
	Thai: {
		{0xE00, 0xE7F},
	},
	Telugu: {
		{0xC00, 0xC7F},
	},
}

// lettersOnly marks scripts for which a rune in range must also be a letter.
// Latin needs it to exclude ASCII punctuation and digits below 0x40.
var lettersOnly = [Count]bool{
	Latin:    true,
	Cyrillic: true,
}

// IsLetterPartOfScript reports whether r is a letter that belongs to script id.
//
// Every rune is accepted for Unknown. For Latin and Cyrillic, r has to be
// inside the script's block ranges and be a Unicode letter. For every other
// script, being inside one of the script's blocks is sufficient.
//
// IsLetterPartOfScript panics if id is not a valid script ID.
func IsLetterPartOfScript(r rune, id ID) bool {
	mustBeValid(id)
	if id == Unknown {
		return true
	}
	if !inBlocks(r, id) {
		return false
	}
	return !lettersOnly[id] || unicode.IsLetter(r)
}

func inBlocks(r rune, id ID) bool {
	for _, s := range blocks[id] {
		if s.contains(r) {
			return true
		}
	}
	return false
}
