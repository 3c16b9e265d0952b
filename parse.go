package asil

import "strings"

// Parse converts canonical tag notation into a Tag.
//
// The grammar is case- and space-sensitive, recognized in a single
// left-to-right scan with no backtracking:
//
//	tag       := "QM" decomp? | "ASIL" " " baselevel decomp?
//	baselevel := "A" | "B" | "C" | "D"
//	decomp    := "(" dlevel ")"
//	dlevel    := "A" | "B" | "C" | "D" | "QM"
//
// No surrounding or internal whitespace is accepted beyond the single
// mandatory space after the ASIL keyword. Failures are *ParseError values:
// ErrMalformed for structural mismatches, ErrUnknownLevel for a bad token
// in a level slot, and ErrInvalidDecomposition when the grammar matched but
// the pair violates the decomposition rule. A QM base with any
// decomposition is rejected semantically (ErrInvalidDecomposition), not
// structurally, so tooling can report why it was refused.
func Parse(s string) (Tag, error) {
	var base Level
	var i int

	switch {
	case strings.HasPrefix(s, "QM"):
		base = QM
		i = len("QM")
	case strings.HasPrefix(s, "ASIL "):
		i = len("ASIL ")
		if i == len(s) {
			return Tag{}, malformed(s, i)
		}
		lvl, ok := asilLetter(s[i])
		if !ok {
			return Tag{}, badLevelSlot(s, i)
		}
		base = lvl
		i++
	default:
		return Tag{}, malformed(s, 0)
	}

	if i == len(s) {
		return Tag{base: base}, nil
	}

	if s[i] != '(' {
		return Tag{}, malformed(s, i)
	}
	i++
	if i == len(s) {
		return Tag{}, malformed(s, i)
	}

	var target Level
	if lvl, ok := asilLetter(s[i]); ok {
		target = lvl
		i++
	} else if strings.HasPrefix(s[i:], "QM") {
		target = QM
		i += len("QM")
	} else {
		return Tag{}, badLevelSlot(s, i)
	}

	if i == len(s) || s[i] != ')' {
		return Tag{}, malformed(s, i)
	}
	i++
	if i != len(s) {
		return Tag{}, malformed(s, i)
	}

	if !IsValidDecomposition(base, target) {
		return Tag{}, &ParseError{Kind: ErrInvalidDecomposition, Input: s, Pos: -1}
	}
	return Tag{base: base, decomposed: target, hasDecomposed: true}, nil
}

// MustParse is Parse for statically known tags; it panics on error.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// asilLetter maps a single base-level letter to its level.
// QM is not a letter; it is handled by the keyword states.
func asilLetter(c byte) (Level, bool) {
	if c < 'A' || c > 'D' {
		return 0, false
	}
	return A + Level(c-'A'), true
}

func malformed(s string, pos int) error {
	return &ParseError{Kind: ErrMalformed, Input: s, Pos: pos}
}

// badLevelSlot classifies a failed level slot: a letter that is not a
// defined level token is an unknown level, anything else (whitespace,
// punctuation) is a structural mismatch.
func badLevelSlot(s string, pos int) error {
	c := s[pos]
	if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		return &ParseError{Kind: ErrUnknownLevel, Input: s, Pos: pos}
	}
	return malformed(s, pos)
}
