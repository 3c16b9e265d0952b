package asil

import (
	"regexp"
	"strings"
)

// lenientPattern recognizes the loose notation found in hand-written
// requirement documents: case-insensitive keywords, an optional "-", "_" or
// " " separator after ASIL, an optional space before the parenthesis, and
// optional single spaces inside it. Compiled once at package init.
var lenientPattern = regexp.MustCompile(
	`(?i)^(?:ASIL[-_ ]?([A-D])|(QM)) ?(?:\( ?([A-D]|QM) ?\))?$`,
)

// ParseLenient converts loosely written tag notation into a Tag.
//
// Humans rarely type the canonical form, so this recognizer accepts inputs
// like "AsilD", "ASIL_D (QM)", "asil-c" or " qm ". Surrounding whitespace
// is trimmed first. The semantics are identical to Parse: the decomposition
// rule still applies, so "QM(B)" is rejected with ErrInvalidDecomposition
// no matter how it is spelled. Structural failures are ErrMalformed; the
// loose recognizer cannot localize an unknown level letter.
//
// Use Parse when the input is expected to already be canonical.
func ParseLenient(s string) (Tag, error) {
	m := lenientPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Tag{}, &ParseError{Kind: ErrMalformed, Input: s, Pos: -1}
	}

	var base Level
	if m[2] != "" {
		base = QM
	} else {
		// The pattern guarantees a single A-D letter in either case.
		base = A + Level(strings.ToUpper(m[1])[0]-'A')
	}

	if m[3] == "" {
		return Tag{base: base}, nil
	}

	target, err := ParseLevel(strings.ToUpper(m[3]))
	if err != nil {
		return Tag{}, err
	}
	if !IsValidDecomposition(base, target) {
		return Tag{}, &ParseError{Kind: ErrInvalidDecomposition, Input: s, Pos: -1}
	}
	return Tag{base: base, decomposed: target, hasDecomposed: true}, nil
}

// Canonicalize rewrites loosely written tag notation into the canonical
// form produced by Tag.String: "AsilD ( qm )" becomes "ASIL D(QM)".
func Canonicalize(s string) (string, error) {
	t, err := ParseLenient(s)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Validate reports whether s is an acceptable loose spelling of a valid
// tag, including the decomposition rule.
func Validate(s string) bool {
	_, err := ParseLenient(s)
	return err == nil
}
