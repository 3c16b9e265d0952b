package asil

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for tag parsing and construction.
// Match them with errors.Is; the full context travels in *ParseError.
var (
	// ErrMalformed indicates input that does not match the tag grammar
	// skeleton: missing or misspelled keyword, missing space, unbalanced
	// parentheses, trailing characters.
	ErrMalformed = errors.New("malformed integrity tag")

	// ErrUnknownLevel indicates a level slot holding a token outside the
	// defined set.
	ErrUnknownLevel = errors.New("unknown integrity level")

	// ErrInvalidDecomposition indicates a syntactically well-formed tag
	// whose decomposition violates the integrity rule: QM cannot be
	// decomposed, and a decomposition target cannot be more severe than
	// its base.
	ErrInvalidDecomposition = errors.New("invalid integrity decomposition")
)

// ParseError is the structured error returned by tag parsing and
// construction. Kind is one of the sentinel errors above; branch on it with
// errors.Is rather than matching the message.
type ParseError struct {
	// Kind is the error category (ErrMalformed, ErrUnknownLevel or
	// ErrInvalidDecomposition).
	Kind error

	// Input is the original text or token that was rejected.
	Input string

	// Pos is the byte offset where scanning failed, or -1 when the
	// failure is not tied to a position (semantic rejections).
	Pos int
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v: %q at offset %d", e.Kind, e.Input, e.Pos)
	}
	return fmt.Sprintf("%v: %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// IsMalformed reports whether err is a grammar-level rejection.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsUnknownLevel reports whether err is an unknown-level rejection.
func IsUnknownLevel(err error) bool {
	return errors.Is(err, ErrUnknownLevel)
}

// IsInvalidDecomposition reports whether err is a semantic decomposition
// rejection.
func IsInvalidDecomposition(err error) bool {
	return errors.Is(err, ErrInvalidDecomposition)
}
