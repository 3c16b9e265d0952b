package asil

import "fmt"

// Level represents an ISO 26262 automotive safety integrity level.
// The numeric value of a Level is its severity rank: QM is the lowest
// classification and D the highest.
type Level int

const (
	// QM is the Quality Management classification.
	// It sits below every ASIL level and carries no integrity obligation.
	QM Level = iota

	// A is ASIL A, the lowest integrity level.
	A

	// B is ASIL B.
	B

	// C is ASIL C.
	C

	// D is ASIL D, the highest integrity level.
	D
)

// levelTokens maps each level to the exact token used in tag notation.
// The mapping is a bijection; ParseLevel is its inverse.
var levelTokens = map[Level]string{
	QM: "QM",
	A:  "A",
	B:  "B",
	C:  "C",
	D:  "D",
}

// Levels returns all five levels in ascending severity order.
func Levels() []Level {
	return []Level{QM, A, B, C, D}
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= QM && l <= D
}

// Rank returns the severity ordinal of the level: QM=0, A=1, B=2, C=3, D=4.
func (l Level) Rank() int {
	return int(l)
}

// String returns the exact token for the level ("QM", "A", "B", "C", "D").
// Undefined levels render as "Level(n)" for debugging; they never occur in
// values produced by this package.
func (l Level) String() string {
	if tok, ok := levelTokens[l]; ok {
		return tok
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a token to its level. The match is exact: case-sensitive,
// no trimming, no synonyms. Anything other than "QM", "A", "B", "C" or "D"
// fails with ErrUnknownLevel.
func ParseLevel(token string) (Level, error) {
	for l, tok := range levelTokens {
		if tok == token {
			return l, nil
		}
	}
	return 0, &ParseError{Kind: ErrUnknownLevel, Input: token, Pos: -1}
}
