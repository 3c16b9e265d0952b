package asil

// Tag is a parsed ASIL integrity tag: a base level, optionally annotated
// with the level it has been decomposed into ("ASIL D(C)").
//
// Tag is an immutable comparable value. Two tags are the same value (==)
// when both the base and the decomposition annotation match. Severity
// ordering, by contrast, considers only the base level; see Compare.
//
// The zero Tag is "QM".
type Tag struct {
	base          Level
	decomposed    Level
	hasDecomposed bool
}

// New returns a tag for a plain (non-decomposed) level.
func New(base Level) (Tag, error) {
	if !base.Valid() {
		return Tag{}, &ParseError{Kind: ErrUnknownLevel, Input: base.String(), Pos: -1}
	}
	return Tag{base: base}, nil
}

// NewDecomposed returns a tag for a level decomposed into a target level.
// The pair must satisfy the decomposition rule: the base cannot be QM, and
// the target cannot be more severe than the base.
func NewDecomposed(base, target Level) (Tag, error) {
	if !base.Valid() {
		return Tag{}, &ParseError{Kind: ErrUnknownLevel, Input: base.String(), Pos: -1}
	}
	if !target.Valid() {
		return Tag{}, &ParseError{Kind: ErrUnknownLevel, Input: target.String(), Pos: -1}
	}
	if !IsValidDecomposition(base, target) {
		return Tag{}, &ParseError{
			Kind:  ErrInvalidDecomposition,
			Input: base.String() + "(" + target.String() + ")",
			Pos:   -1,
		}
	}
	return Tag{base: base, decomposed: target, hasDecomposed: true}, nil
}

// Base returns the base integrity level of the tag.
func (t Tag) Base() Level {
	return t.base
}

// DecomposedInto returns the decomposition target and whether one is
// present.
func (t Tag) DecomposedInto() (Level, bool) {
	return t.decomposed, t.hasDecomposed
}

// String returns the canonical notation: "QM", "ASIL A", "ASIL B(A)",
// "ASIL D(QM)". Parse accepts every string this produces.
func (t Tag) String() string {
	var s string
	if t.base == QM {
		s = "QM"
	} else {
		s = "ASIL " + t.base.String()
	}
	if t.hasDecomposed {
		s += "(" + t.decomposed.String() + ")"
	}
	return s
}

// Compare orders tags by severity of their base level. It returns -1 if t
// is less severe than o, 0 if equally severe, and 1 if more severe. The
// decomposition annotation describes how the requirement may be split and
// does not affect severity, so "ASIL D" and "ASIL D(C)" compare equal here
// while remaining distinct values under ==.
func (t Tag) Compare(o Tag) int {
	switch {
	case t.base < o.base:
		return -1
	case t.base > o.base:
		return 1
	default:
		return 0
	}
}

// Less reports whether t is strictly less severe than o.
func (t Tag) Less(o Tag) bool {
	return t.Compare(o) < 0
}

// Greater reports whether t is strictly more severe than o.
func (t Tag) Greater(o Tag) bool {
	return t.Compare(o) > 0
}

// Equal reports whether t and o carry the same severity. Use == for
// full-value identity including the decomposition annotation.
func (t Tag) Equal(o Tag) bool {
	return t.Compare(o) == 0
}
