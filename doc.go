// Package asil parses, validates, and compares ISO 26262 automotive safety
// integrity tags (QM, ASIL A-D) for requirements-management and
// traceability tooling.
//
// # Overview
//
// A tag names the integrity obligation of a safety requirement, optionally
// annotated with the level it has been decomposed into:
//
//	QM          ASIL A          ASIL D(C)          ASIL B(QM)
//
// The package provides a closed level enumeration with a fixed severity
// rank, a strict grammar parser, a lenient recognizer for hand-written
// documents, a severity ordering, and the decomposition-validity rule.
//
// # Parsing
//
// Parse accepts only the canonical notation: exact case, a single space
// after the ASIL keyword, no space inside the parentheses. ParseLenient
// accepts the loose spellings found in real requirement documents
// ("AsilD", "asil_d ( qm )") and Canonicalize rewrites them to canonical
// form. Both report failures as *ParseError values carrying one of three
// sentinel kinds:
//
//   - ErrMalformed: the input does not match the grammar skeleton
//   - ErrUnknownLevel: a level slot holds a token outside QM, A, B, C, D
//   - ErrInvalidDecomposition: well-formed, but the pair breaks the rule
//
// "QM(A)" is grammatically recognizable and fails semantically, so callers
// can report why it was refused rather than just that it was.
//
// # Invariant
//
// A Tag can never exist in an invalid state: Parse, ParseLenient, New and
// NewDecomposed are the only ways to obtain one, and each enforces that a
// decomposition target is not more severe than its base and that QM is
// never decomposed. Tags are immutable comparable values; == is full-value
// identity.
//
// # Ordering
//
// Severity ordering considers only the base level. "ASIL D" and
// "ASIL D(C)" compare equal under Compare while remaining distinct values:
// the annotation describes how a requirement may be split, not how severe
// it is.
//
// # Decomposition and inheritance
//
// IsValidDecomposition exposes the construction-time rule for level pairs
// supplied directly by callers, e.g. when checking a proposed requirement
// split before any tag text exists. VerifyInheritance checks a single
// parent/child requirement pair: a child inherits the parent's base level
// as-is, or, when the parent declares a decomposition, the target level
// the parent names.
//
// # Document embedding
//
// Level and Tag implement encoding.TextMarshaler/TextUnmarshaler and the
// yaml.v3 marshaler interfaces, so they can sit directly in requirement
// front-matter structs:
//
//	type Requirement struct {
//	    ID        string   `yaml:"id" json:"id"`
//	    Integrity asil.Tag `yaml:"integrity" json:"integrity"`
//	}
//
// Decoding goes through the strict parser, so documents carry canonical
// notation only.
//
// # Concurrency
//
// Every operation is a pure function over immutable values. The package is
// safe for unrestricted concurrent use without coordination.
package asil
