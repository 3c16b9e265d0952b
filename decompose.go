package asil

// IsValidDecomposition reports whether a requirement at the base level may
// be decomposed into a requirement at the target level.
//
// ISO 26262 decomposition splits an integrity obligation into a
// lower-or-equal one, so the target's rank must not exceed the base's.
// QM carries no integrity obligation and therefore has nothing to
// decompose. The function is total over all 25 ordered level pairs.
func IsValidDecomposition(base, target Level) bool {
	return base != QM && target.Rank() <= base.Rank()
}

// VerifyInheritance reports whether child may legitimately inherit its
// integrity from parent.
//
// Integrity is normally inherited as-is: the child's base level equals the
// parent's. When the parent declares a decomposition ("ASIL D(C)"), the
// annotation names the share a derived requirement may take, so a child
// whose base equals the declared target also inherits legitimately. A
// child's own annotation describes how the child may be split further and
// plays no part in the check.
func VerifyInheritance(parent, child Tag) bool {
	if child.Base() == parent.Base() {
		return true
	}
	if target, ok := parent.DecomposedInto(); ok {
		return child.Base() == target
	}
	return false
}
