package asil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, base := range Levels() {
		tag, err := New(base)
		require.NoError(t, err)
		assert.Equal(t, base, tag.Base())
		_, ok := tag.DecomposedInto()
		assert.False(t, ok)
	}

	_, err := New(Level(9))
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewDecomposed(t *testing.T) {
	tag, err := NewDecomposed(D, QM)
	require.NoError(t, err)
	target, ok := tag.DecomposedInto()
	require.True(t, ok)
	assert.Equal(t, QM, target)

	_, err = NewDecomposed(A, B)
	assert.ErrorIs(t, err, ErrInvalidDecomposition)
	_, err = NewDecomposed(QM, QM)
	assert.ErrorIs(t, err, ErrInvalidDecomposition)
	_, err = NewDecomposed(Level(-2), A)
	assert.ErrorIs(t, err, ErrUnknownLevel)
	_, err = NewDecomposed(D, Level(7))
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{MustParse("QM"), "QM"},
		{MustParse("ASIL A"), "ASIL A"},
		{MustParse("ASIL B(A)"), "ASIL B(A)"},
		{MustParse("ASIL D(QM)"), "ASIL D(QM)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tag.String())
	}

	var zero Tag
	assert.Equal(t, "QM", zero.String(), "the zero Tag is QM")
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, MustParse("ASIL D").Compare(MustParse("ASIL A")))
	assert.Equal(t, -1, MustParse("QM").Compare(MustParse("ASIL A")))
	assert.Equal(t, 0, MustParse("ASIL C").Compare(MustParse("ASIL C")))

	assert.True(t, MustParse("ASIL A").Less(MustParse("ASIL B")))
	assert.True(t, MustParse("ASIL D").Greater(MustParse("QM")))
	assert.True(t, MustParse("ASIL B").Equal(MustParse("ASIL B")))
}

// Ordering ignores the decomposition annotation; value identity does not.
func TestCompareIgnoresDecomposition(t *testing.T) {
	plain := MustParse("ASIL D")
	split := MustParse("ASIL D(C)")

	assert.Equal(t, 0, plain.Compare(split))
	assert.True(t, plain.Equal(split))
	assert.NotEqual(t, plain, split)
	assert.Equal(t, split, MustParse("ASIL D(C)"))
}

// Compare reduces to integer comparison of base ranks, so it must behave
// as a total order over every pair of constructible base levels.
func TestCompareIsTotalOrder(t *testing.T) {
	var tags []Tag
	for _, l := range Levels() {
		tag, err := New(l)
		require.NoError(t, err)
		tags = append(tags, tag)
	}

	for _, a := range tags {
		assert.Equal(t, 0, a.Compare(a), "reflexive: %s", a)
		for _, b := range tags {
			assert.Equal(t, -b.Compare(a), a.Compare(b), "antisymmetric: %s vs %s", a, b)
			for _, c := range tags {
				if a.Compare(b) <= 0 && b.Compare(c) <= 0 {
					assert.LessOrEqual(t, a.Compare(c), 0, "transitive: %s, %s, %s", a, b, c)
				}
			}
		}
	}
}
