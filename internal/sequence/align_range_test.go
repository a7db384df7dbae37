package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIUPACAcceptsAmbiguityCodes(t *testing.T) {
	seq, err := NewIUPAC("ACGTRYSWKMBDHVN", "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", seq.ID)
}

func TestNewIUPACRejectsInvalidLetter(t *testing.T) {
	_, err := NewIUPAC("ACGTZ", "s1")
	assert.Error(t, err)
}

func TestWithRangeNarrowsActiveBases(t *testing.T) {
	seq, err := NewIUPAC("ACGTACGT", "s1")
	require.NoError(t, err)

	sub, err := seq.WithRange(2, 6)
	require.NoError(t, err)
	assert.Equal(t, "GTAC", string(sub.ActiveBases()))
	assert.Equal(t, "ACGTACGT", string(seq.ActiveBases()))
}

func TestWithRangeRejectsOutOfBounds(t *testing.T) {
	seq, err := NewIUPAC("ACGT", "s1")
	require.NoError(t, err)

	_, err = seq.WithRange(-1, 2)
	assert.Error(t, err)
	_, err = seq.WithRange(2, 10)
	assert.Error(t, err)
	_, err = seq.WithRange(3, 2)
	assert.Error(t, err)
}

func TestToIndexFromIndexRoundTrip(t *testing.T) {
	seq, err := NewIUPAC("ACGT", "s1")
	require.NoError(t, err)

	indexed := seq.ToIndex()
	back, err := FromIndex(indexed)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", string(back))
}

func TestFromIndexRejectsOutOfRange(t *testing.T) {
	_, err := FromIndex([]byte{30})
	assert.Error(t, err)
}
