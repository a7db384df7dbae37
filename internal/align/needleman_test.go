package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedlemanIdenticalSequences(t *testing.T) {
	settings := NewDefaultSettings()
	result, err := Needleman([]byte("ACGTACGT"), []byte("ACGTACGT"), settings)
	require.NoError(t, err)

	assert.EqualValues(t, 8*int64(DefaultMatch), result.Score)
	assert.Equal(t, 8, result.Alignment.NumMatches)
	assert.Equal(t, 0, result.Alignment.NumMismatches)
	assert.Equal(t, 0, result.Alignment.NumInsertions)
	assert.Equal(t, 0, result.Alignment.NumDeletions)
	assert.Equal(t, 0, result.Alignment.RefStart)
	assert.Equal(t, 7, result.Alignment.RefEnd)
	assert.Equal(t, 0, result.Alignment.QryStart)
	assert.Equal(t, 7, result.Alignment.QryEnd)
}

func TestNeedlemanSingleMismatch(t *testing.T) {
	settings := NewDefaultSettings()
	result, err := Needleman([]byte("ACGT"), []byte("ACCT"), settings)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Alignment.NumMatches)
	assert.Equal(t, 1, result.Alignment.NumMismatches)
	assert.EqualValues(t, 3*int64(DefaultMatch)+int64(DefaultMismatch), result.Score)
}

func TestNeedlemanEntirelyDifferentPrefersGaps(t *testing.T) {
	settings := NewDefaultSettings()
	settings.GapOpen = -1
	settings.GapExtend = 0
	result, err := Needleman([]byte("AAAA"), []byte("TTTT"), settings)
	require.NoError(t, err)
	assert.NotNil(t, result.Alignment)
}

func TestNeedlemanPureGapBoundaryScore(t *testing.T) {
	settings := NewDefaultSettings()
	settings.GapOpen = -10
	settings.GapExtend = -1
	result, err := Needleman([]byte("AAAA"), []byte("G"), settings)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Alignment.NumMismatches+result.Alignment.NumMatches)
	assert.Equal(t, 3, result.Alignment.NumDeletions)
	assert.EqualValues(t, -16, result.Score)
}

func TestNeedlemanEmptyQuerySideProducesAllDeletions(t *testing.T) {
	settings := NewDefaultSettings()
	settings.GapOpen = -10
	settings.GapExtend = -1
	result, err := Needleman([]byte("AAAA"), []byte(""), settings)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Alignment.NumDeletions)
	assert.EqualValues(t, -13, result.Score)
}

func TestNeedlemanEmptyRefSideProducesAllInsertions(t *testing.T) {
	settings := NewDefaultSettings()
	settings.GapOpen = -10
	settings.GapExtend = -1
	result, err := Needleman([]byte(""), []byte("AAAA"), settings)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Alignment.NumInsertions)
	assert.EqualValues(t, -13, result.Score)
}

func TestNeedlemanCodesCoverFullLength(t *testing.T) {
	settings := NewDefaultSettings()
	ref, qry := []byte("GATTACA"), []byte("GCATGCT")
	result, err := Needleman(ref, qry, settings)
	require.NoError(t, err)

	refConsumed, qryConsumed := 0, 0
	for _, c := range result.Alignment.Codes {
		switch c {
		case CodeBase:
			refConsumed++
			qryConsumed++
		case CodeIns:
			qryConsumed++
		case CodeDel:
			refConsumed++
		}
	}
	assert.Equal(t, len(ref), refConsumed)
	assert.Equal(t, len(qry), qryConsumed)
}
