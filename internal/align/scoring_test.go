package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieBreakPermutationsAreRanks(t *testing.T) {
	for t1 := MatchInsDel; t1 <= DelInsMatch; t1++ {
		ranks := t1.ranks()
		seen := map[int]bool{}
		for _, r := range ranks {
			assert.False(t, seen[r], "duplicate rank in %v", t1)
			seen[r] = true
		}
		assert.True(t, t1.Valid())
	}
}

func TestTieBreakPickPrefersHigherScore(t *testing.T) {
	dir, score := MatchInsDel.Pick(10, 5, 3)
	assert.Equal(t, Diagonal, dir)
	assert.EqualValues(t, 10, score)
}

func TestTieBreakPickResolvesTies(t *testing.T) {
	dir, score := MatchInsDel.Pick(10, 10, 10)
	assert.Equal(t, Diagonal, dir)
	assert.EqualValues(t, 10, score)

	dir, _ = InsMatchDel.Pick(10, 10, 10)
	assert.Equal(t, Insertion, dir)

	dir, _ = DelInsMatch.Pick(10, 10, 10)
	assert.Equal(t, Deletion, dir)
}

func TestTieBreakFromFlag(t *testing.T) {
	tb, err := TieBreakFromFlag("del-ins-match")
	require.NoError(t, err)
	assert.Equal(t, DelInsMatch, tb)

	_, err = TieBreakFromFlag("bogus")
	assert.Error(t, err)
}

func TestDefaultMatrixIsIUPACAware(t *testing.T) {
	s := NewDefaultSettings()
	assert.EqualValues(t, DefaultMatch, s.Matrix[letterIndex('A')][letterIndex('A')])
	assert.EqualValues(t, DefaultMismatch, s.Matrix[letterIndex('A')][letterIndex('C')])
	assert.EqualValues(t, DefaultMatch, s.Matrix[letterIndex('N')][letterIndex('A')])
}

func TestScoreCaseInsensitive(t *testing.T) {
	s := NewDefaultSettings()
	assert.Equal(t, s.Score('A', 'A'), s.Score('a', 'a'))
}

func TestValidateRequiresExactlyOneKernel(t *testing.T) {
	s := NewDefaultSettings()
	s.UseNeedleman = false
	assert.Error(t, s.Validate())

	s.UseNeedleman = true
	s.UseSmithWaterman = true
	assert.Error(t, s.Validate())
}

func TestValidateMutualExclusion(t *testing.T) {
	s := NewDefaultSettings()
	s.UseNeedleman = false
	s.UseSmithWaterman = true
	s.RefQueryScan = true
	s.MatrixScan = true
	assert.Error(t, s.Validate())
}

func TestValidateScanRequiresSmithWaterman(t *testing.T) {
	s := NewDefaultSettings()
	s.RefQueryScan = true
	assert.Error(t, s.Validate())
}

func TestValidateScanRequiresMultiBaseWater(t *testing.T) {
	s := NewDefaultSettings()
	s.UseNeedleman = false
	s.UseSmithWaterman = true
	s.RefQueryScan = true
	assert.Error(t, s.Validate())

	s.MultiBaseWater = true
	assert.NoError(t, s.Validate())
}
