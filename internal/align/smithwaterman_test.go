package align

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmithWatermanFindsConservedCore(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true

	ref := []byte("TTTTACGTACGTTTTT")
	qry := []byte("GGGGACGTACGTGGGG")

	single, _, err := SmithWaterman(ref, qry, settings, nil)
	require.NoError(t, err)
	require.NotNil(t, single.Alignment)

	assert.Greater(t, single.Score, int64(0))
	assert.GreaterOrEqual(t, single.Alignment.NumMatches, 8)
}

func TestSmithWatermanRejectsNegativeScoreAsEmpty(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true

	ref := []byte("AAAA")
	qry := []byte("TTTT")

	single, _, err := SmithWaterman(ref, qry, settings, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, single.Score)
}

func TestSmithWatermanMatrixScanStreamsHits(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true
	settings.MultiBaseWater = true
	settings.MatrixScan = true
	settings.MinScore = 5

	var buf bytes.Buffer
	ref := []byte("ACGTACGTACGT")
	qry := []byte("ACGTACGTACGT")

	_, _, err := SmithWaterman(ref, qry, settings, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		assert.Len(t, fields, 6)
	}
}

func TestSmithWatermanRefQueryScanFiltersOverlaps(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true
	settings.MultiBaseWater = true
	settings.RefQueryScan = true
	settings.MinScore = 5

	ref := []byte("ACGTACGTACGTACGT")
	qry := []byte("ACGTACGTACGTACGT")

	_, multi, err := SmithWaterman(ref, qry, settings, nil)
	require.NoError(t, err)

	for i := 0; i < len(multi); i++ {
		for j := 0; j < len(multi); j++ {
			if i == j {
				continue
			}
			assert.False(t, shadows(multi[i], multi[j]) && shadows(multi[j], multi[i]))
		}
	}
}

func TestSmithWatermanMatrixScanOnlyEmitsTermini(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true
	settings.MultiBaseWater = true
	settings.MatrixScan = true

	// A pure run of matches scores 5 per step, so only the final cell of
	// the diagonal run reaches the maximum; every earlier cell along that
	// same path continues into a higher-scoring successor and must not be
	// reported separately.
	ref := []byte("ACGTACGT")
	qry := []byte("ACGTACGT")
	settings.MinScore = int64(len(ref)) * int64(DefaultMatch)

	var buf bytes.Buffer
	_, _, err := SmithWaterman(ref, qry, settings, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 6)
	assert.Equal(t, "8X", fields[3])
}

func TestSmithWatermanEmptyQuerySideProducesAllDeletions(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true
	settings.GapOpen = -10
	settings.GapExtend = -1

	single, multi, err := SmithWaterman([]byte("AAAA"), []byte(""), settings, nil)
	require.NoError(t, err)
	assert.Nil(t, multi)
	assert.Equal(t, 4, single.Alignment.NumDeletions)
	assert.EqualValues(t, -13, single.Score)
}

func TestSmithWatermanEmptyRefSideProducesAllInsertions(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true
	settings.GapOpen = -10
	settings.GapExtend = -1

	single, _, err := SmithWaterman([]byte(""), []byte("AAAA"), settings, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, single.Alignment.NumInsertions)
	assert.EqualValues(t, -13, single.Score)
}

func TestSmithWatermanRefQueryScanTracksBothRowAndColumnBests(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true
	settings.MultiBaseWater = true
	settings.RefQueryScan = true
	settings.MinScore = int64(4) * int64(DefaultMatch)

	ref := []byte("ACGTACGTACGTACGT")
	qry := []byte("ACGTTTTTTTTACGTT")

	_, multi, err := SmithWaterman(ref, qry, settings, nil)
	require.NoError(t, err)
	require.NotEmpty(t, multi)

	seen := make(map[[2]int]bool)
	for _, hit := range multi {
		key := [2]int{hit.QueryEnd, hit.RefEnd}
		assert.False(t, seen[key], "duplicate hit at query-end=%d ref-end=%d", hit.QueryEnd, hit.RefEnd)
		seen[key] = true
		assert.GreaterOrEqual(t, hit.Score, settings.MinScore)
	}
}

func TestSmithWatermanMatrixScanRequiresSink(t *testing.T) {
	settings := NewDefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true
	settings.MultiBaseWater = true
	settings.MatrixScan = true

	_, _, err := SmithWaterman([]byte("ACGT"), []byte("ACGT"), settings, nil)
	assert.Error(t, err)
}
