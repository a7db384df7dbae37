package align

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkHit(qEnd, rEnd int, score int64) *MultiAlignmentResult {
	return &MultiAlignmentResult{
		QueryEnd: qEnd,
		RefEnd:   rEnd,
		Score:    score,
		Alignment: &Alignment{
			QryStart: qEnd - 3,
			RefStart: rEnd - 3,
		},
	}
}

func TestShellSortMatchesTrivialOrder(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	hits := make([]*MultiAlignmentResult, 50)
	for i := range hits {
		hits[i] = mkHit(r.Intn(1000), r.Intn(1000), int64(r.Intn(100)))
	}

	SortByQuery(hits)
	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i-1].QueryEnd, hits[i].QueryEnd)
	}
}

func TestSortByQueryRef(t *testing.T) {
	hits := []*MultiAlignmentResult{
		mkHit(5, 9, 10),
		mkHit(5, 3, 10),
		mkHit(2, 9, 10),
	}
	SortByQueryRef(hits)
	assert.Equal(t, 2, hits[0].QueryEnd)
	assert.Equal(t, 5, hits[1].QueryEnd)
	assert.Equal(t, 3, hits[1].RefEnd)
	assert.Equal(t, 9, hits[2].RefEnd)
}

func TestSortByScoreDescending(t *testing.T) {
	hits := []*MultiAlignmentResult{
		mkHit(5, 9, 10),
		mkHit(2, 3, 90),
		mkHit(8, 1, 40),
	}
	SortByScore(hits)
	assert.Equal(t, int64(90), hits[0].Score)
	assert.Equal(t, int64(40), hits[1].Score)
	assert.Equal(t, int64(10), hits[2].Score)
}

func TestFilterOverlapSkipsVacatedZeroScoreSlots(t *testing.T) {
	real := mkHit(20, 20, 50)
	real.Alignment.QryStart = 0
	real.Alignment.RefStart = 0
	vacated := mkHit(0, 0, 0)
	vacated.Alignment.QryStart = 0
	vacated.Alignment.RefStart = 0

	kept := FilterOverlapQryRef([]*MultiAlignmentResult{real, vacated})
	assert.Len(t, kept, 1)
	assert.Equal(t, int64(50), kept[0].Score)
}

func TestShadowsDropsSubsumedHit(t *testing.T) {
	big := mkHit(20, 20, 50)
	small := mkHit(10, 10, 10)
	small.Alignment.QryStart = 5
	small.Alignment.RefStart = 5
	big.Alignment.QryStart = 0
	big.Alignment.RefStart = 0

	assert.True(t, shadows(big, small))
	assert.False(t, shadows(small, big))
}

func TestFilterOverlapQryRefDropsShadowed(t *testing.T) {
	big := mkHit(20, 20, 50)
	big.Alignment.QryStart = 0
	big.Alignment.RefStart = 0
	small := mkHit(10, 10, 10)
	small.Alignment.QryStart = 5
	small.Alignment.RefStart = 5
	disjoint := mkHit(100, 100, 30)
	disjoint.Alignment.QryStart = 90
	disjoint.Alignment.RefStart = 90

	kept := FilterOverlapQryRef([]*MultiAlignmentResult{big, small, disjoint})
	assert.Len(t, kept, 2)
	for _, k := range kept {
		assert.NotEqual(t, int64(10), k.Score)
	}
}
