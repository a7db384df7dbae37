package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoBitArraySetGet(t *testing.T) {
	arr := NewTwoBitArray(10)
	codes := []Direction{Stop, Insertion, Diagonal, Deletion, Diagonal, Stop, Insertion, Deletion, Diagonal, Stop}

	for i, c := range codes {
		arr.SetAt(i, c)
	}
	for i, want := range codes {
		assert.Equal(t, want, arr.At(i), "index %d", i)
	}
}

func TestTwoBitArrayCursorAdvanceRetreat(t *testing.T) {
	arr := NewTwoBitArray(8)
	arr.Seek(0)
	for i := 0; i < 8; i++ {
		arr.Set(Direction(i % 4))
		if i < 7 {
			arr.Advance()
		}
	}
	require.Equal(t, 7, arr.Index())

	for i := 6; i >= 0; i-- {
		arr.Retreat()
		assert.Equal(t, i, arr.Index())
	}
}

func TestTwoBitArraySeekAndAdvanceBy(t *testing.T) {
	arr := NewTwoBitArray(20)
	arr.Seek(5)
	arr.Set(Diagonal)
	arr.AdvanceBy(7)
	assert.Equal(t, 12, arr.Index())
	arr.Set(Deletion)
	arr.RetreatBy(7)
	assert.Equal(t, 5, arr.Index())
	assert.Equal(t, Diagonal, arr.Get())
	arr.Seek(12)
	assert.Equal(t, Deletion, arr.Get())
}

func TestTwoBitArrayDoesNotClobberNeighbors(t *testing.T) {
	arr := NewTwoBitArray(4)
	arr.SetAt(0, Diagonal)
	arr.SetAt(1, Insertion)
	arr.SetAt(2, Deletion)
	arr.SetAt(3, Stop)

	assert.Equal(t, Diagonal, arr.At(0))
	assert.Equal(t, Insertion, arr.At(1))
	assert.Equal(t, Deletion, arr.At(2))
	assert.Equal(t, Stop, arr.At(3))
}
