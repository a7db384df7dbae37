package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasesMatchExact(t *testing.T) {
	assert.True(t, BasesMatch('A', 'A'))
	assert.True(t, BasesMatch('a', 'A'))
	assert.False(t, BasesMatch('A', 'C'))
}

func TestBasesMatchTU(t *testing.T) {
	assert.True(t, BasesMatch('T', 'U'))
	assert.True(t, BasesMatch('t', 'u'))
}

func TestBasesMatchAmbiguity(t *testing.T) {
	tests := []struct {
		a, b byte
		want bool
	}{
		{'N', 'A', true},
		{'N', 'T', true},
		{'R', 'A', true},
		{'R', 'G', true},
		{'R', 'C', false},
		{'Y', 'C', true},
		{'Y', 'T', true},
		{'Y', 'G', false},
		{'W', 'A', true},
		{'W', 'T', true},
		{'W', 'C', false},
		{'S', 'G', true},
		{'S', 'C', true},
		{'S', 'A', false},
		{'B', 'A', false},
		{'B', 'C', true},
		{'V', 'T', false},
		{'X', 'G', true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BasesMatch(tt.a, tt.b), "%c vs %c", tt.a, tt.b)
	}
}
