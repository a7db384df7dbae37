package fasta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleRecord(t *testing.T) {
	input := ">seq1 a test sequence\nACGT\nACGT\n"
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "seq1", records[0].Sequence.ID)
	assert.Equal(t, "ACGTACGT", string(records[0].Sequence.ActiveBases()))
}

func TestParseMultipleRecords(t *testing.T) {
	input := ">a\nACGT\n>b\nTTTT\n"
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Sequence.ID)
	assert.Equal(t, "b", records[1].Sequence.ID)
}

func TestParseUppercasesAndTrimsWhitespace(t *testing.T) {
	input := ">a\n  acgt \n"
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "ACGT", string(records[0].Sequence.ActiveBases()))
}

func TestParseRejectsSequenceBeforeHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("ACGT\n>a\nACGT\n"))
	assert.Error(t, err)
}

func TestParseRejectsEmptyHeaderBody(t *testing.T) {
	_, err := Parse(strings.NewReader(">a\n>b\nACGT\n"))
	assert.Error(t, err)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseAcceptsIUPACAmbiguityCodes(t *testing.T) {
	records, err := Parse(strings.NewReader(">a\nACGTRYSWKMN\n"))
	require.NoError(t, err)
	assert.Equal(t, "ACGTRYSWKMN", string(records[0].Sequence.ActiveBases()))
}
