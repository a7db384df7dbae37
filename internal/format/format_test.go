package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/biokit/alnseq/internal/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleAlignment() (*align.Alignment, []byte, []byte) {
	ref := []byte("ACGT")
	qry := []byte("ACGT")
	aln := &align.Alignment{
		Codes:      []align.Code{align.CodeBase, align.CodeBase, align.CodeBase, align.CodeBase},
		NumMatches: 4,
		RefStart:   0, RefEnd: 3,
		QryStart: 0, QryEnd: 3,
	}
	return aln, ref, qry
}

func TestRenderExpandedCIGARAllMatches(t *testing.T) {
	aln, ref, qry := simpleAlignment()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, aln, ref, qry, 20, ExpandedCIGAR, DefaultOptions()))
	assert.Contains(t, buf.String(), "====")
	assert.Contains(t, buf.String(), "score=20")
}

func TestRenderExpandedCIGARWithIndel(t *testing.T) {
	ref := []byte("ACGT")
	qry := []byte("AGT")
	aln := &align.Alignment{
		Codes:          []align.Code{align.CodeBase, align.CodeDel, align.CodeBase, align.CodeBase},
		NumMatches:     3,
		NumDeletions:   1,
		RefStart:       0, RefEnd: 3,
		QryStart: 0, QryEnd: 2,
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, aln, ref, qry, 5, ExpandedCIGAR, DefaultOptions()))
	parts := strings.Split(strings.TrimSpace(buf.String()), "\t")
	assert.Equal(t, "=D==", parts[len(parts)-1])
}

func TestRenderFASTAWrapsAtMinimum(t *testing.T) {
	aln, ref, qry := simpleAlignment()
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.LineWrap = 2
	require.NoError(t, Render(&buf, aln, ref, qry, 20, FASTA, opts))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// minimum FASTA wrap is 10, wider than the whole 4-base line, so it
	// should not actually be split across multiple sequence lines.
	assert.Equal(t, ">ref_0_3", lines[0])
	assert.Equal(t, "ACGT", lines[1])
}

func TestRenderClustalProducesThreeLineBlocks(t *testing.T) {
	aln, ref, qry := simpleAlignment()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, aln, ref, qry, 20, Clustal, DefaultOptions()))
	assert.Contains(t, buf.String(), "ref   ACGT")
	assert.Contains(t, buf.String(), "query ACGT")
}

func TestRenderEMBOSSIncludesScoreAndPositions(t *testing.T) {
	aln, ref, qry := simpleAlignment()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, aln, ref, qry, 20, EMBOSS, DefaultOptions()))
	assert.Contains(t, buf.String(), "# Score: 20")
	assert.Contains(t, buf.String(), "# Ref:")
}

func TestWrapForEnforcesMinimums(t *testing.T) {
	o := Options{LineWrap: 1}
	assert.Equal(t, minWrapFASTA, o.wrapFor(FASTA))
	assert.Equal(t, minWrapClustal, o.wrapFor(Clustal))
	assert.Equal(t, minWrapOther, o.wrapFor(EMBOSS))
}
