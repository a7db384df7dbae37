package align

// NeedlemanResult is the outcome of a global alignment: the best score and
// the traceback-ready Alignment built from the full direction matrix.
type NeedlemanResult struct {
	Score     int64
	Alignment *Alignment
}

// Needleman runs the affine-gap Needleman-Wunsch global alignment of ref
// against qry, building the full O(refLen*qryLen) direction matrix and
// tracing back from its bottom-right corner. Row 0 is initialized with
// Deletion (reference bases against a query gap) and column 0 with
// Insertion (query bases against a reference gap), so the origin cell (0,0)
// is the only Stop cell
// and the traceback always walks the full length of both sequences.
//
// Either sequence (but not necessarily both) may be empty: the matrix then
// degenerates to a single row or column of pure gap, and the boundary
// gap-cost formula below (gap_open+(L-1)*gap_extend) falls straight out of
// row/column 0's own initialization without any special case.
func Needleman(ref, qry []byte, settings *ScoringSettings) (*NeedlemanResult, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	refLen, qryLen := len(ref), len(qry)
	stride := refLen + 1
	matrix := NewTwoBitArray(stride * (qryLen + 1))

	gapOpen := int64(settings.GapOpen)
	gapExtend := int64(settings.GapExtend)

	// Two score rows are ping-ponged; the direction matrix is filled in
	// full since the traceback needs random access to every cell.
	prevScore := make([]int64, stride)
	currScore := make([]int64, stride)

	prevScore[0] = 0
	matrix.SetAt(0, Stop)
	for j := 1; j <= refLen; j++ {
		prevScore[j] = gapOpen + int64(j-1)*gapExtend
		matrix.SetAt(j, Deletion)
	}

	for i := 1; i <= qryLen; i++ {
		currScore[0] = gapOpen + int64(i-1)*gapExtend
		matrix.SetAt(i*stride, Insertion)

		for j := 1; j <= refLen; j++ {
			matchScore := settings.Score(ref[j-1], qry[i-1])
			upDir := matrix.At((i - 1) * stride + j)
			leftDir := matrix.At(i*stride + j - 1)

			dir, score := selectCell(settings, matchScore, prevScore[j-1], prevScore[j], upDir, currScore[j-1], leftDir)
			currScore[j] = score
			matrix.SetAt(i*stride+j, dir)
		}

		prevScore, currScore = currScore, prevScore
	}

	best := prevScore[refLen]
	aln, err := FromMatrix(ref, qry, matrix, refLen, qryLen, qryLen, refLen, false)
	if err != nil {
		return nil, err
	}

	return &NeedlemanResult{Score: best, Alignment: aln}, nil
}
