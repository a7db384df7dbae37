package align

import (
	"fmt"
	"io"
	"strings"
)

// SmithWatermanResult is a single best-scoring local alignment.
type SmithWatermanResult struct {
	Score     int64
	Alignment *Alignment
}

// MultiAlignmentResult is one hit out of a multi-base-water run: its score
// and the anchor cell's 0-based (queryEnd, refEnd) end indices, alongside
// the built Alignment.
type MultiAlignmentResult struct {
	Score           int64
	QueryEnd, RefEnd int
	Alignment       *Alignment
}

// ScanSink receives one streamed hit at a time during a matrix-scan
// Smith-Waterman run, instead of the kernel collecting every hit in memory.
// Each hit is written as a single tab-separated line:
//
//	score	qend	rend	CIGAR	qstart	rstart
type ScanSink interface {
	io.Writer
}

// WriteHit formats and writes one matrix-scan hit to sink.
func WriteHit(sink ScanSink, score int64, aln *Alignment, cigar string) error {
	_, err := fmt.Fprintf(sink, "%d\t%d\t%d\t%s\t%d\t%d\n",
		score, aln.QryEnd, aln.RefEnd, cigar, aln.QryStart, aln.RefStart)
	return err
}

// swCell tracks a candidate local-alignment endpoint discovered while
// scanning the matrix.
type swCell struct {
	i, j  int
	score int64
}

// boundaryGapAlignment builds the all-gap alignment for the case where one
// side of the pair (but not necessarily both) is empty: the whole of the
// non-empty side is rendered as a single gap run against nothing. Its score
// follows the same boundary formula Needleman's row-0/column-0
// initialization and Hirschberg's flushLeading both use for a gap run that
// spans the entire alignment: gap_open+(L-1)*gap_extend rather than the
// gap_open+L*gap_extend an interior run would cost.
func boundaryGapAlignment(ref, qry []byte, settings *ScoringSettings) (*Alignment, int64) {
	var codes []Code
	switch {
	case len(qry) == 0 && len(ref) == 0:
		codes = nil
	case len(qry) == 0:
		codes = make([]Code, len(ref))
		for i := range codes {
			codes[i] = CodeDel
		}
	case len(ref) == 0:
		codes = make([]Code, len(qry))
		for i := range codes {
			codes[i] = CodeIns
		}
	}

	n := len(codes)
	var score int64
	if n > 0 {
		score = int64(settings.GapOpen) + int64(n-1)*int64(settings.GapExtend)
	}

	aln := &Alignment{
		Codes:    codes,
		RefStart: 0,
		RefEnd:   len(ref) - 1,
		QryStart: 0,
		QryEnd:   len(qry) - 1,
	}
	aln.classify(ref, qry, 0, 0)
	return aln, score
}

// SmithWaterman runs the affine-gap Smith-Waterman local alignment of ref
// against qry. Any candidate score <= 0 is clamped to Stop (matching the
// Needleman cell-selection rule otherwise): a cell whose best predecessor
// path would go negative instead restarts a fresh local alignment there.
//
// In single-alignment mode (the default), it returns only the best-scoring
// cell in the whole matrix; ties are broken by preferring the
// later-encountered cell in row-major scan order ("latest cell" wins).
//
// When settings.MultiBaseWater is set, it additionally reports further local
// alignments: RefQueryScan collects the best hit per query row and per
// reference column (merged and deduplicated by matrix cell), and MatrixScan
// streams every local-alignment terminus scoring at least MinScore directly
// to sink as the matrix is filled, without retaining the whole matrix's
// hits in memory.
//
// An empty ref or qry (or both) is not an error: it produces the same
// all-gap boundary alignment Needleman and Hirschberg produce for the same
// input, since Smith-Waterman's own zero-floor rule would otherwise report
// an empty alignment instead.
func SmithWaterman(ref, qry []byte, settings *ScoringSettings, sink ScanSink) (*SmithWatermanResult, []*MultiAlignmentResult, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}
	if settings.MatrixScan && sink == nil {
		return nil, nil, &InvalidArgumentError{Msg: "matrix-scan requires a sink"}
	}
	if len(ref) == 0 || len(qry) == 0 {
		// Local alignment's zero-floor rule would otherwise score this as an
		// empty alignment (0); the boundary case is the same all-gap run
		// Needleman and Hirschberg produce for a missing side, so it is built
		// the same way here rather than rejected.
		aln, score := boundaryGapAlignment(ref, qry, settings)
		return &SmithWatermanResult{Score: score, Alignment: aln}, nil, nil
	}

	refLen, qryLen := len(ref), len(qry)
	stride := refLen + 1
	matrix := NewTwoBitArray(stride * (qryLen + 1))

	prevScore := make([]int64, stride)
	currScore := make([]int64, stride)

	// Row 0 / column 0 are all Stop with score 0: a local alignment may
	// start anywhere, unlike Needleman's forced full-prefix gaps.
	for j := 0; j <= refLen; j++ {
		matrix.SetAt(j, Stop)
	}

	var best swCell
	// rowBest/colBest track the best-scoring cell per query row and per
	// reference column respectively: the AlignmentMatrix data model's
	// qry_bests and ref_bests. Keeping both, rather than only the row track,
	// is what lets every reference position have a reachable best hit.
	var rowBest, colBest []swCell
	if settings.RefQueryScan {
		rowBest = make([]swCell, qryLen+1)
		colBest = make([]swCell, refLen+1)
		for i := range rowBest {
			rowBest[i] = swCell{i: -1, j: -1, score: 0}
		}
		for j := range colBest {
			colBest[j] = swCell{i: -1, j: -1, score: 0}
		}
	}

	for i := 1; i <= qryLen; i++ {
		currScore[0] = 0
		matrix.SetAt(i*stride, Stop)

		for j := 1; j <= refLen; j++ {
			matchScore := settings.Score(ref[j-1], qry[i-1])
			upDir := matrix.At((i - 1) * stride + j)
			leftDir := matrix.At(i*stride + j - 1)

			dir, score := selectCell(settings, matchScore, prevScore[j-1], prevScore[j], upDir, currScore[j-1], leftDir)
			if score <= 0 {
				dir, score = Stop, 0
			}
			currScore[j] = score
			matrix.SetAt(i*stride+j, dir)

			if score >= best.score {
				best = swCell{i: i, j: j, score: score}
			}
			if settings.RefQueryScan && score >= settings.MinScore {
				if score >= rowBest[i].score {
					rowBest[i] = swCell{i: i, j: j, score: score}
				}
				if score >= colBest[j].score {
					colBest[j] = swCell{i: i, j: j, score: score}
				}
			}
		}

		if settings.MatrixScan && i >= 1 {
			// Row i-1's neighbors (down, lower-right) are now fully scored;
			// its termini can be decided. Row i-1's own right neighbor lives
			// in prevScore itself.
			if err := emitMatrixScanTermini(ref, qry, matrix, refLen, qryLen, i-1, prevScore, currScore, settings.MinScore, sink); err != nil {
				return nil, nil, err
			}
		}

		prevScore, currScore = currScore, prevScore
	}
	// The last row has no successor row: every qualifying cell is a terminus
	// by definition.
	if settings.MatrixScan {
		if err := emitMatrixScanTermini(ref, qry, matrix, refLen, qryLen, qryLen, prevScore, nil, settings.MinScore, sink); err != nil {
			return nil, nil, err
		}
	}

	var single *SmithWatermanResult
	if best.score > 0 {
		aln, err := FromMatrix(ref, qry, matrix, refLen, qryLen, best.i, best.j, true)
		if err != nil {
			return nil, nil, err
		}
		single = &SmithWatermanResult{Score: best.score, Alignment: aln}
	} else {
		single = &SmithWatermanResult{Score: 0, Alignment: &Alignment{}}
	}

	var multi []*MultiAlignmentResult
	if settings.RefQueryScan {
		cells := mergeCandidateCells(rowBest, colBest, settings.MinScore)
		candidates := make([]*MultiAlignmentResult, 0, len(cells))
		for _, c := range cells {
			aln, err := FromMatrix(ref, qry, matrix, refLen, qryLen, c.i, c.j, true)
			if err != nil {
				return nil, nil, err
			}
			candidates = append(candidates, &MultiAlignmentResult{Score: c.score, QueryEnd: c.i - 1, RefEnd: c.j - 1, Alignment: aln})
		}
		multi = FilterOverlapQryRef(candidates)
	}

	return single, multi, nil
}

// mergeCandidateCells combines the per-row and per-column best-cell tracks
// into a single deduplicated list, keyed by matrix position: the same cell
// can be both its row's and its column's best, and must be reported once.
func mergeCandidateCells(rowBest, colBest []swCell, minScore int64) []swCell {
	seen := make(map[[2]int]bool, len(rowBest)+len(colBest))
	merged := make([]swCell, 0, len(rowBest)+len(colBest))
	add := func(c swCell) {
		if c.i < 0 || c.score < minScore {
			return
		}
		key := [2]int{c.i, c.j}
		if seen[key] {
			return
		}
		seen[key] = true
		merged = append(merged, c)
	}
	for _, c := range rowBest {
		add(c)
	}
	for _, c := range colBest {
		add(c)
	}
	return merged
}

// emitMatrixScanTermini decides, for every qualifying cell in row (the
// direction matrix's query-row index), whether it is the terminus of a
// local alignment — none of its down/right/lower-right neighbors continues
// the same path with a score still >= minScore — and if so walks it back
// into an Alignment and streams it to sink. downRow is nil when row is the
// last query row, since a cell with no successor row is always a terminus.
func emitMatrixScanTermini(ref, qry []byte, matrix *TwoBitArray, refLen, qryLen, row int, rowScore, downRow []int64, minScore int64, sink ScanSink) error {
	stride := refLen + 1
	for j := 1; j <= refLen; j++ {
		score := rowScore[j]
		if score < minScore {
			continue
		}

		terminus := true
		if j+1 <= refLen {
			if matrix.At(row*stride+j+1) == Deletion && rowScore[j+1] >= minScore {
				terminus = false
			}
		}
		if terminus && downRow != nil {
			if matrix.At((row+1)*stride+j) == Insertion && downRow[j] >= minScore {
				terminus = false
			}
			if terminus && j+1 <= refLen {
				if matrix.At((row+1)*stride+j+1) == Diagonal && downRow[j+1] >= minScore {
					terminus = false
				}
			}
		}
		if !terminus {
			continue
		}

		aln, err := FromMatrix(ref, qry, matrix, refLen, qryLen, row, j, false)
		if err != nil {
			return err
		}
		if err := WriteHit(sink, score, aln, cigarOf(aln)); err != nil {
			return &InvalidArgumentError{Msg: "matrix-scan sink write failed: " + err.Error()}
		}
	}
	return nil
}

// cigarOf renders an Alignment's codes as a run-length-encoded expanded
// CIGAR string: X for match/mismatch (undifferentiated at this stage), I
// for insertion, D for deletion.
func cigarOf(aln *Alignment) string {
	if len(aln.Codes) == 0 {
		return ""
	}
	letterFor := func(c Code) byte {
		switch c {
		case CodeBase:
			return 'X'
		case CodeIns:
			return 'I'
		case CodeDel:
			return 'D'
		default:
			return 'S'
		}
	}

	var sb strings.Builder
	run := 1
	prev := letterFor(aln.Codes[0])
	for _, c := range aln.Codes[1:] {
		l := letterFor(c)
		if l == prev {
			run++
			continue
		}
		fmt.Fprintf(&sb, "%d%c", run, prev)
		prev, run = l, 1
	}
	fmt.Fprintf(&sb, "%d%c", run, prev)
	return sb.String()
}
