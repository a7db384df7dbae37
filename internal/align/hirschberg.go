package align

// HirschbergResult is the outcome of a linear-space global alignment: the
// same shape Needleman produces, built from a direction tape instead of a
// full matrix.
type HirschbergResult struct {
	Score     int64
	Alignment *Alignment
}

// Hirschberg runs the linear-space divide-and-conquer global alignment of
// ref against qry, recursively splitting the query in half and using a
// pair of forward/backward O(refLen)-space score rows (computed with the
// same per-cell affine-gap selection rule as Needleman) to find each
// split's optimal reference column, until a base case is reached. Base
// cases fall back to direct, closed-form alignments: an empty side is pure
// gap, and a single-base side is resolved by a linear scan over the other
// side's length.
func Hirschberg(ref, qry []byte, settings *ScoringSettings) (*HirschbergResult, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	// hirschRecurse's len(ref)==0/len(qry)==0 base cases already produce the
	// correct all-gap tape when one side (or both) is empty; no guard needed.
	tape := make([]Direction, 0, len(ref)+len(qry))
	tape = hirschRecurse(ref, qry, settings, tape)

	aln, err := FromTape(ref, qry, tape)
	if err != nil {
		return nil, err
	}
	score := scoreAlignment(ref, qry, aln, settings)

	return &HirschbergResult{Score: score, Alignment: aln}, nil
}

// scoreAlignment recomputes the affine-gap score of a built Alignment by
// walking its codes once; Hirschberg never retains a matrix to read the
// score back out of. A gap run that opens straight from the alignment's
// start is a boundary run: Needleman's row-0/column-0 initialization scores
// a length-L boundary run as gap_open+(L-1)*gap_extend rather than the
// gap_open+L*gap_extend an interior run costs, and this must match or
// Hirschberg's score would diverge from Needleman's for the same sequences.
// A run at the alignment's end is reached through Needleman's interior
// recurrence, so it is scored like an interior run unless it is also the
// leading run (the whole alignment is one gap run).
func scoreAlignment(ref, qry []byte, aln *Alignment, settings *ScoringSettings) int64 {
	var score int64
	ri, qi := aln.RefStart, aln.QryStart
	var run Direction
	var runLen int
	flushInterior := func() {
		if runLen == 0 {
			return
		}
		score += int64(settings.GapOpen) + int64(runLen)*int64(settings.GapExtend)
		runLen = 0
	}
	flushLeading := func() {
		if runLen == 0 {
			return
		}
		score += int64(settings.GapOpen) + int64(runLen-1)*int64(settings.GapExtend)
		runLen = 0
	}
	flush := flushLeading
	for _, c := range aln.Codes {
		switch c {
		case CodeBase:
			flush()
			flush = flushInterior
			run = Stop
			score += settings.Score(ref[ri], qry[qi])
			ri++
			qi++
		case CodeIns:
			if run != Insertion {
				flush()
			}
			run = Insertion
			runLen++
			qi++
		case CodeDel:
			if run != Deletion {
				flush()
			}
			run = Deletion
			runLen++
			ri++
		}
	}
	// the trailing run is interior unless no base was seen (one gap run only)
	flush()
	return score
}

func hirschRecurse(ref, qry []byte, settings *ScoringSettings, tape []Direction) []Direction {
	switch {
	case len(ref) == 0:
		for range qry {
			tape = append(tape, Insertion)
		}
		return tape
	case len(qry) == 0:
		for range ref {
			tape = append(tape, Deletion)
		}
		return tape
	case len(ref) == 1:
		return hirschOneRef(ref[0], qry, settings, tape)
	case len(qry) == 1:
		return hirschOneQry(ref, qry[0], settings, tape)
	}

	m := len(qry) / 2
	fwd := hirschScoreRow(ref, qry[:m], settings)
	rev := hirschScoreRow(reverseBytes(ref), reverseBytes(qry[m:]), settings)

	r := len(ref)
	bestK, bestScore := 0, fwd[0]+rev[r]
	for k := 1; k <= r; k++ {
		total := fwd[k] + rev[r-k]
		if total >= bestScore {
			bestScore = total
			bestK = k
		}
	}

	tape = hirschRecurse(ref[:bestK], qry[:m], settings, tape)
	tape = hirschRecurse(ref[bestK:], qry[m:], settings, tape)
	return tape
}

// hirschOneRef aligns a single reference base against the full qry window
// by scanning every split position p (the query index the base pairs with
// diagonally), selecting the globally best score under the affine-gap
// rule, then emitting insertions before and after the one match/mismatch.
func hirschOneRef(ref byte, qry []byte, settings *ScoringSettings, tape []Direction) []Direction {
	n := len(qry)
	gapOpen, gapExtend := int64(settings.GapOpen), int64(settings.GapExtend)

	bestP := 0
	bestScore := int64(-1) << 62
	for p := 0; p < n; p++ {
		lead, trail := p, n-1-p
		score := settings.Score(ref, qry[p])
		if lead > 0 {
			score += gapOpen + int64(lead)*gapExtend
		}
		if trail > 0 {
			score += gapOpen + int64(trail)*gapExtend
		}
		if score >= bestScore {
			bestScore = score
			bestP = p
		}
	}

	for i := 0; i < bestP; i++ {
		tape = append(tape, Insertion)
	}
	tape = append(tape, Diagonal)
	for i := bestP + 1; i < n; i++ {
		tape = append(tape, Insertion)
	}
	return tape
}

// hirschOneQry is hirschOneRef's mirror image: a single query base against
// the full ref window, emitting deletions before and after one
// match/mismatch.
func hirschOneQry(ref []byte, qry byte, settings *ScoringSettings, tape []Direction) []Direction {
	n := len(ref)
	gapOpen, gapExtend := int64(settings.GapOpen), int64(settings.GapExtend)

	bestP := 0
	bestScore := int64(-1) << 62
	for p := 0; p < n; p++ {
		lead, trail := p, n-1-p
		score := settings.Score(ref[p], qry)
		if lead > 0 {
			score += gapOpen + int64(lead)*gapExtend
		}
		if trail > 0 {
			score += gapOpen + int64(trail)*gapExtend
		}
		if score >= bestScore {
			bestScore = score
			bestP = p
		}
	}

	for i := 0; i < bestP; i++ {
		tape = append(tape, Deletion)
	}
	tape = append(tape, Diagonal)
	for i := bestP + 1; i < n; i++ {
		tape = append(tape, Deletion)
	}
	return tape
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// hirschScoreRow computes the final row of forward scores for aligning the
// full ref against qry (single score per ref-prefix-length column, ping-
// ponged across qry's rows, using the same per-cell affine-gap selection
// as Needleman). Column 0 and row 0 follow Needleman's own initialization,
// so row[0] is exactly the "indel column": the score of aligning the
// entire qry against an empty ref prefix, which is what makes the
// k=0/k=len(ref) boundary split candidates correct without any
// special-casing.
func hirschScoreRow(ref, qry []byte, settings *ScoringSettings) []int64 {
	r := len(ref)
	gapOpen := int64(settings.GapOpen)
	gapExtend := int64(settings.GapExtend)

	prevScore := make([]int64, r+1)
	prevDir := make([]Direction, r+1)
	currScore := make([]int64, r+1)
	currDir := make([]Direction, r+1)

	prevScore[0] = 0
	prevDir[0] = Stop
	for j := 1; j <= r; j++ {
		prevScore[j] = gapOpen + int64(j-1)*gapExtend
		prevDir[j] = Deletion
	}

	if len(qry) == 0 {
		return prevScore
	}

	for i := 1; i <= len(qry); i++ {
		currScore[0] = gapOpen + int64(i-1)*gapExtend
		currDir[0] = Insertion

		for j := 1; j <= r; j++ {
			matchScore := settings.Score(ref[j-1], qry[i-1])
			dir, score := selectCell(settings, matchScore, prevScore[j-1], prevScore[j], prevDir[j], currScore[j-1], currDir[j-1])
			currScore[j] = score
			currDir[j] = dir
		}

		prevScore, currScore = currScore, prevScore
		prevDir, currDir = currDir, prevDir
	}

	return prevScore
}
