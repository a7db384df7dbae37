package align

// gapSuccessor implements the affine-gap continuation rule shared by every
// full-matrix kernel: continuing a gap in the same direction only costs
// gap_extend; starting a gap in a new direction (including switching away
// from a match/mismatch) pays gap_open once, plus the first gap_extend.
func gapSuccessor(predScore int64, predDir, gapDir Direction, gapOpen, gapExtend int64) int64 {
	if predDir == gapDir {
		return predScore + gapExtend
	}
	return predScore + gapOpen + gapExtend
}

// cellCandidates computes the three affine-gap candidate scores for a
// single cell: diag (match/mismatch against the upper-left predecessor),
// up (insertion, continuing from the cell above) and left (deletion,
// continuing from the cell to the left).
func cellCandidates(settings *ScoringSettings, matchScore int64, diagScore, upScore int64, upDir Direction, leftScore int64, leftDir Direction) (diag, up, left int64) {
	gapOpen := int64(settings.GapOpen)
	gapExtend := int64(settings.GapExtend)

	diag = diagScore + matchScore
	up = gapSuccessor(upScore, upDir, Insertion, gapOpen, gapExtend)
	left = gapSuccessor(leftScore, leftDir, Deletion, gapOpen, gapExtend)
	return
}

// selectCell runs the three candidates through settings' tie-break policy
// and returns the winning direction and score for a full-matrix cell.
func selectCell(settings *ScoringSettings, matchScore int64, diagScore, upScore int64, upDir Direction, leftScore int64, leftDir Direction) (Direction, int64) {
	diag, up, left := cellCandidates(settings, matchScore, diagScore, upScore, upDir, leftScore, leftDir)
	return settings.TieBreak.Pick(diag, up, left)
}
