package align

// Code is one emitted alignment element, in the coordinate system of the
// final printed alignment (as opposed to Direction, which is the DP
// matrix's internal traceback code).
type Code byte

const (
	// CodeDel is a reference base aligned against a gap in the query.
	CodeDel Code = iota
	// CodeIns is a query base aligned against a gap in the reference.
	CodeIns
	// CodeBase is a reference base aligned against a query base (match or
	// mismatch; use BasesMatch on the underlying bytes to tell which).
	CodeBase
	// CodeSoftQ is a soft-masked (unaligned) leading/trailing query base.
	CodeSoftQ
	// CodeSoftR is a soft-masked (unaligned) leading/trailing reference base.
	CodeSoftR
	// CodeSoftBoth marks a position where both sequences have independent
	// soft-masked flanking bases rendered side by side.
	CodeSoftBoth
)

// Alignment is the shape produced by both traceback builders (from_matrix
// and from_tape): a linear list of codes plus the inclusive 0-indexed
// sub-range of each sequence that the non-soft-masked portion covers.
type Alignment struct {
	Codes []Code

	NumMatches    int
	NumMismatches int
	NumInsertions int
	NumDeletions  int

	RefStart, RefEnd int
	QryStart, QryEnd int
}

// FromMatrix walks a full direction matrix backward from (anchorI, anchorJ)
// until it reaches a Stop cell, producing an Alignment. refLen/qryLen are
// the full lengths used to size matrix rows (refLen+1 columns); anchorI/
// anchorJ are prefix lengths (query/reference characters consumed by the
// anchor cell). When softMask is true, leftover sequence outside the
// traceback's reachable span is rendered as soft-masked flanks, and any
// hanging insertion/deletion run at either end of the walked path (only
// possible when gap_open is 0) is rewritten to the matching soft-mask code.
func FromMatrix(ref, qry []byte, matrix *TwoBitArray, refLen, qryLen, anchorI, anchorJ int, softMask bool) (*Alignment, error) {
	if matrix == nil {
		return nil, &InvalidArgumentError{Msg: "nil direction matrix"}
	}

	stride := refLen + 1
	i, j := anchorI, anchorJ

	var rev []Code
	for {
		idx := i*stride + j
		dir := matrix.At(idx)
		if dir == Stop {
			break
		}
		switch dir {
		case Diagonal:
			rev = append(rev, CodeBase)
			i--
			j--
		case Insertion:
			rev = append(rev, CodeIns)
			i--
		case Deletion:
			rev = append(rev, CodeDel)
			j--
		default:
			return nil, &InvalidArgumentError{Msg: "corrupt direction matrix"}
		}
	}
	qryStart, refStart := i, j

	codes := make([]Code, len(rev))
	for k, c := range rev {
		codes[len(rev)-1-k] = c
	}

	refEnd, qryEnd := anchorJ-1, anchorI-1
	if softMask {
		codes, qryStart, refStart = rewriteHangingGaps(codes, qryStart, refStart)
		var stripped []Code
		codes, stripped = rewriteHangingGapsTail(codes)
		for _, c := range stripped {
			switch c {
			case CodeIns:
				qryEnd--
			case CodeDel:
				refEnd--
			}
		}
	}

	aln := &Alignment{
		Codes:    codes,
		RefStart: refStart,
		RefEnd:   refEnd,
		QryStart: qryStart,
		QryEnd:   qryEnd,
	}
	aln.classify(ref, qry, refStart, qryStart)

	if softMask {
		aln.prependFlanks(ref, qry)
	}

	return aln, nil
}

// rewriteHangingGaps strips a leading run of Ins/Del codes (possible only
// when gap_open is 0, which lets a gap tie with the diagonal all the way to
// the sequence boundary) and folds it into the start coordinates, since
// those bases are not really "aligned" to anything.
func rewriteHangingGaps(codes []Code, qryStart, refStart int) ([]Code, int, int) {
	start := 0
	for start < len(codes) {
		switch codes[start] {
		case CodeIns:
			qryStart++
		case CodeDel:
			refStart++
		default:
			return codes[start:], qryStart, refStart
		}
		start++
	}
	return codes[start:], qryStart, refStart
}

// rewriteHangingGapsTail strips a trailing run of Ins/Del codes symmetric to
// rewriteHangingGaps, returning the stripped codes so the caller can shrink
// the end coordinates accordingly.
func rewriteHangingGapsTail(codes []Code) ([]Code, []Code) {
	end := len(codes)
	for end > 0 {
		switch codes[end-1] {
		case CodeIns, CodeDel:
			end--
		default:
			return codes[:end], codes[end:]
		}
	}
	return codes[:end], codes[end:]
}

// FromTape converts Hirschberg's linear forward tape (codes already in
// left-to-right order, no reversal needed) into the same Alignment shape as
// FromMatrix. The tape never contains Stop; refStart/qryStart are always 0
// since Hirschberg always produces a full global alignment.
func FromTape(ref, qry []byte, tape []Direction) (*Alignment, error) {
	codes := make([]Code, 0, len(tape))
	for _, d := range tape {
		switch d {
		case Diagonal:
			codes = append(codes, CodeBase)
		case Insertion:
			codes = append(codes, CodeIns)
		case Deletion:
			codes = append(codes, CodeDel)
		default:
			return nil, &InvalidArgumentError{Msg: "invalid direction in Hirschberg tape"}
		}
	}

	aln := &Alignment{
		Codes:    codes,
		RefStart: 0,
		RefEnd:   len(ref) - 1,
		QryStart: 0,
		QryEnd:   len(qry) - 1,
	}
	aln.classify(ref, qry, 0, 0)
	return aln, nil
}

// classify walks the codes, counting matches/mismatches/insertions/
// deletions by comparing the actual ref/qry bytes consumed along the way.
func (a *Alignment) classify(ref, qry []byte, refStart, qryStart int) {
	a.NumMatches, a.NumMismatches, a.NumInsertions, a.NumDeletions = 0, 0, 0, 0
	ri, qi := refStart, qryStart
	for _, c := range a.Codes {
		switch c {
		case CodeBase:
			if BasesMatch(ref[ri], qry[qi]) {
				a.NumMatches++
			} else {
				a.NumMismatches++
			}
			ri++
			qi++
		case CodeIns:
			a.NumInsertions++
			qi++
		case CodeDel:
			a.NumDeletions++
			ri++
		}
	}
}

// prependFlanks adds leading/trailing soft-masked flank codes for the
// sequence bytes that fall outside the traceback's reachable span. This is
// a formatting convenience, not part of the core scoring contract; when
// both sequences have an independent leading (or trailing) flank, the
// longer of the two determines the flank length and every position is
// rendered as CodeSoftBoth.
func (a *Alignment) prependFlanks(ref, qry []byte) {
	leadR, leadQ := a.RefStart, a.QryStart
	trailR, trailQ := len(ref)-1-a.RefEnd, len(qry)-1-a.QryEnd

	lead := flankCodes(leadR, leadQ)
	trail := flankCodes(trailR, trailQ)

	if len(lead) == 0 && len(trail) == 0 {
		return
	}
	codes := make([]Code, 0, len(lead)+len(a.Codes)+len(trail))
	codes = append(codes, lead...)
	codes = append(codes, a.Codes...)
	codes = append(codes, trail...)
	a.Codes = codes
}

func flankCodes(rLen, qLen int) []Code {
	n := rLen
	if qLen > n {
		n = qLen
	}
	if n <= 0 {
		return nil
	}
	codes := make([]Code, n)
	for i := range codes {
		switch {
		case rLen > 0 && qLen > 0:
			codes[i] = CodeSoftBoth
		case rLen > 0:
			codes[i] = CodeSoftR
		default:
			codes[i] = CodeSoftQ
		}
	}
	return codes
}
