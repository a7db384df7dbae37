package align

// TieBreak selects, among a diagonal/up/left candidate triple, the total
// order in which ties are resolved. The six values are the six
// permutations of {diagonal, up (insertion), left (deletion)}; each is a
// zero-state constant, never a runtime-configurable struct. Pick looks up
// the ordering with a switch on the value on every call, so each cell pays
// one small branch for the tie-break.
type TieBreak int

const (
	// MatchInsDel prefers diagonal, then insertion (up), then deletion (left).
	MatchInsDel TieBreak = iota
	// MatchDelIns prefers diagonal, then deletion, then insertion.
	MatchDelIns
	// InsMatchDel prefers insertion, then diagonal, then deletion.
	InsMatchDel
	// InsDelMatch prefers insertion, then deletion, then diagonal.
	InsDelMatch
	// DelMatchIns prefers deletion, then diagonal, then insertion.
	DelMatchIns
	// DelInsMatch prefers deletion, then insertion, then diagonal.
	DelInsMatch
)

func (t TieBreak) String() string {
	switch t {
	case MatchInsDel:
		return "match-ins-del"
	case MatchDelIns:
		return "match-del-ins"
	case InsMatchDel:
		return "ins-match-del"
	case InsDelMatch:
		return "ins-del-match"
	case DelMatchIns:
		return "del-match-ins"
	case DelInsMatch:
		return "del-ins-match"
	default:
		return "invalid"
	}
}

// Valid reports whether t is one of the six defined orderings.
func (t TieBreak) Valid() bool {
	return t >= MatchInsDel && t <= DelInsMatch
}

// ranks returns, for [diagonal, up, left], the priority rank of each
// candidate (0 = highest priority). The three ranks are always a
// permutation of {0, 1, 2}.
func (t TieBreak) ranks() [3]int {
	switch t {
	case MatchInsDel:
		return [3]int{0, 1, 2}
	case MatchDelIns:
		return [3]int{0, 2, 1}
	case InsMatchDel:
		return [3]int{1, 0, 2}
	case InsDelMatch:
		return [3]int{2, 0, 1}
	case DelMatchIns:
		return [3]int{1, 2, 0}
	case DelInsMatch:
		return [3]int{2, 1, 0}
	default:
		return [3]int{0, 1, 2}
	}
}

// Pick returns the direction and score of the best of the three candidates,
// breaking ties by t's priority order.
func (t TieBreak) Pick(diag, up, left int64) (Direction, int64) {
	ranks := t.ranks()
	scores := [3]int64{diag, up, left}
	dirs := [3]Direction{Diagonal, Insertion, Deletion}

	best := 0
	for i := 1; i < 3; i++ {
		if scores[i] > scores[best] || (scores[i] == scores[best] && ranks[i] < ranks[best]) {
			best = i
		}
	}
	return dirs[best], scores[best]
}

// TieBreakFromFlag resolves a CLI flag name (e.g. "match-ins-del") to a
// TieBreak value.
func TieBreakFromFlag(name string) (TieBreak, error) {
	for t := MatchInsDel; t <= DelInsMatch; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, &InvalidArgumentError{Msg: "unknown tie-break: " + name}
}

// DefaultMatch and DefaultMismatch are the scores used to build the default
// 26x26 substitution matrix: a positive score when two letters share an
// IUPAC base, a negative one otherwise. These mirror the worked examples in
// the design notes (match=5, mismatch=-4, gap_open=-10, gap_extend=-1).
const (
	DefaultMatch     int16 = 5
	DefaultMismatch  int16 = -4
	DefaultGapOpen   int32 = -10
	DefaultGapExtend int32 = -1
)

// ScoringSettings bundles the substitution matrix, affine-gap costs,
// tie-break policy, and kernel/report selection flags that every alignment
// kernel is parameterized over.
type ScoringSettings struct {
	// Matrix is indexed [ref][qry] by letterIndex (0..25), i.e. A=0..Z=25.
	Matrix [26][26]int16

	GapOpen   int32
	GapExtend int32
	TieBreak  TieBreak

	UseNeedleman     bool
	UseSmithWaterman bool
	UseHirschberg    bool

	MultiBaseWater bool
	RefQueryScan   bool
	MatrixScan     bool

	MinScore int64
}

// NewDefaultSettings returns settings with the default IUPAC-aware
// substitution matrix, default affine-gap costs, match-ins-del tie-break,
// and Needleman-Wunsch selected.
func NewDefaultSettings() *ScoringSettings {
	s := &ScoringSettings{
		GapOpen:      DefaultGapOpen,
		GapExtend:    DefaultGapExtend,
		TieBreak:     MatchInsDel,
		UseNeedleman: true,
	}
	s.Matrix = defaultMatrix(DefaultMatch, DefaultMismatch)
	return s
}

func defaultMatrix(match, mismatch int16) [26][26]int16 {
	var m [26][26]int16
	for i := 0; i < 26; i++ {
		for j := 0; j < 26; j++ {
			a, b := byte('A'+i), byte('A'+j)
			if BasesMatch(a, b) {
				m[i][j] = match
			} else {
				m[i][j] = mismatch
			}
		}
	}
	return m
}

// Score returns the substitution score between two raw sequence bytes,
// indexing the matrix via letterIndex.
func (s *ScoringSettings) Score(ref, qry byte) int64 {
	return int64(s.Matrix[letterIndex(ref)][letterIndex(qry)])
}

// ScoreIndexed returns the substitution score for two bytes that are
// already 0-25 encoded (the sequence container's ToIndex form), skipping
// the letterIndex conversion.
func (s *ScoringSettings) ScoreIndexed(ref, qry byte) int64 {
	return int64(s.Matrix[ref][qry])
}

// Validate checks the kernel-selection and multi-report invariants: exactly
// one kernel must be selected, matrix-scan and ref-query-scan are mutually
// exclusive, and either implies multi-base reporting.
func (s *ScoringSettings) Validate() error {
	kernels := 0
	for _, b := range []bool{s.UseNeedleman, s.UseSmithWaterman, s.UseHirschberg} {
		if b {
			kernels++
		}
	}
	if kernels != 1 {
		return &InvalidArgumentError{Msg: "exactly one of Needleman/Smith-Waterman/Hirschberg must be selected"}
	}
	if s.RefQueryScan && s.MatrixScan {
		return &InvalidArgumentError{Msg: "ref-query-scan and matrix-scan are mutually exclusive"}
	}
	if (s.RefQueryScan || s.MatrixScan) && !s.UseSmithWaterman {
		return &InvalidArgumentError{Msg: "ref-query-scan/matrix-scan require Smith-Waterman"}
	}
	if (s.RefQueryScan || s.MatrixScan) && !s.MultiBaseWater {
		return &InvalidArgumentError{Msg: "ref-query-scan/matrix-scan require multi-base-water"}
	}
	if !s.TieBreak.Valid() {
		return &InvalidArgumentError{Msg: "invalid tie-break"}
	}
	return nil
}
