// Package align implements the affine-gap alignment kernels (Needleman-Wunsch,
// Smith-Waterman and Hirschberg), their shared two-bit direction storage, and
// the traceback/multi-alignment bookkeeping built on top of them.
package align

// Direction is one of the four two-bit traceback codes. STOP doubles as
// "end of traceback" and as the Smith-Waterman zero-cell marker.
type Direction uint8

const (
	// Stop marks the end of a traceback (global alignment's origin cell, or
	// any Smith-Waterman cell whose best score is <= 0).
	Stop Direction = 0
	// Insertion means the cell was reached from directly above: the query
	// base was consumed without a reference base (a gap in the reference).
	Insertion Direction = 1
	// Diagonal means the cell was reached from the upper-left: a match or
	// mismatch.
	Diagonal Direction = 2
	// Deletion means the cell was reached from directly to the left: the
	// reference base was consumed without a query base (a gap in the query).
	Deletion Direction = 3
)

func (d Direction) String() string {
	switch d {
	case Stop:
		return "STOP"
	case Insertion:
		return "INSERTION"
	case Diagonal:
		return "DIAGONAL"
	case Deletion:
		return "DELETION"
	default:
		return "INVALID"
	}
}

// TwoBitArray is a packed, random-access sequence of 2-bit Direction codes,
// four per byte (limb), element 0 occupying the low two bits. A cursor
// (limb, elem) supports O(1) forward/back movement by one or by k, and O(1)
// absolute seeks; the cursor's absolute index is always 4*limb + elem.
type TwoBitArray struct {
	data []byte
	n    int // number of logical 2-bit elements
	limb int
	elem int
}

// NewTwoBitArray allocates a two-bit array of n elements, all Stop, with the
// cursor at index 0. It allocates ceil(n/4)+1 limbs, one more than strictly
// required, so that a cursor sitting one-past-the-end of an n-element array
// always lands inside an allocated limb.
func NewTwoBitArray(n int) *TwoBitArray {
	if n < 0 {
		n = 0
	}
	limbs := (n+3)/4 + 1
	return &TwoBitArray{data: make([]byte, limbs), n: n}
}

// Len returns the number of logical elements in the array.
func (t *TwoBitArray) Len() int { return t.n }

// Get returns the 2-bit code at the cursor.
func (t *TwoBitArray) Get() Direction {
	shift := uint(t.elem) * 2
	return Direction((t.data[t.limb] >> shift) & 0x3)
}

// Set writes code (masked to 2 bits) at the cursor, preserving the other
// three elements of the limb.
func (t *TwoBitArray) Set(code Direction) {
	shift := uint(t.elem) * 2
	mask := byte(0x3) << shift
	t.data[t.limb] = (t.data[t.limb] &^ mask) | (byte(code&0x3) << shift)
}

// Advance moves the cursor forward by one element.
func (t *TwoBitArray) Advance() {
	t.elem++
	if t.elem == 4 {
		t.elem = 0
		t.limb++
	}
}

// Retreat moves the cursor back by one element.
func (t *TwoBitArray) Retreat() {
	if t.elem == 0 {
		t.elem = 3
		t.limb--
	} else {
		t.elem--
	}
}

// AdvanceBy moves the cursor forward by k elements in O(1).
func (t *TwoBitArray) AdvanceBy(k int) {
	t.Seek(t.Index() + k)
}

// RetreatBy moves the cursor back by k elements in O(1).
func (t *TwoBitArray) RetreatBy(k int) {
	t.Seek(t.Index() - k)
}

// Seek moves the cursor to the k-th element from the start of the array.
func (t *TwoBitArray) Seek(k int) {
	t.limb = k / 4
	t.elem = k % 4
}

// Index returns the cursor's absolute position.
func (t *TwoBitArray) Index() int {
	return t.limb*4 + t.elem
}

// At returns the code stored at absolute index k. It moves the cursor
// there and leaves it there, matching the cursor-based design used
// throughout this package.
func (t *TwoBitArray) At(k int) Direction {
	t.Seek(k)
	return t.Get()
}

// SetAt writes code at absolute index k, moving the cursor there.
func (t *TwoBitArray) SetAt(k int, code Direction) {
	t.Seek(k)
	t.Set(code)
}

// WriteAdvance writes code at the cursor and advances past it; used when
// building a tape (Hirschberg) or a matrix row left to right.
func (t *TwoBitArray) WriteAdvance(code Direction) {
	t.Set(code)
	t.Advance()
}
