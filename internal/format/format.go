// Package format renders an align.Alignment against its two source
// sequences in one of four textual formats, the collaborator spec.md
// calls the alignment printer.
package format

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/biokit/alnseq/internal/align"
)

// Format selects one of the four output renderings the CLI can choose.
type Format int

const (
	ExpandedCIGAR Format = iota
	EMBOSS
	Clustal
	FASTA
)

// minimum line-wrap width enforced per format.
const (
	minWrapFASTA   = 10
	minWrapClustal = 32
	minWrapOther   = 42
)

// Options carries the CLI's output-shaping flags: whether to
// include soft-masked flanks, whether to print a position ruler, and the
// wrap column. LineWrap 0 disables wrapping; any other value below the
// format's minimum is raised to that minimum. PrintPositions affects only
// EMBOSS output. PrintAligned carries the CLI's -print-aligned flag, but
// Render does not read it: the aligned region is always printed.
type Options struct {
	LineWrap       int
	PrintAligned   bool
	PrintUnaligned bool
	PrintPositions bool
}

// DefaultOptions mirrors the CLI defaults: aligned region only, positions
// shown, no line wrapping.
func DefaultOptions() Options {
	return Options{LineWrap: 0, PrintAligned: true, PrintUnaligned: false, PrintPositions: true}
}

func (o Options) wrapFor(f Format) int {
	if o.LineWrap == 0 {
		return math.MaxInt
	}
	min := minWrapOther
	switch f {
	case FASTA:
		min = minWrapFASTA
	case Clustal:
		min = minWrapClustal
	}
	if o.LineWrap <= 0 || o.LineWrap < min {
		return min
	}
	return o.LineWrap
}

// Render writes aln, scored against ref/qry, to w in the requested format.
func Render(w io.Writer, aln *align.Alignment, ref, qry []byte, score int64, f Format, opts Options) error {
	refLine, markLine, qryLine := expandLines(aln, ref, qry, opts)

	switch f {
	case ExpandedCIGAR:
		return renderExpandedCIGAR(w, aln, refLine, markLine, qryLine, score)
	case EMBOSS:
		return renderEMBOSS(w, aln, refLine, markLine, qryLine, score, opts)
	case Clustal:
		return renderClustal(w, refLine, markLine, qryLine, opts)
	case FASTA:
		return renderFASTA(w, aln, refLine, qryLine, opts)
	default:
		return fmt.Errorf("unknown alignment format %d", f)
	}
}

// expandLines walks aln.Codes once, producing the three parallel
// per-position strings every format builds its output from: the
// reference-with-gaps line, the query-with-gaps line, and a markup line
// ('|' match, '.' mismatch, ' ' gap/soft-mask).
func expandLines(aln *align.Alignment, ref, qry []byte, opts Options) (refLine, markLine, qryLine string) {
	var rb, mb, qb strings.Builder
	ri, qi := aln.RefStart, aln.QryStart

	for _, c := range aln.Codes {
		switch c {
		case align.CodeBase:
			rb.WriteByte(ref[ri])
			qb.WriteByte(qry[qi])
			if align.BasesMatch(ref[ri], qry[qi]) {
				mb.WriteByte('|')
			} else {
				mb.WriteByte('.')
			}
			ri++
			qi++
		case align.CodeDel:
			rb.WriteByte(ref[ri])
			qb.WriteByte('-')
			mb.WriteByte(' ')
			ri++
		case align.CodeIns:
			rb.WriteByte('-')
			qb.WriteByte(qry[qi])
			mb.WriteByte(' ')
			qi++
		case align.CodeSoftR:
			if opts.PrintUnaligned {
				rb.WriteByte(lower(ref[ri]))
				qb.WriteByte('-')
				mb.WriteByte(' ')
			}
			ri++
		case align.CodeSoftQ:
			if opts.PrintUnaligned {
				rb.WriteByte('-')
				qb.WriteByte(lower(qry[qi]))
				mb.WriteByte(' ')
			}
			qi++
		case align.CodeSoftBoth:
			if opts.PrintUnaligned {
				rb.WriteByte(lower(ref[ri]))
				qb.WriteByte(lower(qry[qi]))
				mb.WriteByte(' ')
			}
			ri++
			qi++
		}
	}
	return rb.String(), mb.String(), qb.String()
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func renderExpandedCIGAR(w io.Writer, aln *align.Alignment, refLine, markLine, qryLine string, score int64) error {
	var cig strings.Builder
	for i := 0; i < len(refLine); i++ {
		switch {
		case refLine[i] == '-':
			cig.WriteByte('I')
		case qryLine[i] == '-':
			cig.WriteByte('D')
		case markLine[i] == '|':
			cig.WriteByte('=')
		default:
			cig.WriteByte('X')
		}
	}
	_, err := fmt.Fprintf(w, "score=%d\t%d-%d\t%d-%d\t%s\n",
		score, aln.RefStart, aln.RefEnd, aln.QryStart, aln.QryEnd, cig.String())
	return err
}

func renderEMBOSS(w io.Writer, aln *align.Alignment, refLine, markLine, qryLine string, score int64, opts Options) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Score: %d\n", score)
	if opts.PrintPositions {
		fmt.Fprintf(&buf, "# Ref:   %d-%d\n", aln.RefStart, aln.RefEnd)
		fmt.Fprintf(&buf, "# Query: %d-%d\n", aln.QryStart, aln.QryEnd)
	}
	wrap := opts.wrapFor(EMBOSS)
	writeTriBlocks(&buf, "ref  ", refLine, markLine, "query", qryLine, wrap, opts.PrintPositions, aln.RefStart, aln.QryStart)
	_, err := w.Write(buf.Bytes())
	return err
}

func renderClustal(w io.Writer, refLine, markLine, qryLine string, opts Options) error {
	var buf bytes.Buffer
	buf.WriteString("CLUSTAL alnseq alignment\n\n")
	wrap := opts.wrapFor(Clustal)
	for start := 0; start < len(refLine); start += wrap {
		end := start + wrap
		if end > len(refLine) {
			end = len(refLine)
		}
		fmt.Fprintf(&buf, "ref   %s\n", refLine[start:end])
		fmt.Fprintf(&buf, "      %s\n", markLine[start:end])
		fmt.Fprintf(&buf, "query %s\n\n", qryLine[start:end])
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func renderFASTA(w io.Writer, aln *align.Alignment, refLine, qryLine string, opts Options) error {
	var buf bytes.Buffer
	wrap := opts.wrapFor(FASTA)
	writeFASTARecord(&buf, fmt.Sprintf("ref_%d_%d", aln.RefStart, aln.RefEnd), refLine, wrap)
	writeFASTARecord(&buf, fmt.Sprintf("query_%d_%d", aln.QryStart, aln.QryEnd), qryLine, wrap)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeFASTARecord(buf *bytes.Buffer, id, line string, wrap int) {
	fmt.Fprintf(buf, ">%s\n", id)
	for start := 0; start < len(line); start += wrap {
		end := start + wrap
		if end > len(line) {
			end = len(line)
		}
		buf.WriteString(line[start:end])
		buf.WriteByte('\n')
	}
}

func writeTriBlocks(buf *bytes.Buffer, refLabel, refLine, markLine, qryLabel, qryLine string, wrap int, positions bool, refStart, qryStart int) {
	ri, qi := refStart, qryStart
	for start := 0; start < len(refLine); start += wrap {
		end := start + wrap
		if end > len(refLine) {
			end = len(refLine)
		}
		seg := refLine[start:end]
		if positions {
			fmt.Fprintf(buf, "%s %6d %s %d\n", refLabel, ri, seg, ri+countAligned(seg))
		} else {
			fmt.Fprintf(buf, "%s %s\n", refLabel, seg)
		}
		fmt.Fprintf(buf, "      %s\n", markLine[start:end])

		qseg := qryLine[start:end]
		if positions {
			fmt.Fprintf(buf, "%s %6d %s %d\n\n", qryLabel, qi, qseg, qi+countAligned(qseg))
		} else {
			fmt.Fprintf(buf, "%s %s\n\n", qryLabel, qseg)
		}
		ri += countAligned(seg)
		qi += countAligned(qseg)
	}
}

func countAligned(seg string) int {
	n := 0
	for i := 0; i < len(seg); i++ {
		if seg[i] != '-' {
			n++
		}
	}
	return n
}
