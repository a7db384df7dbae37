// Package bioalign is the high-level facade over the alignment core,
// following the shape of the teacher's own pkg/bioflow: thin re-exports
// and convenience constructors, no logic of its own.
package bioalign

import (
	"github.com/biokit/alnseq/internal/align"
	"github.com/biokit/alnseq/internal/fasta"
	"github.com/biokit/alnseq/internal/format"
	"github.com/biokit/alnseq/internal/scorefile"
	"github.com/biokit/alnseq/internal/sequence"
)

// Re-export types for convenience.
type (
	Sequence          = sequence.Sequence
	ScoringSettings   = align.ScoringSettings
	TieBreak          = align.TieBreak
	Alignment         = align.Alignment
	NeedlemanResult   = align.NeedlemanResult
	SmithWatermanResult = align.SmithWatermanResult
	HirschbergResult  = align.HirschbergResult
	MultiAlignmentResult = align.MultiAlignmentResult
	ScanSink          = align.ScanSink
	Format            = format.Format
	FormatOptions     = format.Options
)

const (
	MatchInsDel = align.MatchInsDel
	MatchDelIns = align.MatchDelIns
	InsMatchDel = align.InsMatchDel
	InsDelMatch = align.InsDelMatch
	DelMatchIns = align.DelMatchIns
	DelInsMatch = align.DelInsMatch
)

const (
	ExpandedCIGAR = format.ExpandedCIGAR
	EMBOSS        = format.EMBOSS
	Clustal       = format.Clustal
	FASTA         = format.FASTA
)

// NewSequence creates a sequence over the full IUPAC alphabet, the input
// shape every kernel in this package expects.
func NewSequence(bases, id string) (*Sequence, error) {
	return sequence.NewIUPAC(bases, id)
}

// DefaultSettings returns scoring settings with the package defaults
// (match=5, mismatch=-4, gap_open=-10, gap_extend=-1) and Needleman
// selected as the kernel.
func DefaultSettings() *ScoringSettings {
	return align.NewDefaultSettings()
}

// ReadFASTA reads every record in a FASTA file.
func ReadFASTA(filename string) ([]*fasta.Record, error) {
	return fasta.ReadFile(filename)
}

// ReadFirstFASTA reads only the first record in a FASTA file, the shape
// the CLI's -query/-ref flags need.
func ReadFirstFASTA(filename string) (*Sequence, error) {
	return fasta.ReadFirst(filename)
}

// LoadScoreFile applies a substitution-matrix file to settings in place.
func LoadScoreFile(filename string, settings *ScoringSettings) error {
	return scorefile.Load(filename, settings)
}

// AlignGlobal runs the Needleman-Wunsch kernel.
func AlignGlobal(ref, qry *Sequence, settings *ScoringSettings) (*NeedlemanResult, error) {
	return align.Needleman(ref.ActiveBases(), qry.ActiveBases(), settings)
}

// AlignLocal runs the Smith-Waterman kernel, optionally streaming
// matrix-scan hits to sink (nil is fine when settings.MatrixScan is false).
func AlignLocal(ref, qry *Sequence, settings *ScoringSettings, sink ScanSink) (*SmithWatermanResult, []*MultiAlignmentResult, error) {
	return align.SmithWaterman(ref.ActiveBases(), qry.ActiveBases(), settings, sink)
}

// AlignLinearSpace runs the Hirschberg kernel.
func AlignLinearSpace(ref, qry *Sequence, settings *ScoringSettings) (*HirschbergResult, error) {
	return align.Hirschberg(ref.ActiveBases(), qry.ActiveBases(), settings)
}

// Render formats an alignment in one of the four supported output shapes.
func Render(w interface {
	Write(p []byte) (int, error)
}, aln *Alignment, ref, qry *Sequence, score int64, f Format, opts FormatOptions) error {
	return format.Render(w, aln, ref.ActiveBases(), qry.ActiveBases(), score, f, opts)
}

// DefaultFormatOptions mirrors the CLI's own defaults.
func DefaultFormatOptions() FormatOptions {
	return format.DefaultOptions()
}

// Version returns the alnseq package version string.
func Version() string {
	return "1.0.0"
}
