// Command bioalign is the CLI adapter over the alignment core: it
// populates a scoring settings object from flags, selects a kernel,
// and renders the resulting Alignment in one of four formats.
//
// Usage:
//
//	bioalign -query q.fa -ref r.fa -use-water [options]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/biokit/alnseq/internal/align"
	"github.com/biokit/alnseq/internal/format"
	"github.com/biokit/alnseq/pkg/bioalign"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitRuntime = -1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bioalign", flag.ContinueOnError)

	query := fs.String("query", "", "query FASTA (required)")
	ref := fs.String("ref", "", "reference FASTA (required)")
	out := fs.String("out", "", "output file (default stdout)")
	gapOpen := fs.Int("gapopen", int(align.DefaultGapOpen), "gap open penalty")
	gapExtend := fs.Int("gapextend", int(align.DefaultGapExtend), "gap extend penalty")
	scoreMatrix := fs.String("score-matrix", "", "substitution matrix file")

	useNeedle := fs.Bool("use-needle", false, "Needleman-Wunsch global alignment")
	useWater := fs.Bool("use-water", false, "Smith-Waterman local alignment")
	useHirschberg := fs.Bool("use-hirschberg", false, "Hirschberg linear-space global alignment")

	queryRefScanWater := fs.Bool("query-ref-scan-water", false, "Smith-Waterman per-base multi-report")
	matrixScanWater := fs.Bool("matrix-scan-water", false, "Smith-Waterman matrix-scan streaming report")
	minScore := fs.Int64("min-score", 0, "score threshold for multi-report modes")

	matchInsDel := fs.Bool("match-ins-del", false, "tie-break: diagonal, insertion, deletion")
	matchDelIns := fs.Bool("match-del-ins", false, "tie-break: diagonal, deletion, insertion")
	insMatchDel := fs.Bool("ins-match-del", false, "tie-break: insertion, diagonal, deletion")
	insDelMatch := fs.Bool("ins-del-match", false, "tie-break: insertion, deletion, diagonal")
	delMatchIns := fs.Bool("del-match-ins", false, "tie-break: deletion, diagonal, insertion")
	delInsMatch := fs.Bool("del-ins-match", false, "tie-break: deletion, insertion, diagonal")

	formatExpandCig := fs.Bool("format-expand-cig", false, "output format: expanded CIGAR")
	formatEmboss := fs.Bool("format-emboss", false, "output format: EMBOSS pairwise")
	formatClustal := fs.Bool("format-clustal", false, "output format: Clustal")
	formatFasta := fs.Bool("format-fasta", false, "output format: aligned FASTA")

	lineWrap := fs.Int("line-wrap", 0, "output line wrap column (0 disables)")
	printAligned := fs.Bool("print-aligned", true, "include the aligned region")
	printUnaligned := fs.Bool("print-unaligned", false, "include soft-masked flanks")
	printPositions := fs.Bool("print-positions", true, "include position ruler")
	noPositions := fs.Bool("no-positions", false, "omit position ruler")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *query == "" || *ref == "" {
		fmt.Fprintln(os.Stderr, "bioalign: -query and -ref are required")
		return exitUsage
	}

	kernelCount := boolCount(*useNeedle, *useWater, *useHirschberg)
	if kernelCount != 1 {
		fmt.Fprintln(os.Stderr, "bioalign: exactly one of -use-needle, -use-water, -use-hirschberg is required")
		return exitUsage
	}
	if (*queryRefScanWater || *matrixScanWater) && !*useWater {
		fmt.Fprintln(os.Stderr, "bioalign: -query-ref-scan-water/-matrix-scan-water require -use-water")
		return exitUsage
	}
	if *queryRefScanWater && *matrixScanWater {
		fmt.Fprintln(os.Stderr, "bioalign: -query-ref-scan-water and -matrix-scan-water are mutually exclusive")
		return exitUsage
	}

	tieBreak, err := resolveTieBreak(matchInsDel, matchDelIns, insMatchDel, insDelMatch, delMatchIns, delInsMatch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bioalign:", err)
		return exitUsage
	}

	outFormat := resolveFormat(*formatExpandCig, *formatEmboss, *formatClustal, *formatFasta)

	refSeq, err := bioalign.ReadFirstFASTA(*ref)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bioalign:", err)
		return exitRuntime
	}
	qrySeq, err := bioalign.ReadFirstFASTA(*query)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bioalign:", err)
		return exitRuntime
	}

	settings := bioalign.DefaultSettings()
	settings.GapOpen = int32(*gapOpen)
	settings.GapExtend = int32(*gapExtend)
	settings.TieBreak = tieBreak
	settings.UseNeedleman = *useNeedle
	settings.UseSmithWaterman = *useWater
	settings.UseHirschberg = *useHirschberg
	settings.RefQueryScan = *queryRefScanWater
	settings.MatrixScan = *matrixScanWater
	settings.MultiBaseWater = *queryRefScanWater || *matrixScanWater
	settings.MinScore = *minScore

	if *scoreMatrix != "" {
		if err := bioalign.LoadScoreFile(*scoreMatrix, settings); err != nil {
			fmt.Fprintln(os.Stderr, "bioalign:", err)
			return exitRuntime
		}
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "bioalign:", err)
		return exitUsage
	}

	outWriter, closeOut, err := openOutput(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bioalign:", err)
		return exitRuntime
	}
	defer closeOut()

	var scanFile *os.File
	var scanSink align.ScanSink
	if *matrixScanWater {
		scanFile, err = os.Create(scanSidecarName(*out))
		if err != nil {
			fmt.Fprintln(os.Stderr, "bioalign:", err)
			return exitRuntime
		}
		defer scanFile.Close()
		scanSink = scanFile
	}

	score, aln, multi, err := runKernel(settings, refSeq, qrySeq, scanSink)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bioalign:", err)
		return exitRuntime
	}

	opts := format.Options{
		LineWrap:       *lineWrap,
		PrintAligned:   *printAligned,
		PrintUnaligned: *printUnaligned,
		PrintPositions: *printPositions && !*noPositions,
	}

	if err := bioalign.Render(outWriter, aln, refSeq, qrySeq, score, outFormat, opts); err != nil {
		fmt.Fprintln(os.Stderr, "bioalign:", err)
		return exitRuntime
	}

	if settings.RefQueryScan {
		if err := renderMultiHits(outWriter, multi, refSeq, qrySeq, outFormat, opts); err != nil {
			fmt.Fprintln(os.Stderr, "bioalign:", err)
			return exitRuntime
		}
	}

	return exitOK
}

func runKernel(settings *align.ScoringSettings, refSeq, qrySeq *bioalign.Sequence, scanSink align.ScanSink) (int64, *bioalign.Alignment, []*bioalign.MultiAlignmentResult, error) {
	switch {
	case settings.UseNeedleman:
		result, err := bioalign.AlignGlobal(refSeq, qrySeq, settings)
		if err != nil {
			return 0, nil, nil, err
		}
		return result.Score, result.Alignment, nil, nil
	case settings.UseHirschberg:
		result, err := bioalign.AlignLinearSpace(refSeq, qrySeq, settings)
		if err != nil {
			return 0, nil, nil, err
		}
		return result.Score, result.Alignment, nil, nil
	default:
		result, multi, err := bioalign.AlignLocal(refSeq, qrySeq, settings, scanSink)
		if err != nil {
			return 0, nil, nil, err
		}
		return result.Score, result.Alignment, multi, nil
	}
}

// renderMultiHits prints every ref-query-scan hit after the primary
// alignment, ranked best score first, each preceded by a one-line header
// giving its rank and matrix-cell endpoints.
func renderMultiHits(w interface {
	Write(p []byte) (int, error)
}, multi []*bioalign.MultiAlignmentResult, refSeq, qrySeq *bioalign.Sequence, outFormat format.Format, opts format.Options) error {
	align.SortByScore(multi)
	for i, hit := range multi {
		fmt.Fprintf(w, "\n# hit %d  score=%d  query-end=%d  ref-end=%d\n", i+1, hit.Score, hit.QueryEnd, hit.RefEnd)
		if err := bioalign.Render(w, hit.Alignment, refSeq, qrySeq, hit.Score, outFormat, opts); err != nil {
			return err
		}
	}
	return nil
}

func boolCount(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func resolveTieBreak(matchInsDel, matchDelIns, insMatchDel, insDelMatch, delMatchIns, delInsMatch *bool) (align.TieBreak, error) {
	switch {
	case *matchInsDel:
		return align.MatchInsDel, nil
	case *matchDelIns:
		return align.MatchDelIns, nil
	case *insMatchDel:
		return align.InsMatchDel, nil
	case *insDelMatch:
		return align.InsDelMatch, nil
	case *delMatchIns:
		return align.DelMatchIns, nil
	case *delInsMatch:
		return align.DelInsMatch, nil
	default:
		return align.MatchInsDel, nil
	}
}

func resolveFormat(expandCig, emboss, clustal, fasta bool) format.Format {
	switch {
	case emboss:
		return format.EMBOSS
	case clustal:
		return format.Clustal
	case fasta:
		return format.FASTA
	case expandCig:
		return format.ExpandedCIGAR
	default:
		return format.ExpandedCIGAR
	}
}

func openOutput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

func scanSidecarName(outPath string) string {
	prefix := outPath
	if prefix == "" {
		prefix = "bioalign"
	}
	prefix = strings.TrimSuffix(prefix, ".aln")
	return prefix + "--matrix-scan.aln"
}
