// Package scorefile parses substitution-matrix files for the alignment
// core, the collaborator spec.md calls read_score_file.
package scorefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/biokit/alnseq/internal/align"
)

// InvalidScoreFile is returned when a line is neither blank, a comment,
// nor a well-formed "ref_sym qry_sym integer" triple.
type InvalidScoreFile struct {
	Line int
	Text string
}

func (e *InvalidScoreFile) Error() string {
	return fmt.Sprintf("invalid score file at line %d: %q", e.Line, e.Text)
}

// Load opens filename and applies every entry in it to settings.Matrix.
func Load(filename string, settings *align.ScoringSettings) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening score file: %w", err)
	}
	defer f.Close()

	return Apply(f, settings)
}

// Apply reads ref_sym qry_sym signed_int rows from r, updating
// settings.Matrix in place. Lines beginning with '\' or "//" are
// comments; blank lines are ignored.
func Apply(r io.Reader, settings *align.ScoringSettings) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, `\`) || strings.HasPrefix(line, "//") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return &InvalidScoreFile{Line: lineNum, Text: raw}
		}

		refSym, qrySym := fields[0], fields[1]
		if len(refSym) != 1 || len(qrySym) != 1 {
			return &InvalidScoreFile{Line: lineNum, Text: raw}
		}

		score, err := strconv.ParseInt(fields[2], 10, 16)
		if err != nil {
			return &InvalidScoreFile{Line: lineNum, Text: raw}
		}

		ri := letterIndex(refSym[0])
		qi := letterIndex(qrySym[0])
		if ri < 0 || ri >= 26 || qi < 0 || qi >= 26 {
			return &InvalidScoreFile{Line: lineNum, Text: raw}
		}

		settings.Matrix[ri][qi] = int16(score)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading score file: %w", err)
	}
	return nil
}

func letterIndex(b byte) int {
	return int(b&0x1F) - 1
}
