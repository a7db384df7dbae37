// Package fasta reads FASTA-formatted sequence files for the alignment
// core, the collaborator spec.md calls FastaReader.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biokit/alnseq/internal/sequence"
)

// InvalidFasta is returned when a file or reader contains no recognizable
// FASTA records (no header line, or a header with no following bases).
type InvalidFasta struct {
	Reason string
}

func (e *InvalidFasta) Error() string {
	return fmt.Sprintf("invalid FASTA input: %s", e.Reason)
}

// Record is a single parsed FASTA entry, carrying both the constructed
// Sequence and the header line it came from, without the leading '>'
// (Parse/ReadFile callers that want the description do not need to
// re-derive it from the ID; ReadFirst returns only the Sequence).
type Record struct {
	Sequence *sequence.Sequence
	Header   string
}

// ReadFile opens filename and parses every record in it.
func ReadFile(filename string) ([]*Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening fasta file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ReadFirst opens filename and returns only its first record, the shape
// the CLI's -query/-ref flags need (one sequence per file).
func ReadFirst(filename string) (*sequence.Sequence, error) {
	records, err := ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &InvalidFasta{Reason: "no records found in " + filename}
	}
	return records[0].Sequence, nil
}

// Parse reads FASTA records from r. Blank lines are ignored; bases are
// upper-cased and validated against the full IUPAC alphabet via
// sequence.NewIUPAC so alignment inputs accept ambiguity codes.
func Parse(r io.Reader) ([]*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var records []*Record
	var header string
	var bases strings.Builder
	haveHeader := false

	flush := func() error {
		if !haveHeader {
			return nil
		}
		if bases.Len() == 0 {
			return &InvalidFasta{Reason: fmt.Sprintf("header %q has no sequence", header)}
		}
		id, _ := splitHeader(header)
		seq, err := sequence.NewIUPAC(bases.String(), id)
		if err != nil {
			return err
		}
		records = append(records, &Record{Sequence: seq, Header: header})
		bases.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			header = line[1:]
			haveHeader = true
			continue
		}
		if !haveHeader {
			return nil, &InvalidFasta{Reason: "sequence data before any header line"}
		}
		bases.WriteString(strings.ToUpper(line))
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fasta: %w", err)
	}
	if len(records) == 0 {
		return nil, &InvalidFasta{Reason: "no FASTA records found"}
	}
	return records, nil
}

func splitHeader(header string) (id, description string) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) > 1 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
