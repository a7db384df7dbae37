package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/biokit/alnseq/pkg/bioalign"
)

// AlignmentRequest represents an alignment request.
type AlignmentRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	Rendered   string `json:"rendered"`
	Score      int64  `json:"score"`
	Matches    int    `json:"matches"`
	Mismatches int    `json:"mismatches"`
	Insertions int    `json:"insertions"`
	Deletions  int    `json:"deletions"`
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*bioalign.Sequence, *bioalign.Sequence, bool) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return nil, nil, false
	}

	seq1, err := bioalign.NewSequence(req.Sequence1, "sequence1")
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return nil, nil, false
	}

	seq2, err := bioalign.NewSequence(req.Sequence2, "sequence2")
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return nil, nil, false
	}

	return seq1, seq2, true
}

func writeAlignmentResponse(w http.ResponseWriter, ref, qry *bioalign.Sequence, score int64, aln *bioalign.Alignment) {
	var buf bytes.Buffer
	_ = bioalign.Render(&buf, aln, ref, qry, score, bioalign.ExpandedCIGAR, bioalign.DefaultFormatOptions())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentResponse{
		Rendered:   buf.String(),
		Score:      score,
		Matches:    aln.NumMatches,
		Mismatches: aln.NumMismatches,
		Insertions: aln.NumInsertions,
		Deletions:  aln.NumDeletions,
	})
}

// LocalAlignHandler handles Smith-Waterman local alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	seq1, seq2, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	settings := bioalign.DefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true

	result, _, err := bioalign.AlignLocal(seq1, seq2, settings, nil)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	writeAlignmentResponse(w, seq1, seq2, result.Score, result.Alignment)
}

// GlobalAlignHandler handles Needleman-Wunsch global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	seq1, seq2, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	settings := bioalign.DefaultSettings()

	result, err := bioalign.AlignGlobal(seq1, seq2, settings)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	writeAlignmentResponse(w, seq1, seq2, result.Score, result.Alignment)
}

// HirschbergAlignHandler handles linear-space global alignment requests.
func HirschbergAlignHandler(w http.ResponseWriter, r *http.Request) {
	seq1, seq2, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	settings := bioalign.DefaultSettings()
	settings.UseNeedleman = false
	settings.UseHirschberg = true

	result, err := bioalign.AlignLinearSpace(seq1, seq2, settings)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	writeAlignmentResponse(w, seq1, seq2, result.Score, result.Alignment)
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int64 `json:"score"`
}

// AlignmentScoreHandler handles alignment score requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	seq1, seq2, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	settings := bioalign.DefaultSettings()
	settings.UseNeedleman = false
	settings.UseSmithWaterman = true

	result, _, err := bioalign.AlignLocal(seq1, seq2, settings, nil)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: result.Score})
}
