package align

// shellSort sorts result in place using Knuth's 3k+1 gap sequence, with
// less reporting whether result[a] sorts strictly before result[b].
func shellSort(result []*MultiAlignmentResult, less func(a, b *MultiAlignmentResult) bool) {
	n := len(result)
	gap := 1
	for gap < n/3 {
		gap = gap*3 + 1
	}
	for gap >= 1 {
		for i := gap; i < n; i++ {
			tmp := result[i]
			j := i
			for j >= gap && less(tmp, result[j-gap]) {
				result[j] = result[j-gap]
				j -= gap
			}
			result[j] = tmp
		}
		gap /= 3
	}
}

// SortByScore orders hits by score descending, the ranking multi-base-water
// reporting presents by default.
func SortByScore(result []*MultiAlignmentResult) {
	shellSort(result, func(a, b *MultiAlignmentResult) bool { return a.Score > b.Score })
}

// SortByQuery orders hits by query-end coordinate ascending.
func SortByQuery(result []*MultiAlignmentResult) {
	shellSort(result, func(a, b *MultiAlignmentResult) bool { return a.QueryEnd < b.QueryEnd })
}

// SortByRef orders hits by reference-end coordinate ascending.
func SortByRef(result []*MultiAlignmentResult) {
	shellSort(result, func(a, b *MultiAlignmentResult) bool { return a.RefEnd < b.RefEnd })
}

// SortByQueryRef orders hits by the compound key (query-end, then ref-end).
func SortByQueryRef(result []*MultiAlignmentResult) {
	shellSort(result, func(a, b *MultiAlignmentResult) bool {
		if a.QueryEnd != b.QueryEnd {
			return a.QueryEnd < b.QueryEnd
		}
		return a.RefEnd < b.RefEnd
	})
}

// shadows reports whether hit a's aligned span wholly covers hit b's span
// in both the query and the reference, and a's score is at least b's: when
// this holds, b contributes nothing a higher-scoring, larger hit doesn't
// already cover, so b is dropped. This is the formal predicate chosen to
// resolve the shadow-test's source inconsistency (see DESIGN.md): prefer
// correctness (no hit surviving that is strictly subsumed by a better one)
// over reproducing the original bitwise test verbatim.
func shadows(a, b *MultiAlignmentResult) bool {
	if a == b {
		return false
	}
	qCovers := a.Alignment.QryStart <= b.Alignment.QryStart && a.QueryEnd >= b.QueryEnd
	rCovers := a.Alignment.RefStart <= b.Alignment.RefStart && a.RefEnd >= b.RefEnd
	if !qCovers || !rCovers {
		return false
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a != b
}

// filterOverlap drops every hit shadowed by a higher (or equal, tie broken
// by identity) scoring hit, after sorting by sortFn. A hit with score 0 is
// treated as a vacated slot (the per-row/per-column best-cell trackers are
// pre-filled with a zero-score sentinel before scanning) and skipped rather
// than competing with real hits.
func filterOverlap(result []*MultiAlignmentResult, sortFn func([]*MultiAlignmentResult)) []*MultiAlignmentResult {
	active := make([]*MultiAlignmentResult, 0, len(result))
	for _, r := range result {
		if r.Score != 0 {
			active = append(active, r)
		}
	}
	sortFn(active)
	keep := make([]*MultiAlignmentResult, 0, len(active))
	for _, cand := range active {
		shadowed := false
		for _, other := range active {
			if shadows(other, cand) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			keep = append(keep, cand)
		}
	}
	return keep
}

// FilterOverlapQry filters result after sorting by query-end.
func FilterOverlapQry(result []*MultiAlignmentResult) []*MultiAlignmentResult {
	return filterOverlap(result, SortByQuery)
}

// FilterOverlapRef filters result after sorting by ref-end.
func FilterOverlapRef(result []*MultiAlignmentResult) []*MultiAlignmentResult {
	return filterOverlap(result, SortByRef)
}

// FilterOverlapQryRef filters result after sorting by the compound
// (query-end, ref-end) key.
func FilterOverlapQryRef(result []*MultiAlignmentResult) []*MultiAlignmentResult {
	return filterOverlap(result, SortByQueryRef)
}
