package gwaskit

import (
	"math"
	"sort"
)

// DefaultThreshold keeps sites with p < 0.01.
const DefaultThreshold = 2.0

// FilterJoined keeps rows scoring above threshold, ordered by contig.
// Rows of one contig keep their relative order.
func FilterJoined(rows []JoinedRecord, threshold float64) []JoinedRecord {
	kept := make([]JoinedRecord, 0, len(rows))
	for _, r := range rows {
		if r.Score > threshold {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Contig < kept[j].Contig
	})

	return kept
}

// FilterAssoc keeps rows scoring above threshold in input order.
func FilterAssoc(rows []AssocRecord, threshold float64) []AssocRecord {
	kept := make([]AssocRecord, 0, len(rows))
	for _, r := range rows {
		if r.Score > threshold {
			kept = append(kept, r)
		}
	}
	return kept
}

// Bonferroni is the -log10 of 0.05/n. ok is false when there were no
// tests to correct for.
func Bonferroni(n int) (score float64, ok bool) {
	if n <= 0 {
		return 0, false
	}
	return -math.Log10(0.05 / float64(n)), true
}
