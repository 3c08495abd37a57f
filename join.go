package gwaskit

import "sort"

// JoinedRecord is a positioned site with its association score.
type JoinedRecord struct {
	PositionRecord
	PValue float64
	Score  float64
}

// Join attaches scores to positions by site id. The position table
// drives the join: positions without a score are dropped, scores
// without a position are never looked at. The result is ordered by
// site id, ties in position table order. Site ids of assoc must be
// unique.
func Join(assoc []AssocRecord, positions []PositionRecord) ([]JoinedRecord, error) {
	byID := make(map[int64]AssocRecord, len(assoc))
	for _, a := range assoc {
		if _, ok := byID[a.SiteID]; ok {
			return nil, newError(FileFormat, "", "site %d appears more than once in the association table", a.SiteID)
		}
		byID[a.SiteID] = a
	}

	joined := make([]JoinedRecord, 0, len(positions))

	for _, p := range positions {
		a, ok := byID[p.SiteID]
		if !ok {
			continue
		}
		joined = append(joined, JoinedRecord{PositionRecord: p, PValue: a.PValue, Score: a.Score})
	}

	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].SiteID < joined[j].SiteID
	})

	return joined, nil
}
