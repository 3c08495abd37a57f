package gwaskit

import (
	"sort"
	"strings"
)

// PositionRecord is one row of a gfa2bin nearest table: where a graph
// node sits on a reference path.
type PositionRecord struct {
	SiteID   int64
	Contig   string
	Position int64
	Distance float64 // signed distance to the closest reference node
}

// gfa2bin nearest header: node ref_node distance position path
var positionColumns = []string{"node", "path", "position", "distance"}

// ParsePositions converts a nearest table and sorts it by node id. Rows
// with equal node ids keep their file order.
func ParsePositions(t *Table) ([]PositionRecord, error) {
	cols := make([]int, len(positionColumns))
	for i, name := range positionColumns {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}

	records := make([]PositionRecord, len(t.Rows))

	for i, row := range t.Rows {
		id, err := t.Int(i, cols[0])
		if err != nil {
			return nil, err
		}

		pos, err := t.Int(i, cols[2])
		if err != nil {
			return nil, err
		}
		if pos < 0 {
			return nil, newError(Numeric, t.Path, "row %d: negative position %d", i+1, pos)
		}

		dist, err := t.Float(i, cols[3])
		if err != nil {
			return nil, err
		}

		records[i] = PositionRecord{
			SiteID:   id,
			Contig:   strings.TrimSpace(row[cols[1]]),
			Position: pos,
			Distance: dist,
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SiteID < records[j].SiteID
	})

	return records, nil
}

// ReadPositions loads a tab delimited gfa2bin nearest table.
func ReadPositions(path string) ([]PositionRecord, error) {
	t, err := ReadTable(path, TabDelim)
	if err != nil {
		return nil, err
	}
	return ParsePositions(t)
}
