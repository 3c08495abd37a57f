package gwaskit

// PlotPoint is a joined row placed on the concatenated x axis.
type PlotPoint struct {
	JoinedRecord
	X float64
}

// Tick labels the middle of one contig on the x axis.
type Tick struct {
	Value float64
	Label string
}

// Layout is the outcome of placing contigs left to right.
type Layout struct {
	Points []PlotPoint
	Ticks  []Tick
	Offset int64 // where the next contig would start
}

// group is a run of rows sharing a contig, in first-seen order.
type group struct {
	contig string
	rows   []JoinedRecord
}

func groupByContig(rows []JoinedRecord) []group {
	var groups []group
	idx := make(map[string]int)

	for _, r := range rows {
		i, ok := idx[r.Contig]
		if !ok {
			i = len(groups)
			idx[r.Contig] = i
			groups = append(groups, group{contig: r.Contig})
		}
		groups[i].rows = append(groups[i].rows, r)
	}

	return groups
}

// place adds one contig to the layout. A contig with largest position m
// covers [offset, offset+m]; the next one starts gap past that.
func place(acc Layout, g group, gap int64) Layout {
	var maxPos int64
	for _, r := range g.rows {
		if r.Position > maxPos {
			maxPos = r.Position
		}
	}

	for _, r := range g.rows {
		acc.Points = append(acc.Points, PlotPoint{JoinedRecord: r, X: float64(r.Position + acc.Offset)})
	}

	acc.Ticks = append(acc.Ticks, Tick{
		Value: float64(acc.Offset) + float64(maxPos)/2,
		Label: g.contig,
	})

	acc.Offset += maxPos + 1 + gap

	return acc
}

// LayoutContigs lays rows out contig by contig in order of first
// appearance. Feed it FilterJoined output so that order is by contig.
func LayoutContigs(rows []JoinedRecord, gap int64) Layout {
	acc := Layout{Points: make([]PlotPoint, 0, len(rows))}

	for _, g := range groupByContig(rows) {
		acc = place(acc, g, gap)
	}

	return acc
}
