package gwaskit

import "image/color"

// Point is one marker of a rendered scatter plot.
type Point struct {
	X, Y     float64
	Distance float64 // colour value, only meaningful with a ColourScale
	Group    string  // contig, empty on the node plot
}

// Manhattan is a ready to draw manhattan plot.
type Manhattan struct {
	Title  string
	XLabel string
	YLabel string

	Points []Point
	Ticks  []Tick // nil for a plain numeric x axis

	// Colour is nil for single colour plots
	Colour      *ColourScale
	PointColour color.Color
	PointRadius float64 // in points

	// Bonferroni line, drawn only when HasLine
	Line    float64
	HasLine bool

	YMax float64

	// figure size in inches
	Width, Height float64
}

const pvalueLabel = "-log10(P value)"

func yMax(points []Point) float64 {
	if len(points) == 0 {
		return 1
	}
	max := points[0].Y
	for _, p := range points[1:] {
		if p.Y > max {
			max = p.Y
		}
	}
	return max + 1
}

// setLine places the Bonferroni line for n tests and fits the y axis
// to the points and the line.
func (m *Manhattan) setLine(n int) {
	m.Line, m.HasLine = Bonferroni(n)
	m.YMax = yMax(m.Points)
	if m.HasLine && m.Line >= m.YMax {
		m.YMax = m.Line + 1
	}
}

func distanceScale(rows []JoinedRecord, cfg Config) *ColourScale {
	if cfg.ColourRange == ColourFixed {
		return NewFixedScale(cfg.ColourMin, cfg.ColourMax)
	}

	distances := make([]float64, len(rows))
	for i, r := range rows {
		distances[i] = r.Distance
	}
	return NewPercentileScale(distances, cfg.ColourPercentile, cfg.ColourMin)
}

// BuildNearestManhattan filters joined rows, lays contigs out along the
// x axis and colours sites by distance to the reference. totalRows is
// the association row count before filtering, used for the Bonferroni
// line.
func BuildNearestManhattan(rows []JoinedRecord, totalRows int, cfg Config) *Manhattan {
	kept := FilterJoined(rows, cfg.Threshold)
	layout := LayoutContigs(kept, cfg.Gap)

	m := &Manhattan{
		XLabel:      "Reference name",
		YLabel:      pvalueLabel,
		Points:      make([]Point, len(layout.Points)),
		Ticks:       layout.Ticks,
		Colour:      distanceScale(kept, cfg),
		PointRadius: 2,
		Width:       10,
		Height:      5,
	}

	for i, p := range layout.Points {
		m.Points[i] = Point{X: p.X, Y: p.Score, Distance: p.Distance, Group: p.Contig}
	}

	m.setLine(totalRows)

	return m
}

// BuildNodeManhattan plots scores against node id, no grouping.
func BuildNodeManhattan(records []AssocRecord, cfg Config) *Manhattan {
	kept := FilterAssoc(records, cfg.Threshold)

	m := &Manhattan{
		XLabel:      "Node id",
		YLabel:      "-log(p)",
		Points:      make([]Point, len(kept)),
		PointColour: color.NRGBA{B: 255, A: 255},
		PointRadius: 1,
		Width:       10,
		Height:      6,
	}

	for i, r := range kept {
		m.Points[i] = Point{X: float64(r.SiteID), Y: r.Score}
	}

	m.setLine(len(records))

	return m
}
