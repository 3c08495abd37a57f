package gwaskit

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ColourScale maps a distance onto a continuous colour map. Values
// outside [Min, Max] take the colour of the nearer end.
type ColourScale struct {
	Min, Max float64
	cmap     palette.ColorMap
}

func newColourScale(min, max float64) *ColourScale {
	if math.IsNaN(max) || max <= min {
		max = min + 1
	}

	// reversed black body runs light (near) to dark (far) like plasma_r
	cmap := palette.Reverse(moreland.ExtendedBlackBody())
	cmap.SetMin(0)
	cmap.SetMax(1)
	cmap.SetAlpha(0.5)

	return &ColourScale{Min: min, Max: max, cmap: cmap}
}

// NewFixedScale spans [min, max].
func NewFixedScale(min, max float64) *ColourScale {
	return newColourScale(min, max)
}

// NewPercentileScale spans min up to the q-quantile of distances, so a
// few far away nodes do not wash out the gradient.
func NewPercentileScale(distances []float64, q, min float64) *ColourScale {
	if len(distances) == 0 {
		return newColourScale(min, min+1)
	}
	return newColourScale(min, Percentile(distances, q))
}

// Percentile is the q-quantile of v, interpolated linearly between the
// two closest ranks at (n-1)*q as numpy.percentile does by default.
func Percentile(v []float64, q float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * math.Min(math.Max(q, 0), 1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Norm is the position of d on the scale in [0, 1].
func (s *ColourScale) Norm(d float64) float64 {
	v := (d - s.Min) / (s.Max - s.Min)
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// At is the colour of distance d.
func (s *ColourScale) At(d float64) color.Color {
	c, err := s.cmap.At(s.Norm(d))
	if err != nil {
		// only reachable through rounding at the ends of the map
		return color.NRGBA{A: 128}
	}
	return c
}

// Opaque is At without transparency, for legends.
func (s *ColourScale) Opaque(d float64) color.NRGBA {
	c := color.NRGBAModel.Convert(s.At(d)).(color.NRGBA)
	c.A = 255
	return c
}

// Hex is At as a #rrggbb string, ignoring alpha.
func (s *ColourScale) Hex(d float64) string {
	return hexColour(s.At(d))
}

// Stops samples the map into n hex colours from Min to Max.
func (s *ColourScale) Stops(n int) []string {
	if n < 2 {
		n = 2
	}
	stops := make([]string, n)
	for i := range stops {
		stops[i] = s.Hex(s.Min + (s.Max-s.Min)*float64(i)/float64(n-1))
	}
	return stops
}

func hexColour(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
