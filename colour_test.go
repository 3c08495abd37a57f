package gwaskit

import (
	"regexp"
	"testing"
)

func TestFixedScale(t *testing.T) {
	s := NewFixedScale(-1, 1000)

	tests := []struct {
		d    float64
		want float64
	}{
		{-1, 0},
		{-50, 0},
		{1000, 1},
		{5000, 1},
		{499.5, 0.5},
	}

	for _, tt := range tests {
		if got := s.Norm(tt.d); !almostEqual(got, tt.want) {
			t.Errorf("Norm(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}

	if s.Hex(-1) == s.Hex(1000) {
		t.Errorf("both ends of the scale share a colour")
	}
}

func TestPercentileScale(t *testing.T) {
	d := make([]float64, 0, 101)
	for i := 100; i >= 0; i-- {
		d = append(d, float64(i))
	}

	s := NewPercentileScale(d, 0.9, -1)
	if s.Min != -1 || s.Max < 89 || s.Max > 91 {
		t.Fatalf("range [%v, %v]", s.Min, s.Max)
	}
	if d[0] != 100 {
		t.Fatalf("input was reordered")
	}

	// all distances at the lower bound
	flat := NewPercentileScale([]float64{-1, -1}, 0.9, -1)
	if flat.Max <= flat.Min {
		t.Fatalf("degenerate range [%v, %v]", flat.Min, flat.Max)
	}

	empty := NewPercentileScale(nil, 0.9, -1)
	if empty.Max != 0 {
		t.Fatalf("empty range [%v, %v]", empty.Min, empty.Max)
	}
}

func TestStops(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	stops := NewFixedScale(0, 1).Stops(8)
	if len(stops) != 8 {
		t.Fatalf("got %d stops", len(stops))
	}
	for _, s := range stops {
		if !hex.MatchString(s) {
			t.Errorf("bad colour %q", s)
		}
	}

	if hexColour(nil) != "#000000" {
		t.Errorf("nil colour")
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		v    []float64
		q    float64
		want float64
	}{
		{[]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, 0.9, 9.1},
		{[]float64{0, 0, 0, 0, 1000}, 0.9, 600},
		{[]float64{3}, 0.9, 3},
		{[]float64{1, 2}, 0, 1},
		{[]float64{1, 2}, 1, 2},
		{[]float64{1, 2, 3, 4}, 0.5, 2.5},
	}

	for _, tt := range tests {
		if got := Percentile(tt.v, tt.q); !almostEqual(got, tt.want) {
			t.Errorf("Percentile(%v, %v) = %v, want %v", tt.v, tt.q, got, tt.want)
		}
	}

	s := NewPercentileScale([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, -1)
	if !almostEqual(s.Max, 9.1) {
		t.Errorf("scale max %v, want 9.1", s.Max)
	}
}
