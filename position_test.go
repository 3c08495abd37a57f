package gwaskit

import (
	"strings"
	"testing"
)

func TestParsePositions(t *testing.T) {
	in := "node\tref_node\tdistance\tposition\tpath\n" +
		"9\t3\t-2\t100\tchr2\n" +
		"4\t4\t0\t7.0\tchr1\n" +
		"9\t5\t1\t120\tchr3\n"

	tab, err := ParseTable(strings.NewReader(in), "nearest", TabDelim)
	if err != nil {
		t.Fatal(err)
	}

	recs, err := ParsePositions(tab)
	if err != nil {
		t.Fatal(err)
	}

	want := []PositionRecord{
		{SiteID: 4, Contig: "chr1", Position: 7, Distance: 0},
		{SiteID: 9, Contig: "chr2", Position: 100, Distance: -2},
		{SiteID: 9, Contig: "chr3", Position: 120, Distance: 1},
	}
	if len(recs) != len(want) {
		t.Fatalf("got %+v", recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, recs[i], want[i])
		}
	}
}

func TestParsePositionsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"missing path column", "node\tdistance\tposition\n1\t0\t5\n", FileFormat},
		{"negative position", "node\tdistance\tposition\tpath\n1\t0\t-5\tA\n", Numeric},
		{"text node", "node\tdistance\tposition\tpath\nx\t0\t5\tA\n", Numeric},
		{"text distance", "node\tdistance\tposition\tpath\n1\tfar\t5\tA\n", Numeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := ParseTable(strings.NewReader(tt.in), "nearest", TabDelim)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := ParsePositions(tab); KindOf(err) != tt.kind {
				t.Fatalf("want %v, got %v", tt.kind, err)
			}
		})
	}
}
