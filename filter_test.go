package gwaskit

import (
	"math"
	"reflect"
	"testing"
)

func TestFilterJoined(t *testing.T) {
	rows := []JoinedRecord{
		{PositionRecord: PositionRecord{SiteID: 1, Contig: "chr2"}, Score: 3},
		{PositionRecord: PositionRecord{SiteID: 2, Contig: "chr1"}, Score: 2},
		{PositionRecord: PositionRecord{SiteID: 3, Contig: "chr1"}, Score: 2.5},
		{PositionRecord: PositionRecord{SiteID: 4, Contig: "chr2"}, Score: 4},
		{PositionRecord: PositionRecord{SiteID: 5, Contig: "chr1"}, Score: 7},
	}

	kept := FilterJoined(rows, 2)

	var ids []int64
	for _, r := range kept {
		ids = append(ids, r.SiteID)
	}
	// score 2 is not strictly above the threshold
	if want := []int64{3, 5, 1, 4}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("got %v, want %v", ids, want)
	}

	if again := FilterJoined(kept, 2); !reflect.DeepEqual(again, kept) {
		t.Fatalf("filtering twice changed the result")
	}
}

func TestFilterAssoc(t *testing.T) {
	rows := []AssocRecord{{SiteID: 9, Score: 3}, {SiteID: 1, Score: 1}, {SiteID: 4, Score: 2.01}}

	kept := FilterAssoc(rows, DefaultThreshold)
	if len(kept) != 2 || kept[0].SiteID != 9 || kept[1].SiteID != 4 {
		t.Fatalf("got %+v", kept)
	}
	if again := FilterAssoc(kept, DefaultThreshold); !reflect.DeepEqual(again, kept) {
		t.Fatalf("filtering twice changed the result")
	}
	if len(FilterAssoc(nil, 0)) != 0 {
		t.Fatalf("empty input")
	}
}

func TestBonferroni(t *testing.T) {
	if _, ok := Bonferroni(0); ok {
		t.Fatal("no line without tests")
	}

	got, ok := Bonferroni(100)
	if !ok || !almostEqual(got, -math.Log10(0.0005)) {
		t.Fatalf("Bonferroni(100) = %v", got)
	}

	if one, _ := Bonferroni(1); !almostEqual(one, -math.Log10(0.05)) {
		t.Fatalf("Bonferroni(1) = %v", one)
	}
}
