package gwaskit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plot", "plot.pdf"},
		{"plot.png", "plot.png"},
		{"plot.SVG", "plot.SVG"},
		{"plot.html", "plot.html"},
		{"gwas.results", "gwas.results.pdf"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in, ".pdf"); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func sampleManhattan() *Manhattan {
	rows := []JoinedRecord{
		joinedAt(1, "chr1", 10, 3),
		joinedAt(2, "chr1", 30, 5),
		joinedAt(3, "chr2", 4, 2.5),
	}
	rows[1].Distance = 400
	return BuildNearestManhattan(rows, 1000, DefaultConfig())
}

func assertNonEmpty(t *testing.T, fn string) []byte {
	t.Helper()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 {
		t.Fatalf("%s is empty", fn)
	}
	return b
}

func TestRenderManhattan(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"m.svg", "m.png", "m.pdf"} {
		fn := filepath.Join(dir, name)
		if err := RenderManhattan(sampleManhattan(), fn); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		assertNonEmpty(t, fn)
	}

	fn := filepath.Join(dir, "m.html")
	if err := RenderManhattan(sampleManhattan(), fn); err != nil {
		t.Fatal(err)
	}
	html := string(assertNonEmpty(t, fn))
	if !strings.Contains(html, "echarts") || !strings.Contains(html, "chr2") {
		t.Errorf("html output lacks the chart")
	}
}

func TestRenderEmptyManhattan(t *testing.T) {
	dir := t.TempDir()

	plots := map[string]*Manhattan{
		"nodes":   BuildNodeManhattan(nil, DefaultConfig()),
		"nearest": BuildNearestManhattan(nil, 0, DefaultConfig()),
		"single":  BuildNearestManhattan([]JoinedRecord{joinedAt(1, "A", 10, 3)}, 2, DefaultConfig()),
	}

	for name, m := range plots {
		for _, ext := range []string{".pdf", ".png", ".svg", ".html"} {
			fn := filepath.Join(dir, name+ext)
			if err := RenderManhattan(m, fn); err != nil {
				t.Fatalf("%s%s: %v", name, ext, err)
			}
			assertNonEmpty(t, fn)
		}
	}
}

func TestLegendImage(t *testing.T) {
	s := NewFixedScale(-1, 1000)
	img := legendImage(s, 16)

	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 16 {
		t.Fatalf("bounds %v", b)
	}
	if img.NRGBAAt(0, 0) != s.Opaque(1000) || img.NRGBAAt(0, 15) != s.Opaque(-1) {
		t.Errorf("strip does not run from Max at the top to Min at the bottom")
	}
	if img.NRGBAAt(0, 7).A != 255 {
		t.Errorf("legend is not opaque")
	}
}

func TestRenderQQ(t *testing.T) {
	dir := t.TempDir()
	qq := BuildQQ([]float64{0.1, 0.5, 3, 1.2}, 1)

	for _, name := range []string{"q.pdf", "q.svg", "q.html"} {
		fn := filepath.Join(dir, name)
		if err := RenderQQ(qq, fn); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		assertNonEmpty(t, fn)
	}
}
