package gwaskit

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

const smallTable = "ps\tp_lrt\n1\t0.01\n2\t0.1\n"

func TestOpenCompressed(t *testing.T) {
	dir := t.TempDir()

	gz := filepath.Join(dir, "assoc.txt.gz")
	w, err := CreateOutput(gz)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.WriteString(smallTable); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	sz := filepath.Join(dir, "assoc.txt.sz")
	f, err := os.Create(sz)
	if err != nil {
		t.Fatal(err)
	}
	sw := snappy.NewBufferedWriter(f)
	if _, err := sw.Write([]byte(smallTable)); err != nil {
		t.Fatal(err)
	}
	if err := sw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	plain := writeFile(t, dir, "assoc.txt", smallTable)

	for _, fn := range []string{plain, gz, sz} {
		recs, err := ReadAssoc(fn, "ps", ScoreSource{Mode: ScoreLast})
		if err != nil {
			t.Fatalf("%s: %v", fn, err)
		}
		if len(recs) != 2 || !almostEqual(recs[0].Score, 2) {
			t.Errorf("%s: %+v", fn, recs)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "missing.txt"))
	if KindOf(err) != FileNotFound {
		t.Fatalf("want file not found, got %v", err)
	}
}

func TestWriteOutputRemovesOnFailure(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "plot.pdf")

	err := writeOutput(fn, func(w io.Writer) error {
		io.WriteString(w, "%PDF-")
		return errors.New("encoder failed")
	})
	if err == nil {
		t.Fatal("error swallowed")
	}
	if Exists(fn) {
		t.Fatalf("%s left behind", fn)
	}

	if err := writeOutput(fn, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	if b, _ := os.ReadFile(fn); string(b) != "ok" {
		t.Fatalf("got %q", b)
	}
}
