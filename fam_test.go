package gwaskit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetPhenotypes(t *testing.T) {
	dir := t.TempDir()

	famFn := writeFile(t, dir, "in.fam", "A\tA\t0\t0\t0\t-9\nB B 0 0 1 -9\n")
	phenoFn := writeFile(t, dir, "pheno.tsv", "sample\tphenotype_value\textra\nB\t2.5\tx\nA\tNA\ty\n")

	fam, err := ReadFAM(famFn)
	if err != nil {
		t.Fatal(err)
	}
	values, err := ReadPhenotypeValues(phenoFn)
	if err != nil {
		t.Fatal(err)
	}

	fam, err = SetPhenotypes(fam, values)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.fam")
	if err := WriteFAM(out, fam); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "A A 0 0 0 NA\nB B 0 0 1 2.5\n"; string(b) != want {
		t.Fatalf("got %q, want %q", b, want)
	}
}

func TestSetPhenotypesMissingSample(t *testing.T) {
	fam := []FamRecord{{"A", "A", "0", "0", "0", "-9"}}

	if _, err := SetPhenotypes(fam, map[string]string{"B": "1"}); KindOf(err) != Validation {
		t.Fatalf("want validation error, got %v", err)
	}
	if fam[0][5] != "-9" {
		t.Fatalf("input modified")
	}
}

func TestReadFAMBadLine(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "bad.fam", "A A 0 0 0\n")
	if _, err := ReadFAM(fn); KindOf(err) != FileFormat {
		t.Fatalf("want file format error, got %v", err)
	}
}
