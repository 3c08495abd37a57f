package gwaskit

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// SampleSheet is the pipeline's sample,fq1[,fq2] csv.
type SampleSheet struct {
	Path  string
	Names []string
	FQ1   []string
	FQ2   []string // empty without an fq2 column
}

// PhenotypeTable is a csv with one sample column followed by phenotype
// columns.
type PhenotypeTable struct {
	Path    string
	Samples []string
	Columns []string   // phenotype column names
	Values  [][]string // Values[row][phenotype]
}

// ReadSampleSheet loads a sample sheet; sample and fq1 are required.
func ReadSampleSheet(fn string) (*SampleSheet, error) {
	t, err := ReadTable(fn, CommaDelim)
	if err != nil {
		return nil, err
	}

	nameCol, err := t.Column("sample")
	if err != nil {
		return nil, err
	}
	fq1Col, err := t.Column("fq1")
	if err != nil {
		return nil, err
	}
	fq2Col := -1
	if t.HasColumn("fq2") {
		fq2Col, _ = t.Column("fq2")
	}

	s := &SampleSheet{Path: fn}

	for _, row := range t.Rows {
		s.Names = append(s.Names, strings.TrimSpace(row[nameCol]))
		s.FQ1 = append(s.FQ1, strings.TrimSpace(row[fq1Col]))
		if fq2Col >= 0 {
			s.FQ2 = append(s.FQ2, strings.TrimSpace(row[fq2Col]))
		}
	}

	return s, nil
}

// ReadPhenotypes loads a phenotype table. The sample column is the first
// column when its header is empty, "sample" or "id", otherwise the
// column called "sample".
func ReadPhenotypes(fn string) (*PhenotypeTable, error) {
	t, err := ReadTable(fn, CommaDelim)
	if err != nil {
		return nil, err
	}

	sampleCol := -1
	switch strings.ToLower(strings.TrimSpace(t.Header[0])) {
	case "", "sample", "id":
		sampleCol = 0
	default:
		if sampleCol, err = t.Column("sample"); err != nil {
			return nil, err
		}
	}

	p := &PhenotypeTable{Path: fn}

	for i, h := range t.Header {
		if i != sampleCol {
			p.Columns = append(p.Columns, strings.TrimSpace(h))
		}
	}

	for _, row := range t.Rows {
		p.Samples = append(p.Samples, strings.TrimSpace(row[sampleCol]))

		vals := make([]string, 0, len(row)-1)
		for i, cell := range row {
			if i != sampleCol {
				vals = append(vals, strings.TrimSpace(cell))
			}
		}
		p.Values = append(p.Values, vals)
	}

	return p, nil
}

// ValidSampleName allows letters, digits, '_' and '-'.
func ValidSampleName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '-' {
			return false
		}
	}
	return true
}

// CheckSampleNames fails on the first badly formatted sample name.
func CheckSampleNames(s *SampleSheet) error {
	for _, name := range s.Names {
		if !ValidSampleName(name) {
			return newError(Validation, "", "The sample name %s is not in the correct format", name)
		}
	}
	return nil
}

func setDiff(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, x := range b {
		inB[x] = true
	}

	seen := make(map[string]bool)
	var diff []string
	for _, x := range a {
		if !inB[x] && !seen[x] {
			seen[x] = true
			diff = append(diff, x)
		}
	}
	sort.Strings(diff)
	return diff
}

// CheckSampleSets requires the sample sheet and the phenotype table to
// name the same samples.
func CheckSampleSets(s *SampleSheet, p *PhenotypeTable) error {
	if missing := setDiff(s.Names, p.Samples); len(missing) > 0 {
		return newError(Validation, "", "The following samples are not in the phenotypes file: %s", strings.Join(missing, ", "))
	}
	if extra := setDiff(p.Samples, s.Names); len(extra) > 0 {
		return newError(Validation, "", "The following samples are not in the samples file: %s", strings.Join(extra, ", "))
	}
	return nil
}

// CheckReadFiles requires every fq1, and every non-empty fq2, to exist.
func CheckReadFiles(s *SampleSheet) error {
	for _, fq := range s.FQ1 {
		if !Exists(fq) {
			return newError(FileNotFound, "", "The fastq file %s does not exist", fq)
		}
	}
	for _, fq := range s.FQ2 {
		if fq != "" && !Exists(fq) {
			return newError(FileNotFound, "", "The fastq file %s does not exist", fq)
		}
	}
	return nil
}

// CheckDuplicateSamples fails when a sample name is listed twice.
func CheckDuplicateSamples(s *SampleSheet) error {
	seen := make(map[string]bool, len(s.Names))
	var dups []string

	for _, name := range s.Names {
		if seen[name] {
			dups = append(dups, name)
		}
		seen[name] = true
	}

	if len(dups) > 0 {
		return newError(Validation, "", "The following samples are duplicated in the samples file: %s", strings.Join(dups, ", "))
	}
	return nil
}

// ValidPhenotype accepts NA and anything parsing as a float.
func ValidPhenotype(v string) bool {
	if v == "NA" {
		return true
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// CheckPhenotypeValues fails on the first column holding a value that
// is neither numeric nor NA.
func CheckPhenotypeValues(p *PhenotypeTable) error {
	for j, col := range p.Columns {
		for _, row := range p.Values {
			if !ValidPhenotype(row[j]) {
				return newError(Numeric, "", "The phenotype values in column %s are not numeric", col)
			}
		}
	}
	return nil
}
