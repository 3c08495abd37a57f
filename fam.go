package gwaskit

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// FamRecord is one line of a PLINK .fam file.
// FAM fields:
// FAMILYID SAMPLEID FATHERID MOTHERID SEX PHENOTYPE
type FamRecord [6]string

// ReadFAM reads a whitespace delimited PLINK .fam file.
func ReadFAM(fn string) ([]FamRecord, error) {
	inFile, err := OpenInput(fn)
	if err != nil {
		return nil, err
	}
	defer inFile.Close()

	scanner := bufio.NewScanner(inFile)
	scanner.Split(bufio.ScanLines)

	var lineno int
	var fam []FamRecord

	for scanner.Scan() {
		line := scanner.Text()
		lineno++

		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		if len(fields) != 6 {
			return nil, newError(FileFormat, fn, "invalid FAM line %q at %d", line, lineno)
		}

		var rec FamRecord
		copy(rec[:], fields)
		fam = append(fam, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", fn)
	}

	return fam, nil
}

// ReadPhenotypeValues reads the sample -> phenotype_value lookup of a
// tab delimited phenotype file.
func ReadPhenotypeValues(fn string) (map[string]string, error) {
	t, err := ReadTable(fn, TabDelim)
	if err != nil {
		return nil, err
	}

	sampleCol, err := t.Column("sample")
	if err != nil {
		return nil, err
	}
	valueCol, err := t.Column("phenotype_value")
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(t.Rows))
	for _, row := range t.Rows {
		values[strings.TrimSpace(row[sampleCol])] = strings.TrimSpace(row[valueCol])
	}

	return values, nil
}

// SetPhenotypes replaces the phenotype column of every record, looking
// samples up by the first (family id) column as gfa2bin writes the
// sample name there.
func SetPhenotypes(fam []FamRecord, values map[string]string) ([]FamRecord, error) {
	out := make([]FamRecord, len(fam))

	for i, rec := range fam {
		v, ok := values[rec[0]]
		if !ok {
			return nil, newError(Validation, "", "sample %s has no phenotype value", rec[0])
		}
		rec[5] = v
		out[i] = rec
	}

	return out, nil
}

// WriteFAM writes space delimited records.
func WriteFAM(fn string, fam []FamRecord) error {
	return writeOutput(fn, func(w io.Writer) error {
		for _, rec := range fam {
			if _, err := io.WriteString(w, strings.Join(rec[:], " ")+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
}
