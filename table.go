package gwaskit

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// delimiter sets of the tables we read
const (
	TabDelim     = "\t"
	CommaDelim   = ","
	SamplesDelim = "\t;,"
)

// Table is a delimited text file with a header row.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string
}

// splitAny splits at every rune of delims, keeping empty fields.
func splitAny(line, delims string) []string {
	if len(delims) == 1 {
		return strings.Split(line, delims)
	}

	var fields []string
	start := 0
	for i, c := range line {
		if strings.ContainsRune(delims, c) {
			fields = append(fields, line[start:i])
			start = i + utf8.RuneLen(c)
		}
	}
	return append(fields, line[start:])
}

// ParseTable reads a header row and the data rows that follow it. Each
// data row must have as many fields as the header.
func ParseTable(r io.Reader, path, delims string) (*Table, error) {
	scanner := bufio.NewScanner(r)

	// GEMMA and gfa2bin lines are short but kinship sample sheets are not
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 16*1024*1024)

	t := &Table{Path: path}

	var lineno int

	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitAny(line, delims)

		if t.Header == nil {
			t.Header = fields
			continue
		}

		if len(fields) != len(t.Header) {
			return nil, newError(FileFormat, path, "line %d has %d fields, header has %d", lineno, len(fields), len(t.Header))
		}

		t.Rows = append(t.Rows, fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if t.Header == nil {
		return nil, newError(FileFormat, path, "no header line")
	}

	return t, nil
}

// ReadTable opens path and parses it with ParseTable.
func ReadTable(path, delims string) (*Table, error) {
	r, err := OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ParseTable(r, path, delims)
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, newError(FileFormat, t.Path, "missing column %q", name)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, err := t.Column(name)
	return err == nil
}

// LastColumn is the index of the rightmost column.
func (t *Table) LastColumn() int {
	return len(t.Header) - 1
}

// Float parses cell col of data row i. NaN and infinities are rejected.
func (t *Table) Float(i, col int) (float64, error) {
	cell := strings.TrimSpace(t.Rows[i][col])

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newError(Numeric, t.Path, "column %s row %d: %q is not a number", t.Header[col], i+1, cell)
	}
	return v, nil
}

// Int parses cell col of data row i as an integer. Integral floats such
// as "12.0" are accepted the way pandas astype(int) would.
func (t *Table) Int(i, col int) (int64, error) {
	cell := strings.TrimSpace(t.Rows[i][col])

	if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, newError(Numeric, t.Path, "column %s row %d: %q is not an integer", t.Header[col], i+1, cell)
	}
	return int64(f), nil
}
