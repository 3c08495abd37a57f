package gwaskit

import (
	"bufio"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kshedden/gonpy"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// KinshipMatrix is a sample by sample relatedness matrix as read from
// disk, before any shape or numeric check.
type KinshipMatrix struct {
	Path string
	Rows int
	Cols int // length of the widest row

	ragged bool
	cells  [][]string // plain text input
	values []float64  // row major .npy input
}

// ReadKinship reads a headerless whitespace delimited text matrix (GEMMA
// -gk output) or a 2 dimensional .npy matrix (PCangsd -kinship output).
func ReadKinship(fn string) (*KinshipMatrix, error) {
	if strings.EqualFold(filepath.Ext(fn), ".npy") {
		return readNumpyKinship(fn)
	}

	inFile, err := OpenInput(fn)
	if err != nil {
		return nil, err
	}
	defer inFile.Close()

	scanner := bufio.NewScanner(inFile)

	// we may have large matrices
	scanner.Buffer(make([]byte, 1024*1024), 256*1024*1024)

	k := &KinshipMatrix{Path: fn}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		if k.Rows > 0 && len(fields) != k.Cols {
			k.ragged = true
		}
		if len(fields) > k.Cols {
			k.Cols = len(fields)
		}

		k.cells = append(k.cells, fields)
		k.Rows++
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading kinship matrix %s", fn)
	}

	return k, nil
}

func readNumpyKinship(fn string) (*KinshipMatrix, error) {
	if !Exists(fn) {
		return nil, newError(FileNotFound, fn, "file does not exist")
	}

	r, err := gonpy.NewFileReader(fn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", fn)
	}

	if len(r.Shape) != 2 {
		return nil, newError(ShapeMismatch, fn, "kinship matrix has %d dimensions, want 2", len(r.Shape))
	}

	var data []float64

	switch r.Dtype {
	case "f4":
		f32, err := r.GetFloat32()
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", fn)
		}
		data = make([]float64, len(f32))
		for i, v := range f32 {
			data[i] = float64(v)
		}
	case "f8":
		data, err = r.GetFloat64()
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", fn)
		}
	default:
		return nil, newError(Numeric, fn, "dtype %s is not a float matrix", r.Dtype)
	}

	rows, cols := r.Shape[0], r.Shape[1]

	// gonpy hands back the flat buffer in file order
	if r.ColumnMajor {
		rm := make([]float64, len(data))
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				rm[i*cols+j] = data[j*rows+i]
			}
		}
		data = rm
	}

	return &KinshipMatrix{Path: fn, Rows: rows, Cols: cols, values: data}, nil
}

// CheckKinshipShape requires an n by n matrix, n being the sample count
// of samplesFn.
func CheckKinshipShape(k *KinshipMatrix, samplesFn string, n int) error {
	if k.Rows == n && k.Cols == n && !k.ragged {
		return nil
	}

	return newError(ShapeMismatch, "",
		"The number of rows and columns in the kinship matrix file %s does not match the number of samples in the samples file %s\n"+
			"Number of samples in the samples file: %d\n"+
			"Number of rows and columns in the kinship matrix: %d, %d",
		k.Path, samplesFn, n, k.Rows, k.Cols)
}

// CheckKinshipNumeric parses every entry. The matrix must have passed
// CheckKinshipShape.
func CheckKinshipNumeric(k *KinshipMatrix) (*mat.Dense, error) {
	if k.Rows == 0 || k.Cols == 0 {
		return nil, nil
	}

	if k.values != nil {
		for _, v := range k.values {
			if math.IsNaN(v) {
				return nil, notNumericKinship(k)
			}
		}
		return mat.NewDense(k.Rows, k.Cols, k.values), nil
	}

	data := make([]float64, 0, k.Rows*k.Cols)

	for _, row := range k.cells {
		for _, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) {
				return nil, notNumericKinship(k)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(k.Rows, k.Cols, data), nil
}

func notNumericKinship(k *KinshipMatrix) error {
	return newError(Numeric, "", "The entries in the kinship matrix file %s are not numeric", k.Path)
}
