package gwaskit

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/brentp/xopen"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	return xopen.Exists(path)
}

type snappyFile struct {
	*bufio.Reader
	f *os.File
}

func (s *snappyFile) Close() error {
	return s.f.Close()
}

// OpenInput opens a (possibly gzip, bzip2 or snappy compressed) text
// file. A missing file is reported as FileNotFound before any read is
// attempted.
func OpenInput(path string) (io.ReadCloser, error) {
	if !Exists(path) {
		return nil, newError(FileNotFound, path, "file does not exist")
	}

	// muscato style .sz files are snappy framed streams
	if strings.HasSuffix(path, ".sz") {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", path)
		}
		return &snappyFile{Reader: bufio.NewReader(snappy.NewReader(f)), f: f}, nil
	}

	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return r, nil
}

// CreateOutput creates path for writing, gzip compressed when it ends
// in .gz. Close flushes.
func CreateOutput(path string) (*xopen.Writer, error) {
	w, err := xopen.Wopen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	return w, nil
}

// writeOutput creates path, hands it to write and closes it. path is
// removed again when either step fails.
func writeOutput(path string, write func(io.Writer) error) error {
	w, err := CreateOutput(path)
	if err != nil {
		return err
	}

	if err := write(w); err != nil {
		w.Close()
		os.Remove(path)
		return errors.Wrapf(err, "writing %s", path)
	}

	if err := w.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "closing %s", path)
	}

	return nil
}
