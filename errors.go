package gwaskit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why an input was rejected.
type Kind int

const (
	KindUnknown Kind = iota
	FileNotFound
	FileFormat
	Numeric
	ShapeMismatch
	Validation
)

func (k Kind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case FileFormat:
		return "file format"
	case Numeric:
		return "numeric"
	case ShapeMismatch:
		return "shape mismatch"
	case Validation:
		return "validation"
	}
	return "unknown"
}

// Error is returned by every loader and check in this package.
type Error struct {
	Kind Kind
	Path string // input file, empty when not tied to one
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func newError(kind Kind, path, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...)})
}

// KindOf reports the kind of err, looking through pkg/errors wrapping.
func KindOf(err error) Kind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// NotFound reports path as missing. format takes the path as its only
// argument.
func NotFound(path, format string) error {
	return newError(FileNotFound, "", format, path)
}
