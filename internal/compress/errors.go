package compress

import (
	"errors"
	"fmt"
)

// ErrorKind classifies compression failures
type ErrorKind int

const (
	// KindValidation is returned synchronously, before any work starts
	KindValidation ErrorKind = iota + 1

	// KindDecode means the input bytes are not a decodable image
	KindDecode

	// KindResource means no raster surface could be allocated
	KindResource

	// KindEncoding means the raster could not be encoded to WebP
	KindEncoding
)

// String returns the kind name used in logs
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDecode:
		return "decode"
	case KindResource:
		return "resource"
	case KindEncoding:
		return "encoding"
	default:
		return "unknown"
	}
}

var (
	ErrUnsupportedFormat  = errors.New("image format not supported")
	ErrInvalidQuality     = errors.New("quality must be in (0, 1]")
	ErrDecodeFailed       = errors.New("failed to decode image")
	ErrSurfaceUnavailable = errors.New("failed to get raster surface")
	ErrEncodeFailed       = errors.New("failed to compress image")
)

// Error describes a failed compression of a single input
type Error struct {
	Kind ErrorKind
	Name string // input name
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("compress: %v", e.Err)
	}
	return fmt.Sprintf("compress %s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was raised before any work started
func IsValidationError(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindValidation
}

func newError(kind ErrorKind, name string, sentinel, cause error) *Error {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %v", sentinel, cause)
	}
	return &Error{Kind: kind, Name: name, Err: err}
}
