package meteodata

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why the data file could not be served.
type ErrorKind int

const (
	// KindNone is returned by KindOf for nil or foreign errors.
	KindNone ErrorKind = iota
	// KindNotFound means nothing exists at the configured path.
	KindNotFound
	// KindInvalidJSON means the file was read but is not a valid JSON document.
	KindInvalidJSON
	// KindUnreadable covers every other open or read failure (permissions, directories, I/O).
	KindUnreadable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidJSON:
		return "invalid_json"
	case KindUnreadable:
		return "unreadable"
	default:
		return "none"
	}
}

// LoadError is returned by Loader implementations when the document cannot be produced.
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind carried by err, or KindNone.
func KindOf(err error) ErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindNone
}

// IsNotFound reports whether err is a missing-file load error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsInvalidJSON reports whether err is a malformed-content load error.
func IsInvalidJSON(err error) bool { return KindOf(err) == KindInvalidJSON }
