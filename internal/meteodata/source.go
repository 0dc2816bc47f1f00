// Package meteodata reads the daily weather record set from disk.
//
// The document is opaque: it is checked for JSON syntax and compacted, never
// decoded into Go values, so key order and number literals survive unchanged.
package meteodata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"
)

// Loader produces the current JSON document.
type Loader interface {
	Load(ctx context.Context) ([]byte, error)
}

// FileSource loads the document from a fixed path on every call.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the configured file path.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and validates the file. Failures are returned as *LoadError.
func (s *FileSource) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: KindNotFound, Path: s.path, Err: err}
		}
		return nil, &LoadError{Kind: KindUnreadable, Path: s.path, Err: err}
	}

	doc, err := Normalize(raw)
	if err != nil {
		return nil, &LoadError{Kind: KindInvalidJSON, Path: s.path, Err: err}
	}
	return doc, nil
}

// ErrInvalidUTF8 is reported for documents that are not UTF-8 encoded.
var ErrInvalidUTF8 = errors.New("document is not valid UTF-8")

// Normalize validates raw as a single JSON document and strips insignificant whitespace.
func Normalize(raw []byte) ([]byte, error) {
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}
	var buf bytes.Buffer
	buf.Grow(len(raw))
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
