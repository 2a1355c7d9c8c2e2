// Package stream reads and writes dumps of decoded BAML record streams.
//
// Two formats are supported: a JSON array of records and a line format with
// one record per line. Files ending in .json use the JSON format; every other
// file is read as lines.
package stream

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/bamlkit/baml"
)

// Format selects a dump encoding.
type Format int

const (
	FormatLine Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "line"
}

// FormatFor picks the dump format from a file name.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatLine
}

// Read decodes a record dump in the given format.
func Read(r io.Reader, f Format) ([]baml.Record, error) {
	if f == FormatJSON {
		return ReadJSON(r)
	}
	return ReadLines(r)
}

// Write encodes records in the given format.
func Write(w io.Writer, f Format, records []baml.Record) error {
	if f == FormatJSON {
		return WriteJSON(w, records)
	}
	return WriteLines(w, records)
}

// ReadFile reads a record dump, choosing the format from the extension.
func ReadFile(path string) ([]baml.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record dump: %w", err)
	}
	defer f.Close()

	records, err := Read(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// WriteFile writes a record dump, choosing the format from the extension.
func WriteFile(path string, records []baml.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create record dump: %w", err)
	}
	if err := Write(f, FormatFor(path), records); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
