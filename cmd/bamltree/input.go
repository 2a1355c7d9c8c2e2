package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/bamlkit/baml"
	"github.com/dhamidi/bamlkit/stream"
)

// readRecords loads a record dump. "-" reads standard input in the format
// named by inputFormat; files default to the format implied by their
// extension unless inputFormat is set.
func readRecords(path, inputFormat string) ([]baml.Record, error) {
	if path != "-" && inputFormat == "" {
		return stream.ReadFile(path)
	}

	format := stream.FormatLine
	switch inputFormat {
	case "", "line":
	case "json":
		format = stream.FormatJSON
	default:
		return nil, fmt.Errorf("unknown input format: %s (expected line or json)", inputFormat)
	}

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open record dump: %w", err)
		}
		defer f.Close()
		in = f
	}
	return stream.Read(in, format)
}
