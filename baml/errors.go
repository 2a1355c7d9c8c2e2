package baml

import (
	"fmt"
)

// Code identifies the class of a structural failure. Codes are errors
// themselves so callers can match them with errors.Is.
type Code string

const (
	// ErrEmptyStream indicates Build was called with no records.
	ErrEmptyStream Code = "empty-stream"
	// ErrMissingDocumentStart indicates the first header is not DocumentStart.
	ErrMissingDocumentStart Code = "missing-document-start"
	// ErrUnexpectedFooter indicates a footer arrived with no element open.
	ErrUnexpectedFooter Code = "unexpected-footer"
	// ErrUnmatchedFooter indicates no open element can be closed by a footer.
	ErrUnmatchedFooter Code = "unmatched-footer"
	// ErrRecordBeforeHeader indicates a body record arrived with no element open.
	ErrRecordBeforeHeader Code = "record-before-header"
	// ErrUnterminatedDocument indicates the input ended with elements still open.
	ErrUnterminatedDocument Code = "unterminated-document"
	// ErrDepthExceeded indicates nesting went past the configured maximum.
	ErrDepthExceeded Code = "depth-exceeded"
	// ErrTrailingRecord indicates a record followed the document footer.
	ErrTrailingRecord Code = "trailing-record"
)

func (c Code) Error() string { return string(c) }

// StructuralError reports why a record stream could not be turned into a
// tree. Index is the position of the offending record in the input, or the
// input length when the failure is detected at end of stream.
type StructuralError struct {
	Code   Code
	Index  int
	Record Record
	// Depth is the ancestor stack depth when the error was detected.
	Depth int
}

func (e *StructuralError) Error() string {
	switch e.Code {
	case ErrEmptyStream:
		return "baml: empty record stream"
	case ErrMissingDocumentStart:
		return fmt.Sprintf("baml: record %d: stream opens with %s, expected %s", e.Index, e.Record.Type, DocumentStart)
	case ErrUnexpectedFooter:
		return fmt.Sprintf("baml: record %d: unexpected footer %s: no element is open", e.Index, e.Record.Type)
	case ErrUnmatchedFooter:
		return fmt.Sprintf("baml: record %d: unmatched footer %s: no open element accepts it", e.Index, e.Record.Type)
	case ErrRecordBeforeHeader:
		return fmt.Sprintf("baml: record %d: %s before any header", e.Index, e.Record.Type)
	case ErrUnterminatedDocument:
		return fmt.Sprintf("baml: unterminated document: input ended inside %s at depth %d", e.Record.Type, e.Depth)
	case ErrDepthExceeded:
		return fmt.Sprintf("baml: record %d: %s reaches nesting depth %d", e.Index, e.Record.Type, e.Depth)
	case ErrTrailingRecord:
		return fmt.Sprintf("baml: record %d: %s after end of document", e.Index, e.Record.Type)
	}
	return fmt.Sprintf("baml: record %d: %s", e.Index, e.Code)
}

func (e *StructuralError) Unwrap() error { return e.Code }
