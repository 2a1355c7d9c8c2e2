package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/bamlkit/baml"
)

const maxLineSize = 1 << 20

// ReadLines decodes the line format: one record per line, the record type
// first, then whitespace-separated name=value fields. Values containing
// whitespace are written as Go quoted strings. A token of the form @N sets
// the record position, which otherwise defaults to the record index; any
// int64 is accepted, as in ReadJSON. Blank
// lines and lines starting with # are skipped.
//
//	DocumentStart
//	ElementStart  type=Button  @12
//	Property      attr=Content  value="Click me"
//	ElementEnd
//	DocumentEnd
func ReadLines(r io.Reader) ([]baml.Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []baml.Record
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := parseLine(line, int64(len(records)))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

func parseLine(line string, index int64) (baml.Record, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return baml.Record{}, err
	}

	typ, ok := baml.ParseRecordType(tokens[0])
	if !ok {
		return baml.Record{}, fmt.Errorf("unknown record type %q", tokens[0])
	}
	rec := baml.Record{Type: typ, Position: index}

	for _, tok := range tokens[1:] {
		if strings.HasPrefix(tok, "@") {
			pos, err := strconv.ParseInt(tok[1:], 0, 64)
			if err != nil {
				return baml.Record{}, fmt.Errorf("invalid position %q", tok)
			}
			rec.Position = pos
			continue
		}

		name, value, found := strings.Cut(tok, "=")
		if !found || name == "" {
			return baml.Record{}, fmt.Errorf("field %q is not name=value", tok)
		}
		if strings.HasPrefix(value, `"`) {
			unquoted, err := strconv.Unquote(value)
			if err != nil {
				return baml.Record{}, fmt.Errorf("field %s: %w", name, err)
			}
			value = unquoted
		}
		rec.Fields = append(rec.Fields, baml.Field{Name: name, Value: value})
	}
	return rec, nil
}

// tokenize splits a line on whitespace, keeping quoted field values intact.
func tokenize(line string) ([]string, error) {
	var tokens []string
	for {
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			return tokens, nil
		}

		end := strings.IndexAny(line, " \t\"")
		if end < 0 {
			return append(tokens, line), nil
		}
		if line[end] != '"' {
			tokens = append(tokens, line[:end])
			line = line[end:]
			continue
		}

		quoted, err := strconv.QuotedPrefix(line[end:])
		if err != nil {
			return nil, fmt.Errorf("unterminated quoted value in %q", line)
		}
		n := end + len(quoted)
		if n < len(line) && line[n] != ' ' && line[n] != '\t' {
			return nil, fmt.Errorf("unexpected text after quoted value in %q", line)
		}
		tokens = append(tokens, line[:n])
		line = line[n:]
	}
}

// WriteLines encodes records in the line format read by ReadLines. Field
// values are always quoted and the position is always written.
func WriteLines(w io.Writer, records []baml.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		bw.WriteString(rec.Type.String())
		for _, f := range rec.Fields {
			fmt.Fprintf(bw, "\t%s=%s", f.Name, strconv.Quote(f.Value))
		}
		fmt.Fprintf(bw, "\t@%d\n", rec.Position)
	}
	return bw.Flush()
}
