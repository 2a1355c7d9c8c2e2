package stream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dhamidi/bamlkit/baml"
)

type jsonRecord struct {
	Type     jsonType    `json:"type"`
	Position *int64      `json:"position,omitempty"`
	Fields   []jsonField `json:"fields,omitempty"`
}

type jsonField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// jsonType accepts either a record type name or its numeric value.
type jsonType baml.RecordType

func (t jsonType) MarshalJSON() ([]byte, error) {
	return json.Marshal(baml.RecordType(t).String())
}

func (t *jsonType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		typ, ok := baml.ParseRecordType(name)
		if !ok {
			return fmt.Errorf("unknown record type %q", name)
		}
		*t = jsonType(typ)
		return nil
	}
	n, err := strconv.ParseUint(string(data), 10, 8)
	if err != nil {
		return fmt.Errorf("invalid record type %s", data)
	}
	*t = jsonType(n)
	return nil
}

// ReadJSON decodes a JSON array of records. Records without an explicit
// position get their index in the array.
func ReadJSON(r io.Reader) ([]baml.Record, error) {
	var raw []jsonRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]baml.Record, len(raw))
	for i, jr := range raw {
		rec := baml.Record{
			Type:     baml.RecordType(jr.Type),
			Position: int64(i),
		}
		if jr.Position != nil {
			rec.Position = *jr.Position
		}
		for _, f := range jr.Fields {
			rec.Fields = append(rec.Fields, baml.Field{Name: f.Name, Value: f.Value})
		}
		records[i] = rec
	}
	return records, nil
}

// WriteJSON encodes records as an indented JSON array.
func WriteJSON(w io.Writer, records []baml.Record) error {
	raw := make([]jsonRecord, len(records))
	for i, rec := range records {
		pos := rec.Position
		raw[i] = jsonRecord{Type: jsonType(rec.Type), Position: &pos}
		for _, f := range rec.Fields {
			raw[i].Fields = append(raw[i].Fields, jsonField{Name: f.Name, Value: f.Value})
		}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
