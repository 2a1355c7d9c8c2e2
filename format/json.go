package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/bamlkit/baml"
)

type JSONEncoder struct {
	w    io.Writer
	root baml.Element
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(root baml.Element) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.root.IsZero() {
		return []byte("null"), nil
	}
	return json.MarshalIndent(buildElement(e.root), "", "  ")
}

type jsonElement struct {
	Index     int            `json:"index"`
	Header    jsonRecord     `json:"header"`
	Footer    *jsonRecord    `json:"footer"`
	Body      []jsonRecord   `json:"body,omitempty"`
	Type      string         `json:"type,omitempty"`
	Attribute string         `json:"attribute,omitempty"`
	Children  []*jsonElement `json:"children,omitempty"`
}

type jsonRecord struct {
	Type     string      `json:"type"`
	Position int64       `json:"position"`
	Fields   []jsonField `json:"fields,omitempty"`
}

type jsonField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func buildElement(el baml.Element) *jsonElement {
	je := &jsonElement{
		Index:  el.Index(),
		Header: buildRecord(el.Header()),
	}
	if footer, ok := el.Footer(); ok {
		jr := buildRecord(footer)
		je.Footer = &jr
	}
	for _, rec := range el.Body() {
		je.Body = append(je.Body, buildRecord(rec))
	}
	if def := el.Type(); def != nil {
		je.Type = def.FullName()
	}
	if def := el.Attribute(); def != nil {
		je.Attribute = def.FullName()
	}
	for _, child := range el.Children() {
		je.Children = append(je.Children, buildElement(child))
	}
	return je
}

func buildRecord(rec baml.Record) jsonRecord {
	jr := jsonRecord{
		Type:     rec.Type.String(),
		Position: rec.Position,
	}
	for _, f := range rec.Fields {
		jr.Fields = append(jr.Fields, jsonField{Name: f.Name, Value: f.Value})
	}
	return jr
}
