package baml

import "testing"

func TestRecordTypeString(t *testing.T) {
	tests := []struct {
		typ  RecordType
		want string
	}{
		{DocumentStart, "DocumentStart"},
		{ElementEnd, "ElementEnd"},
		{NamedElementStart, "NamedElementStart"},
		{ConnectionID, "ConnectionId"},
		{PropertyWithStaticResourceID, "PropertyWithStaticResourceId"},
		{RecordType(0xf0), "RecordType(0xf0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("RecordType(%d).String() = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		in   string
		want RecordType
		ok   bool
	}{
		{"ElementStart", ElementStart, true},
		{"element-start", ElementStart, true},
		{"PROPERTY_COMPLEX_END", PropertyComplexEnd, true},
		{" static-resource-start ", StaticResourceStart, true},
		{"ConnectionId", ConnectionID, true},
		{"3", ElementStart, true},
		{"0x2f", NamedElementStart, true},
		{"RecordType(0x40)", RecordType(0x40), true},
		{"RecordType(0x40", Unknown, false},
		{"0x100", Unknown, false},
		{"Bogus", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRecordType(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseRecordType(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseRecordTypeRoundTripsNames(t *testing.T) {
	for typ, name := range recordTypeNames {
		got, ok := ParseRecordType(name)
		if !ok || got != typ {
			t.Errorf("ParseRecordType(%q) = %s, %v; want %s", name, got, ok, typ)
		}
	}
}

func TestParseRecordTypeInvertsString(t *testing.T) {
	for n := 0; n <= 0xff; n++ {
		typ := RecordType(n)
		got, ok := ParseRecordType(typ.String())
		if !ok || got != typ {
			t.Errorf("ParseRecordType(%q) = %s, %v; want %s", typ.String(), got, ok, typ)
		}
	}
}

func TestRecordField(t *testing.T) {
	r := Record{Type: Property, Fields: []Field{
		{Name: "attr", Value: "Content"},
		{Name: "value", Value: "OK"},
		{Name: "value", Value: "shadowed"},
	}}

	if v, ok := r.Field("value"); !ok || v != "OK" {
		t.Errorf("Field(value) = %q, %v; want OK, true", v, ok)
	}
	if _, ok := r.Field("missing"); ok {
		t.Error("Field(missing) should report false")
	}
	if got, want := r.String(), `Property(attr="Content", value="OK", value="shadowed")`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if got := (Record{Type: DocumentEnd}).String(); got != "DocumentEnd" {
		t.Errorf("String() = %s, want DocumentEnd", got)
	}
}
