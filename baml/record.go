package baml

import (
	"strconv"
	"strings"
)

// RecordType is the kind byte that prefixes every record in a BAML stream.
type RecordType uint8

const (
	Unknown                      RecordType = 0x00
	DocumentStart                RecordType = 0x01
	DocumentEnd                  RecordType = 0x02
	ElementStart                 RecordType = 0x03
	ElementEnd                   RecordType = 0x04
	Property                     RecordType = 0x05
	PropertyCustom               RecordType = 0x06
	PropertyComplexStart         RecordType = 0x07
	PropertyComplexEnd           RecordType = 0x08
	PropertyArrayStart           RecordType = 0x09
	PropertyArrayEnd             RecordType = 0x0a
	PropertyListStart            RecordType = 0x0b
	PropertyListEnd              RecordType = 0x0c
	PropertyDictionaryStart      RecordType = 0x0d
	PropertyDictionaryEnd        RecordType = 0x0e
	LiteralContent               RecordType = 0x0f
	Text                         RecordType = 0x10
	TextWithConverter            RecordType = 0x11
	RoutedEvent                  RecordType = 0x12
	ClrEvent                     RecordType = 0x13
	XmlnsProperty                RecordType = 0x14
	XmlAttribute                 RecordType = 0x15
	ProcessingInstruction        RecordType = 0x16
	Comment                      RecordType = 0x17
	DefTag                       RecordType = 0x18
	DefAttribute                 RecordType = 0x19
	EndAttributes                RecordType = 0x1a
	PIMapping                    RecordType = 0x1b
	AssemblyInfo                 RecordType = 0x1c
	TypeInfo                     RecordType = 0x1d
	TypeSerializerInfo           RecordType = 0x1e
	AttributeInfo                RecordType = 0x1f
	StringInfo                   RecordType = 0x20
	PropertyStringReference      RecordType = 0x21
	PropertyTypeReference        RecordType = 0x22
	PropertyWithExtension        RecordType = 0x23
	PropertyWithConverter        RecordType = 0x24
	DeferableContentStart        RecordType = 0x25
	DefAttributeKeyString        RecordType = 0x26
	DefAttributeKeyType          RecordType = 0x27
	KeyElementStart              RecordType = 0x28
	KeyElementEnd                RecordType = 0x29
	ConstructorParametersStart   RecordType = 0x2a
	ConstructorParametersEnd     RecordType = 0x2b
	ConstructorParameterType     RecordType = 0x2c
	ConnectionID                 RecordType = 0x2d
	ContentProperty              RecordType = 0x2e
	NamedElementStart            RecordType = 0x2f
	StaticResourceStart          RecordType = 0x30
	StaticResourceEnd            RecordType = 0x31
	StaticResourceID             RecordType = 0x32
	TextWithID                   RecordType = 0x33
	PresentationOptionsAttribute RecordType = 0x34
	LineNumberAndPosition        RecordType = 0x35
	LinePosition                 RecordType = 0x36
	OptimizedStaticResource      RecordType = 0x37
	PropertyWithStaticResourceID RecordType = 0x38
	LastRecordType               RecordType = 0x39
)

var recordTypeNames = map[RecordType]string{
	Unknown:                      "Unknown",
	DocumentStart:                "DocumentStart",
	DocumentEnd:                  "DocumentEnd",
	ElementStart:                 "ElementStart",
	ElementEnd:                   "ElementEnd",
	Property:                     "Property",
	PropertyCustom:               "PropertyCustom",
	PropertyComplexStart:         "PropertyComplexStart",
	PropertyComplexEnd:           "PropertyComplexEnd",
	PropertyArrayStart:           "PropertyArrayStart",
	PropertyArrayEnd:             "PropertyArrayEnd",
	PropertyListStart:            "PropertyListStart",
	PropertyListEnd:              "PropertyListEnd",
	PropertyDictionaryStart:      "PropertyDictionaryStart",
	PropertyDictionaryEnd:        "PropertyDictionaryEnd",
	LiteralContent:               "LiteralContent",
	Text:                         "Text",
	TextWithConverter:            "TextWithConverter",
	RoutedEvent:                  "RoutedEvent",
	ClrEvent:                     "ClrEvent",
	XmlnsProperty:                "XmlnsProperty",
	XmlAttribute:                 "XmlAttribute",
	ProcessingInstruction:        "ProcessingInstruction",
	Comment:                      "Comment",
	DefTag:                       "DefTag",
	DefAttribute:                 "DefAttribute",
	EndAttributes:                "EndAttributes",
	PIMapping:                    "PIMapping",
	AssemblyInfo:                 "AssemblyInfo",
	TypeInfo:                     "TypeInfo",
	TypeSerializerInfo:           "TypeSerializerInfo",
	AttributeInfo:                "AttributeInfo",
	StringInfo:                   "StringInfo",
	PropertyStringReference:      "PropertyStringReference",
	PropertyTypeReference:        "PropertyTypeReference",
	PropertyWithExtension:        "PropertyWithExtension",
	PropertyWithConverter:        "PropertyWithConverter",
	DeferableContentStart:        "DeferableContentStart",
	DefAttributeKeyString:        "DefAttributeKeyString",
	DefAttributeKeyType:          "DefAttributeKeyType",
	KeyElementStart:              "KeyElementStart",
	KeyElementEnd:                "KeyElementEnd",
	ConstructorParametersStart:   "ConstructorParametersStart",
	ConstructorParametersEnd:     "ConstructorParametersEnd",
	ConstructorParameterType:     "ConstructorParameterType",
	ConnectionID:                 "ConnectionId",
	ContentProperty:              "ContentProperty",
	NamedElementStart:            "NamedElementStart",
	StaticResourceStart:          "StaticResourceStart",
	StaticResourceEnd:            "StaticResourceEnd",
	StaticResourceID:             "StaticResourceId",
	TextWithID:                   "TextWithId",
	PresentationOptionsAttribute: "PresentationOptionsAttribute",
	LineNumberAndPosition:        "LineNumberAndPosition",
	LinePosition:                 "LinePosition",
	OptimizedStaticResource:      "OptimizedStaticResource",
	PropertyWithStaticResourceID: "PropertyWithStaticResourceId",
	LastRecordType:               "LastRecordType",
}

var recordTypesByName = func() map[string]RecordType {
	m := make(map[string]RecordType, len(recordTypeNames))
	for t, name := range recordTypeNames {
		m[strings.ToLower(name)] = t
	}
	return m
}()

func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return "RecordType(0x" + strconv.FormatUint(uint64(t), 16) + ")"
}

// ParseRecordType resolves a record type from its name. Matching ignores
// case, dashes and underscores, so "ElementStart", "element-start" and
// "ELEMENT_START" are equivalent. Numeric values ("3", "0x03") and the
// RecordType(0x40) form String uses for unnamed types are accepted as well.
func ParseRecordType(s string) (RecordType, bool) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	if t, ok := recordTypesByName[key]; ok {
		return t, true
	}
	if inner, ok := strings.CutPrefix(s, "RecordType("); ok {
		s, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return Unknown, false
		}
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		return RecordType(n), true
	}
	return Unknown, false
}

// Field is a named payload value carried by a record.
type Field struct {
	Name  string
	Value string
}

// Record is one decoded entry of a BAML stream. Only Type takes part in tree
// recovery; Position and Fields are carried through untouched.
type Record struct {
	Type     RecordType
	Position int64
	Fields   []Field
}

// Field returns the value of the first field with the given name.
func (r Record) Field(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func (r Record) String() string {
	if len(r.Fields) == 0 {
		return r.Type.String()
	}
	var sb strings.Builder
	sb.WriteString(r.Type.String())
	sb.WriteByte('(')
	for i, f := range r.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(f.Value))
	}
	sb.WriteByte(')')
	return sb.String()
}
