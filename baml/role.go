package baml

// Role is the structural part a record type plays in a stream.
type Role int

const (
	// Neutral records carry data and attach to the innermost open element.
	Neutral Role = iota
	// Header records open a new element.
	Header
	// Footer records close the innermost compatible open element.
	Footer
)

func (r Role) String() string {
	switch r {
	case Header:
		return "header"
	case Footer:
		return "footer"
	default:
		return "neutral"
	}
}

// footerFor maps every header type to the footer that closes it. Named
// elements share the plain element terminator.
var footerFor = map[RecordType]RecordType{
	ConstructorParametersStart: ConstructorParametersEnd,
	DocumentStart:              DocumentEnd,
	KeyElementStart:            KeyElementEnd,
	PropertyArrayStart:         PropertyArrayEnd,
	PropertyComplexStart:       PropertyComplexEnd,
	PropertyDictionaryStart:    PropertyDictionaryEnd,
	PropertyListStart:          PropertyListEnd,
	StaticResourceStart:        StaticResourceEnd,
	ElementStart:               ElementEnd,
	NamedElementStart:          ElementEnd,
}

var footers = func() map[RecordType]bool {
	m := make(map[RecordType]bool, len(footerFor))
	for _, f := range footerFor {
		m[f] = true
	}
	return m
}()

// Role classifies t. Every value of RecordType, including ones outside the
// known enumeration, has exactly one role.
func (t RecordType) Role() Role {
	if _, ok := footerFor[t]; ok {
		return Header
	}
	if footers[t] {
		return Footer
	}
	return Neutral
}

// IsHeader reports whether t opens an element.
func (t RecordType) IsHeader() bool { return t.Role() == Header }

// IsFooter reports whether t closes an element.
func (t RecordType) IsFooter() bool { return t.Role() == Footer }

// ExpectedFooter returns the footer type that closes an element opened by
// header. It reports false when header is not a header type.
func ExpectedFooter(header RecordType) (RecordType, bool) {
	f, ok := footerFor[header]
	return f, ok
}

// Matches reports whether footer closes an element opened by header.
func Matches(header, footer RecordType) bool {
	f, ok := footerFor[header]
	return ok && f == footer
}
