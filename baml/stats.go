package baml

import "sort"

// Stats summarizes the shape of a recovered tree.
type Stats struct {
	Elements     int
	Records      int
	MaxDepth     int
	Unterminated int
	ByType       map[RecordType]int
}

// TypeCount is one row of a record type histogram.
type TypeCount struct {
	Type  RecordType
	Count int
}

// Summarize walks the tree under root and counts its elements and records.
// Unterminated counts elements whose footer was omitted.
func Summarize(root Element) Stats {
	s := Stats{ByType: make(map[RecordType]int)}
	Walk(root, func(e Element) bool {
		n := e.node()
		s.Elements++
		s.Records += 1 + len(n.body)
		s.ByType[n.header.Type]++
		if n.hasFooter {
			s.Records++
			s.ByType[n.footer.Type]++
		} else {
			s.Unterminated++
		}
		for _, r := range n.body {
			s.ByType[r.Type]++
		}
		if n.depth > s.MaxDepth {
			s.MaxDepth = n.depth
		}
		return true
	})
	return s
}

// Histogram returns the record type counts ordered by descending count, then
// by type value.
func (s Stats) Histogram() []TypeCount {
	out := make([]TypeCount, 0, len(s.ByType))
	for t, c := range s.ByType {
		out = append(out, TypeCount{Type: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}
