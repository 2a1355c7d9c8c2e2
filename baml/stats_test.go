package baml

import "testing"

func TestSummarize(t *testing.T) {
	records := types(
		DocumentStart,
		XmlnsProperty,
		ElementStart,
		Property,
		Property,
		PropertyComplexStart,
		ElementStart,
		ElementEnd,
		ElementEnd, // PropertyComplexEnd omitted
		DocumentEnd,
	)
	root, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	s := Summarize(root)
	if s.Elements != 4 {
		t.Errorf("Elements = %d, want 4", s.Elements)
	}
	if s.Records != len(records) {
		t.Errorf("Records = %d, want %d", s.Records, len(records))
	}
	if s.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", s.MaxDepth)
	}
	if s.Unterminated != 1 {
		t.Errorf("Unterminated = %d, want 1", s.Unterminated)
	}
	if s.ByType[ElementEnd] != 2 || s.ByType[Property] != 2 || s.ByType[PropertyComplexEnd] != 0 {
		t.Errorf("ByType = %v", s.ByType)
	}

	hist := s.Histogram()
	if len(hist) != 7 {
		t.Fatalf("Histogram() has %d rows, want 7", len(hist))
	}
	// ElementStart, ElementEnd and Property tie at 2; ties sort by value.
	wantTop := []RecordType{ElementStart, ElementEnd, Property}
	for i, typ := range wantTop {
		if hist[i].Type != typ || hist[i].Count != 2 {
			t.Errorf("Histogram()[%d] = %v, want %s×2", i, hist[i], typ)
		}
	}
}

func TestSummarizeZeroElement(t *testing.T) {
	s := Summarize(Element{})
	if s.Elements != 0 || s.Records != 0 {
		t.Errorf("Summarize(zero) = %+v", s)
	}
}
