package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/bamlkit/baml"
)

// LineEncoder prints one element per line, indented by depth, with its body
// records listed underneath:
//
//	#0 DocumentStart → DocumentEnd
//	  · XmlnsProperty(prefix="x")
//	  #1 ElementStart(type="Button") → (omitted)
//	    · Property(attr="Content", value="OK")
type LineEncoder struct {
	w    io.Writer
	root baml.Element
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(root baml.Element) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	base := 0
	if !e.root.IsZero() {
		base = e.root.Depth()
	}

	baml.Walk(e.root, func(el baml.Element) bool {
		indent := strings.Repeat("  ", el.Depth()-base)
		fmt.Fprintf(&sb, "%s#%d %s → %s%s\n", indent, el.Index(), el.Header(), footerStr(el), annotationStr(el))
		for _, rec := range el.Body() {
			fmt.Fprintf(&sb, "%s  · %s\n", indent, rec)
		}
		return true
	})

	return []byte(sb.String()), nil
}

func footerStr(el baml.Element) string {
	if footer, ok := el.Footer(); ok {
		return footer.String()
	}
	return "(omitted)"
}

func annotationStr(el baml.Element) string {
	var parts []string
	if def := el.Type(); def != nil {
		parts = append(parts, "type="+def.FullName())
	}
	if def := el.Attribute(); def != nil {
		parts = append(parts, "attribute="+def.FullName())
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, " ") + "]"
}
