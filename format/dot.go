package format

import (
	"fmt"
	"io"

	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"

	"github.com/dhamidi/bamlkit/baml"
)

// DOTEncoder renders the element hierarchy as a Graphviz digraph with one
// edge from every element to each of its children.
type DOTEncoder struct {
	w     io.Writer
	root  baml.Element
	Title string
}

func NewDOTEncoder(w io.Writer) *DOTEncoder {
	return &DOTEncoder{w: w, Title: "baml element tree"}
}

func (e *DOTEncoder) Encode(root baml.Element) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *DOTEncoder) MarshalText() ([]byte, error) {
	return []byte(render.DOT(BuildGraph(e.root), e.Title)), nil
}

// BuildGraph converts the tree under root into a lattice graph. Node names
// carry the element index so that repeated header types stay distinct.
func BuildGraph(root baml.Element) *lattice.Graph {
	g := &lattice.Graph{}
	baml.Walk(root, func(el baml.Element) bool {
		name := nodeName(el)
		g.Nodes = append(g.Nodes, name)
		for _, child := range el.Children() {
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: name,
				Callee: nodeName(child),
			})
		}
		return true
	})
	return g
}

func nodeName(el baml.Element) string {
	label := el.Header().Type.String()
	if v, ok := el.Header().Field("type"); ok {
		label += " " + v
	}
	if !el.Closed() {
		label += " (open)"
	}
	return fmt.Sprintf("#%d %s", el.Index(), label)
}
