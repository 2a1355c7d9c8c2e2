package baml

import "slices"

// Definition is a resolved metadata symbol attached to an element by the
// renamer, such as the type an element instantiates or the member a
// property element assigns.
type Definition interface {
	FullName() string
}

type node struct {
	header    Record
	footer    Record
	hasFooter bool
	body      []Record
	children  []int
	parent    int
	depth     int

	typ  Definition
	attr Definition
}

// Tree owns every element recovered from one record stream. Elements refer
// to each other by index into the tree, so parent links never own anything.
type Tree struct {
	nodes []node
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the document element. It is the zero Element for an empty tree.
func (t *Tree) Root() Element {
	if t == nil || len(t.nodes) == 0 {
		return Element{}
	}
	return Element{tree: t, index: 0}
}

// Element returns the element with the given index. Indices follow the order
// in which header records appeared in the stream.
func (t *Tree) Element(i int) (Element, bool) {
	if t == nil || i < 0 || i >= len(t.nodes) {
		return Element{}, false
	}
	return Element{tree: t, index: i}, true
}

// Element is a read-only view of one Header…Footer span. The zero value is
// not a valid element; see IsZero.
//
// Structural accessors are safe for concurrent use. The annotation setters
// are not and must be serialized by the caller.
type Element struct {
	tree  *Tree
	index int
}

// IsZero reports whether e is the zero Element, which belongs to no tree.
func (e Element) IsZero() bool { return e.tree == nil }

func (e Element) Tree() *Tree { return e.tree }

// Index is the element's position in its tree, in header order.
func (e Element) Index() int { return e.index }

func (e Element) node() *node { return &e.tree.nodes[e.index] }

// Header returns the record that opened the element.
func (e Element) Header() Record { return e.node().header }

// Footer returns the record that closed the element. It reports false when
// the stream omitted the terminator.
func (e Element) Footer() (Record, bool) {
	n := e.node()
	return n.footer, n.hasFooter
}

// Closed reports whether the element received its footer.
func (e Element) Closed() bool { return e.node().hasFooter }

// Body returns the neutral records that belong directly to the element, in
// stream order. The slice is a copy; record fields are shared with the input.
func (e Element) Body() []Record { return slices.Clone(e.node().body) }

// Children returns the nested elements in header order.
func (e Element) Children() []Element {
	n := e.node()
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = Element{tree: e.tree, index: c}
	}
	return out
}

func (e Element) NumChildren() int { return len(e.node().children) }

// Child returns the i-th nested element. It panics if i is out of range.
func (e Element) Child(i int) Element {
	return Element{tree: e.tree, index: e.node().children[i]}
}

// Parent returns the enclosing element. It reports false for the root.
func (e Element) Parent() (Element, bool) {
	p := e.node().parent
	if p < 0 {
		return Element{}, false
	}
	return Element{tree: e.tree, index: p}, true
}

// Depth is the number of ancestors; the root has depth 0.
func (e Element) Depth() int { return e.node().depth }

// Type and Attribute hold definitions a later renaming pass resolved for the
// element. Both are nil until set; every handle of the tree sees the update.
func (e Element) Type() Definition { return e.node().typ }

func (e Element) SetType(def Definition) { e.node().typ = def }

func (e Element) Attribute() Definition { return e.node().attr }

func (e Element) SetAttribute(def Definition) { e.node().attr = def }

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the children of the element just visited.
func Walk(e Element, fn func(Element) bool) {
	if e.IsZero() {
		return
	}
	stack := []int{e.index}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(Element{tree: e.tree, index: i}) {
			continue
		}
		children := e.tree.nodes[i].children
		for j := len(children) - 1; j >= 0; j-- {
			stack = append(stack, children[j])
		}
	}
}
