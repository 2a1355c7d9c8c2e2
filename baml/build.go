package baml

// DefaultMaxDepth bounds element nesting unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 1024

type Option func(*builder)

// WithMaxDepth limits how deep elements may nest. Zero or a negative value
// removes the limit.
func WithMaxDepth(n int) Option {
	return func(b *builder) {
		b.maxDepth = n
	}
}

type builder struct {
	maxDepth int
	tree     *Tree
	current  int
	stack    []int
	// done is set once the document element has received its footer.
	done bool
}

// Build recovers the element tree of a record stream and returns its root.
//
// Header records open elements, neutral records attach to the innermost open
// element, and footer records close the innermost open element whose header
// they match. Compilers omit some terminators, so a footer that does not
// match the innermost element closes the nearest matching ancestor instead;
// the elements skipped over keep no footer. Once the document element is
// closed the stream must end; any further record, neutral ones included,
// fails with ErrTrailingRecord so the root footer is never replaced. Any
// other anomaly aborts the build with a *StructuralError and no tree.
func Build(records []Record, opts ...Option) (Element, error) {
	b := &builder{
		maxDepth: DefaultMaxDepth,
		tree:     &Tree{},
		current:  -1,
	}
	for _, opt := range opts {
		opt(b)
	}

	if len(records) == 0 {
		return Element{}, &StructuralError{Code: ErrEmptyStream}
	}

	for i, rec := range records {
		if err := b.add(i, rec); err != nil {
			return Element{}, err
		}
	}

	if len(b.stack) > 0 {
		return Element{}, &StructuralError{
			Code:   ErrUnterminatedDocument,
			Index:  len(records),
			Record: b.tree.nodes[b.current].header,
			Depth:  len(b.stack),
		}
	}
	return Element{tree: b.tree, index: b.current}, nil
}

func (b *builder) add(i int, rec Record) error {
	if b.done {
		return b.fail(ErrTrailingRecord, i, rec)
	}
	switch rec.Type.Role() {
	case Header:
		return b.open(i, rec)
	case Footer:
		return b.close(i, rec)
	default:
		if b.current < 0 {
			return b.fail(ErrRecordBeforeHeader, i, rec)
		}
		n := &b.tree.nodes[b.current]
		n.body = append(n.body, rec)
		return nil
	}
}

func (b *builder) open(i int, rec Record) error {
	idx := len(b.tree.nodes)
	n := node{header: rec, parent: b.current}

	if b.current < 0 {
		if rec.Type != DocumentStart {
			return b.fail(ErrMissingDocumentStart, i, rec)
		}
	} else {
		depth := len(b.stack) + 1
		if b.maxDepth > 0 && depth > b.maxDepth {
			return &StructuralError{Code: ErrDepthExceeded, Index: i, Record: rec, Depth: depth}
		}
		n.depth = depth
		parent := &b.tree.nodes[b.current]
		parent.children = append(parent.children, idx)
		b.stack = append(b.stack, b.current)
	}

	b.tree.nodes = append(b.tree.nodes, n)
	b.current = idx
	return nil
}

func (b *builder) close(i int, rec Record) error {
	if b.current < 0 {
		return b.fail(ErrUnexpectedFooter, i, rec)
	}

	// Walk up past elements whose own footer was omitted.
	for !Matches(b.tree.nodes[b.current].header.Type, rec.Type) {
		if len(b.stack) == 0 {
			return b.fail(ErrUnmatchedFooter, i, rec)
		}
		b.pop()
	}

	n := &b.tree.nodes[b.current]
	n.footer = rec
	n.hasFooter = true

	if len(b.stack) > 0 {
		b.pop()
	} else {
		b.done = true
	}
	return nil
}

func (b *builder) pop() {
	b.current = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *builder) fail(code Code, i int, rec Record) error {
	return &StructuralError{Code: code, Index: i, Record: rec, Depth: len(b.stack)}
}
