package pasteparser

import "strings"

// Expression is the host view of a parsed value: a copy of a node tree that
// does not share storage with it. Text is set only for scalars, and AngleUnit
// is meaningful only for ComplexPolar values.
type Expression struct {
	Kind      Kind          `json:"kind"`
	Text      string        `json:"text,omitempty"`
	AngleUnit AngleUnit     `json:"angleUnit,omitempty"`
	Children  []*Expression `json:"children,omitempty"`
}

// Host copies the tree rooted at n into an Expression. n is not modified and
// remains owned by its owner. Host(nil) is nil.
func Host(n *Node) *Expression {
	if n == nil {
		return nil
	}
	e := &Expression{
		Kind:      n.kind,
		Text:      n.text,
		AngleUnit: n.angle,
	}
	if len(n.children) > 0 {
		e.Children = make([]*Expression, len(n.children))
		for i, c := range n.children {
			e.Children[i] = Host(c)
		}
	}
	return e
}

// IsScalar reports whether e is a leaf holding text.
func (e *Expression) IsScalar() bool {
	return e.Text != ""
}

// String formats e the same way as the node it was copied from.
func (e *Expression) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expression) fmt(b *strings.Builder) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	if e.Text != "" {
		b.WriteString(e.Text)
		return
	}
	b.WriteString(e.Kind.String())
	b.WriteByte('(')
	for i, c := range e.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.fmt(b)
	}
	if e.Kind == KindComplexPolar {
		b.WriteString(e.AngleUnit.suffix())
	}
	b.WriteByte(')')
}
