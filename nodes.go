package pasteparser

import (
	"strconv"
	"strings"
)

// Node is a node in a parsed value. A node is either a scalar leaf, which has
// text and no children, or a composite, which has no text and owns an ordered
// list of children. Nodes are created by a Builder and are never shared
// between parents.
type Node struct {
	kind  Kind
	angle AngleUnit

	// text is the literal as typed, including any leading minus sign. It is
	// non-empty exactly when the node is a scalar.
	text string

	children []*Node
}

// Kind is the kind of value a node holds.
type Kind int8

const (
	KindUnknown Kind = iota

	KindDouble  // text is a decimal number, possibly with an exponent
	KindInteger // text is a whole number

	KindComplexCartesian // children are [real, imag]
	KindComplexPolar     // children are [abs, arg]; angle unit applies to arg
	KindFraction         // children are [whole, numerator, denominator]
	KindMatrix           // children are rows
	KindMatrixRow        // children are elements
)

var kindNames = [...]string{
	KindUnknown:          "Unknown",
	KindDouble:           "Double",
	KindInteger:          "Integer",
	KindComplexCartesian: "ComplexCartesian",
	KindComplexPolar:     "ComplexPolar",
	KindFraction:         "Fraction",
	KindMatrix:           "Matrix",
	KindMatrixRow:        "MatrixRow",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name as produced by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, s := range kindNames {
		if s == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return &NameError{What: "kind", Name: string(b)}
}

// AngleUnit is the unit of the argument of a polar complex value.
type AngleUnit int8

const (
	AngleUnknown AngleUnit = iota
	Degrees
	Radians
)

var angleNames = [...]string{
	AngleUnknown: "Unknown",
	Degrees:      "Degrees",
	Radians:      "Radians",
}

func (u AngleUnit) String() string {
	if u < 0 || int(u) >= len(angleNames) {
		return "AngleUnit(" + strconv.Itoa(int(u)) + ")"
	}
	return angleNames[u]
}

// MarshalText encodes the unit by name.
func (u AngleUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes a unit name as produced by MarshalText.
func (u *AngleUnit) UnmarshalText(b []byte) error {
	for i, s := range angleNames {
		if s == string(b) {
			*u = AngleUnit(i)
			return nil
		}
	}
	return &NameError{What: "angle unit", Name: string(b)}
}

// suffix is the marker written after a polar argument in this unit.
func (u AngleUnit) suffix() string {
	switch u {
	case Degrees:
		return "°"
	case Radians:
		return " rad"
	default:
		return ""
	}
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// AngleUnit returns the unit of a polar node's argument. It is meaningless
// for any other kind.
func (n *Node) AngleUnit() AngleUnit {
	return n.angle
}

// Text returns a scalar node's literal text. The second result is false for
// composites.
func (n *Node) Text() (string, bool) {
	return n.text, n.text != ""
}

// IsScalar reports whether n is a leaf holding text.
func (n *Node) IsScalar() bool {
	return n.text != ""
}

// NumChildren returns the number of children a composite owns.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i'th child of a composite. The child remains owned by n.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a compact form of the tree: scalars as their text, composites
// as Kind(child, child, ...), with the angle unit after a polar argument.
func (n *Node) fmt(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.text != "" {
		b.WriteString(n.text)
		return
	}
	b.WriteString(n.kind.String())
	b.WriteByte('(')
	for i, c := range n.children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.fmt(b)
	}
	if n.kind == KindComplexPolar {
		b.WriteString(n.angle.suffix())
	}
	b.WriteByte(')')
}
