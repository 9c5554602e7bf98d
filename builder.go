package pasteparser

import "strings"

// Builder constructs and destroys nodes. Every constructor takes ownership of
// the nodes passed to it, whether or not it succeeds. On failure the result
// is nil and a non-nil error; any children received have been freed.
//
// A nil child is treated as a failure propagated from an earlier
// constructor, so results can be passed along before checking errors:
//
//	re, err1 := b.Zero()
//	im, err2 := b.One(-1)
//	n, err := b.ComplexCartesian(re, im)
//
// never leaks re or im, whichever of the three calls fails.
//
// A Builder is not safe for concurrent use unless its Allocator is.
type Builder struct {
	alloc  Allocator
	legacy bool
}

// NewBuilder creates a builder. Options that do not apply to building are
// ignored.
func NewBuilder(opts ...Option) *Builder {
	s := settings{}
	for _, opt := range opts {
		if opt != nil {
			s = opt.option(s)
		}
	}
	return s.builder()
}

// Zero creates the Integer leaf "0".
func (b *Builder) Zero() (*Node, error) {
	return b.Scalar("0", KindInteger)
}

// One creates the Integer leaf "1", or "-1" if sign is negative.
func (b *Builder) One(sign int) (*Node, error) {
	if sign < 0 {
		return b.Scalar("-1", KindInteger)
	}
	return b.Scalar("1", KindInteger)
}

// Integer creates an Integer leaf holding text.
func (b *Builder) Integer(text string) (*Node, error) {
	return b.Scalar(text, KindInteger)
}

// Double creates a Double leaf holding text.
func (b *Builder) Double(text string) (*Node, error) {
	return b.Scalar(text, KindDouble)
}

// Scalar creates a leaf of the given kind holding text. Empty text fails with
// ErrInvalidInput before anything is allocated.
//
// With the LegacyScalarKind option, the kind argument is ignored and every
// leaf is a Double.
func (b *Builder) Scalar(text string, kind Kind) (*Node, error) {
	if text == "" {
		return nil, ErrInvalidInput
	}
	n, err := b.alloc.Alloc()
	if err != nil {
		return nil, allocError(err)
	}
	if b.legacy {
		kind = KindDouble
	}
	n.kind = kind
	n.text = text
	return n, nil
}

// ComplexCartesian creates a cartesian complex value from its real and
// imaginary parts.
func (b *Builder) ComplexCartesian(re, im *Node) (*Node, error) {
	return b.Multicomponent(KindComplexCartesian, re, im)
}

// ComplexPolar creates a polar complex value from its absolute value and
// argument.
func (b *Builder) ComplexPolar(abs, arg *Node, unit AngleUnit) (*Node, error) {
	n, err := b.Multicomponent(KindComplexPolar, abs, arg)
	if err != nil {
		return nil, err
	}
	n.angle = unit
	return n, nil
}

// Fraction creates a mixed fraction whole numerator/denominator. Plain
// fractions use Zero for the whole part.
func (b *Builder) Fraction(whole, numerator, denominator *Node) (*Node, error) {
	return b.Multicomponent(KindFraction, whole, numerator, denominator)
}

// Matrix creates a matrix from MatrixRow nodes.
func (b *Builder) Matrix(rows []*Node) (*Node, error) {
	return b.Multicomponent(KindMatrix, rows...)
}

// MatrixRow creates a matrix row from its elements.
func (b *Builder) MatrixRow(elems []*Node) (*Node, error) {
	return b.Multicomponent(KindMatrixRow, elems...)
}

// Multicomponent creates a composite of the given kind owning children in the
// order given. Any number of children is allowed, including none. The
// children slice is copied.
func (b *Builder) Multicomponent(kind Kind, children ...*Node) (*Node, error) {
	for _, c := range children {
		if c == nil {
			b.freeAll(children)
			return nil, ErrMissingChild
		}
	}
	n, err := b.alloc.Alloc()
	if err != nil {
		b.freeAll(children)
		return nil, allocError(err)
	}
	n.kind = kind
	if len(children) > 0 {
		n.children = append(make([]*Node, 0, len(children)), children...)
	}
	return n, nil
}

// Negate folds a unary sign into n. If sign is non-negative, or the value
// already carries a leading minus, n is returned as is. A composite has its
// first component negated in place, following the first child down to a
// leaf: -(2 1/3) negates the whole part, -(3 + 4i) the real part. A leaf is
// replaced by a new leaf whose text has a leading minus, and the old leaf is
// freed.
//
// The check for an existing minus sign is purely textual. On failure, all of
// n is freed.
func (b *Builder) Negate(sign int, n *Node) (*Node, error) {
	if n == nil {
		return nil, ErrInvalidInput
	}
	if sign >= 0 {
		return n, nil
	}
	var parent *Node
	leaf := n
	for leaf.text == "" {
		if len(leaf.children) == 0 {
			// Nothing to negate in an empty composite.
			return n, nil
		}
		parent, leaf = leaf, leaf.children[0]
	}
	if strings.HasPrefix(leaf.text, "-") {
		return n, nil
	}
	neg, err := b.alloc.Alloc()
	if err != nil {
		b.Free(n)
		return nil, allocError(err)
	}
	neg.kind = leaf.kind
	neg.text = "-" + leaf.text
	if parent == nil {
		b.Free(leaf)
		return neg, nil
	}
	parent.children[0] = neg
	b.Free(leaf)
	return n, nil
}

// Free releases n and everything it owns: each child in order, depth first,
// then n itself. Free(nil) does nothing. No reference into the tree may be
// used afterward.
func (b *Builder) Free(n *Node) {
	if n == nil {
		return
	}
	type frame struct {
		n    *Node
		next int
	}
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.n.children) {
			c := top.n.children[top.next]
			top.next++
			if c != nil {
				stack = append(stack, frame{n: c})
			}
			continue
		}
		stack = stack[:len(stack)-1]
		b.alloc.Free(top.n)
	}
}

// freeAll frees each non-nil node in nodes.
func (b *Builder) freeAll(nodes []*Node) {
	for _, c := range nodes {
		b.Free(c)
	}
}
