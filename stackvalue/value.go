// Package stackvalue converts parsed pastes into the values a calculator keeps
// on its stack: real numbers, fractions, complex numbers, and matrices.
package stackvalue

import (
	"math/big"
	"strings"

	"github.com/jaittola/pasteparser"
)

// Value is a value that can be pushed onto the calculator stack.
type Value interface {
	// String formats the value the way the calculator displays it.
	String() string
	isValue()
}

// Scalar is a real value: a Number or a Rational. Scalars are the components
// of complex numbers and the elements of matrices.
type Scalar interface {
	Value
	// Float returns the value rounded to prec bits.
	Float(prec uint) *big.Float
	// Sign returns -1, 0, or 1 according to the sign of the value.
	Sign() int
	// abs formats the absolute value.
	abs() string
}

// Number is a real number kept with the text it was pasted as.
type Number struct {
	// Text is the number as pasted, including any sign.
	Text string
	// Val is the parsed value.
	Val *big.Float
	// Integer is set when the number was pasted without a fractional part or
	// exponent.
	Integer bool
}

// Rational is an exact fraction. It displays as a mixed fraction when its
// magnitude is at least one.
type Rational struct {
	Rat *big.Rat
}

// Form is the coordinate system of a complex value.
type Form int8

const (
	Cartesian Form = iota
	Polar
)

// Complex is a complex number in the form it was pasted in.
type Complex struct {
	Form Form
	// X and Y are the real and imaginary parts of a cartesian value, or the
	// absolute value and argument of a polar value.
	X, Y Scalar
	// Unit is the unit Y was pasted in, for polar values.
	Unit pasteparser.AngleUnit
	// Radians is Y in radians, for polar values.
	Radians *big.Float
}

// Matrix is a matrix of real values. All rows have the same length.
type Matrix struct {
	Rows [][]Scalar
}

func (*Number) isValue()   {}
func (*Rational) isValue() {}
func (*Complex) isValue()  {}
func (*Matrix) isValue()   {}

func (n *Number) String() string {
	return n.Text
}

func (n *Number) Float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(n.Val)
}

func (n *Number) Sign() int {
	return n.Val.Sign()
}

func (n *Number) abs() string {
	return strings.TrimPrefix(strings.TrimPrefix(n.Text, "-"), "+")
}

func (r *Rational) String() string {
	if r.Rat.IsInt() {
		return r.Rat.Num().String()
	}
	num := new(big.Int).Set(r.Rat.Num())
	den := r.Rat.Denom()
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if whole.Sign() == 0 {
		return num.String() + "/" + den.String()
	}
	return whole.String() + " " + rem.Abs(rem).String() + "/" + den.String()
}

func (r *Rational) Float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetRat(r.Rat)
}

func (r *Rational) Sign() int {
	return r.Rat.Sign()
}

func (r *Rational) abs() string {
	a := Rational{Rat: new(big.Rat).Abs(r.Rat)}
	return a.String()
}

func (c *Complex) String() string {
	if c.Form == Polar {
		s := c.X.String() + " ∠ " + c.Y.String()
		if c.Unit == pasteparser.Degrees {
			s += "°"
		}
		return s
	}
	re, im := c.X.Sign(), c.Y.Sign()
	if re == 0 && im == 0 {
		return "0"
	}
	var b strings.Builder
	if re != 0 {
		b.WriteString(c.X.String())
	}
	if im == 0 {
		return b.String()
	}
	switch {
	case re != 0 && im > 0:
		b.WriteString(" + ")
	case re != 0:
		b.WriteString(" - ")
	case im < 0:
		b.WriteByte('-')
	}
	if a := c.Y.abs(); a != "1" {
		b.WriteString(a)
	}
	b.WriteByte('i')
	return b.String()
}

func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range m.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(v.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Dims returns the number of rows and columns of m.
func (m *Matrix) Dims() (rows, cols int) {
	if len(m.Rows) == 0 {
		return 0, 0
	}
	return len(m.Rows), len(m.Rows[0])
}
