package stackvalue

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"

	"github.com/jaittola/pasteparser"
)

// Context converts parsed pastes into stack values. It is not safe to use a
// Context concurrently.
type Context struct {
	prec uint
	// pi is computed on first use of a polar value in degrees.
	pi *big.Float
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision in bits of converted numbers.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new conversion context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case precopt:
			if opt > 0 {
				ctx.prec = uint(opt)
			}
		}
	}
	return &ctx
}

// Prec returns the precision to which values are converted in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Convert converts a parsed paste into a stack value. A lone matrix row
// converts to a one-row matrix.
func (ctx *Context) Convert(e *pasteparser.Expression) (Value, error) {
	if e == nil {
		return nil, &ConversionError{Reason: "no expression"}
	}
	var (
		v   Value
		err error
	)
	switch e.Kind {
	case pasteparser.KindInteger, pasteparser.KindDouble, pasteparser.KindFraction:
		v, err = ctx.scalar(e)
	case pasteparser.KindComplexCartesian, pasteparser.KindComplexPolar:
		v, err = ctx.complex(e)
	case pasteparser.KindMatrix:
		v, err = ctx.matrix(e.Children)
	case pasteparser.KindMatrixRow:
		v, err = ctx.matrix([]*pasteparser.Expression{e})
	default:
		return nil, &ConversionError{Kind: e.Kind, Reason: "unsupported kind"}
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// scalar converts a number or a fraction.
func (ctx *Context) scalar(e *pasteparser.Expression) (Scalar, error) {
	switch e.Kind {
	case pasteparser.KindInteger, pasteparser.KindDouble:
		if !e.IsScalar() {
			return nil, &ConversionError{Kind: e.Kind, Reason: "number without text"}
		}
		v, _, err := big.ParseFloat(e.Text, 10, ctx.prec, big.ToNearestEven)
		if err != nil {
			return nil, &ConversionError{Kind: e.Kind, Reason: "bad number " + strconv.Quote(e.Text), Err: err}
		}
		return &Number{Text: e.Text, Val: v, Integer: e.Kind == pasteparser.KindInteger}, nil
	case pasteparser.KindFraction:
		return ctx.fraction(e)
	}
	return nil, &ConversionError{Kind: e.Kind, Reason: "not a real number"}
}

// fraction converts a fraction with a whole part, numerator, and denominator,
// or with only the latter two. The sign of a mixed fraction is the sign of
// its whole part as written, so that -0 3/4 is negative.
func (ctx *Context) fraction(e *pasteparser.Expression) (Scalar, error) {
	var parts []*big.Rat
	for _, c := range e.Children {
		if !c.IsScalar() {
			return nil, &ConversionError{Kind: e.Kind, Reason: "fraction part is not a number"}
		}
		r, ok := new(big.Rat).SetString(c.Text)
		if !ok || !r.IsInt() {
			return nil, &ConversionError{Kind: e.Kind, Reason: "fraction part " + strconv.Quote(c.Text) + " is not an integer"}
		}
		parts = append(parts, r)
	}
	var neg bool
	switch len(parts) {
	case 2:
		parts = append([]*big.Rat{new(big.Rat)}, parts...)
	case 3:
		neg = e.Children[0].Text[0] == '-'
		parts[0].Abs(parts[0])
	default:
		return nil, &ConversionError{Kind: e.Kind, Reason: "fraction needs 2 or 3 parts, have " + strconv.Itoa(len(parts))}
	}
	if parts[2].Sign() == 0 {
		return nil, &ConversionError{Kind: e.Kind, Reason: "zero denominator"}
	}
	r := new(big.Rat).Quo(parts[1], parts[2])
	r.Add(r, parts[0])
	if neg {
		r.Neg(r)
	}
	return &Rational{Rat: r}, nil
}

func (ctx *Context) complex(e *pasteparser.Expression) (*Complex, error) {
	if len(e.Children) != 2 {
		return nil, &ConversionError{Kind: e.Kind, Reason: "complex number needs 2 parts, have " + strconv.Itoa(len(e.Children))}
	}
	x, err := ctx.scalar(e.Children[0])
	if err != nil {
		return nil, err
	}
	y, err := ctx.scalar(e.Children[1])
	if err != nil {
		return nil, err
	}
	if e.Kind == pasteparser.KindComplexCartesian {
		return &Complex{Form: Cartesian, X: x, Y: y}, nil
	}
	c := Complex{Form: Polar, X: x, Y: y, Unit: e.AngleUnit, Radians: y.Float(ctx.prec)}
	if c.Unit == pasteparser.Degrees {
		c.Radians.Mul(c.Radians, ctx.piOver180())
	}
	return &c, nil
}

// piOver180 returns the factor converting degrees to radians.
func (ctx *Context) piOver180() *big.Float {
	if ctx.pi == nil {
		pi := bigfloat.Pi(new(big.Float).SetPrec(ctx.prec + 8))
		ctx.pi = pi.Quo(pi, big.NewFloat(180)).SetPrec(ctx.prec)
	}
	return ctx.pi
}

func (ctx *Context) matrix(rows []*pasteparser.Expression) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, &ConversionError{Kind: pasteparser.KindMatrix, Reason: "no rows"}
	}
	m := Matrix{Rows: make([][]Scalar, 0, len(rows))}
	for i, row := range rows {
		if row.Kind != pasteparser.KindMatrixRow {
			return nil, &ConversionError{Kind: pasteparser.KindMatrix, Reason: "row " + strconv.Itoa(i+1) + " is a " + row.Kind.String()}
		}
		if len(row.Children) == 0 {
			return nil, &ConversionError{Kind: pasteparser.KindMatrixRow, Reason: "row " + strconv.Itoa(i+1) + " is empty"}
		}
		if i > 0 && len(row.Children) != len(m.Rows[0]) {
			return nil, &ConversionError{
				Kind:   pasteparser.KindMatrix,
				Reason: "row " + strconv.Itoa(i+1) + " has " + strconv.Itoa(len(row.Children)) + " columns, want " + strconv.Itoa(len(m.Rows[0])),
			}
		}
		r := make([]Scalar, 0, len(row.Children))
		for _, c := range row.Children {
			v, err := ctx.scalar(c)
			if err != nil {
				return nil, err
			}
			r = append(r, v)
		}
		m.Rows = append(m.Rows, r)
	}
	return &m, nil
}

// Convert converts a parsed paste with a new context.
func Convert(e *pasteparser.Expression, opts ...ContextOption) (Value, error) {
	return NewContext(opts...).Convert(e)
}

// ConvertString parses text as a paste and converts the result.
func ConvertString(text string, opts ...ContextOption) (Value, error) {
	e, err := pasteparser.ParseString(text)
	if err != nil {
		return nil, err
	}
	return Convert(e, opts...)
}

// ConversionError indicates a parsed paste that does not form a stack value.
type ConversionError struct {
	// Kind is the kind of the node that could not be converted.
	Kind pasteparser.Kind
	// Reason describes the problem.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (err *ConversionError) Error() string {
	return "cannot convert " + err.Kind.String() + ": " + err.Reason
}

func (err *ConversionError) Unwrap() error {
	return err.Err
}
