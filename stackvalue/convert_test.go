package stackvalue_test

import (
	"errors"
	"math/big"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/jaittola/pasteparser"
	"github.com/jaittola/pasteparser/stackvalue"
)

func TestConvertString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"integer", "2", "2"},
		{"negInteger", "-2", "-2"},
		{"double", "123.456", "123.456"},
		{"negDouble", "-123.456", "-123.456"},
		{"exponent", "123.456E2", "123.456E2"},
		{"negExponent", "123.456E-2", "123.456E-2"},
		{"cartesian", "2 + 3i", "2 + 3i"},
		{"cartesianDouble", "123.456 + 789.012i", "123.456 + 789.012i"},
		{"cartesianMinus", "2 - 3i", "2 - 3i"},
		{"imag", "123.456i", "123.456i"},
		{"negImag", "-123.456i", "-123.456i"},
		{"unitImagMinus", "3 - i", "3 - i"},
		{"i", "i", "i"},
		{"negI", "-i", "-i"},
		{"fractionParts", "3/4 - 2/5i", "3/4 - 2/5i"},
		{"polarDegrees", "2 ∠ 32°", "2 ∠ 32°"},
		{"polarRadians", "2 ∠ 0.7853982", "2 ∠ 0.7853982"},
		{"fraction", "3/4", "3/4"},
		{"mixed", "1 3/4", "1 3/4"},
		{"negMixed", "-1 3/4", "-1 3/4"},
		{"negFraction", "-3/4", "-3/4"},
		{"improper", "7/4", "1 3/4"},
		{"wholeFraction", "8/4", "2"},
		{"matrix", "[1  2\n3  2.4E-2]", "[1  2\n3  2.4E-2]"},
		{"matrixSemis", "[1, 2; 3, 4]", "[1  2\n3  4]"},
		{"matrixFractions", "[1/2 -3/4]", "[1/2  -3/4]"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			v, err := stackvalue.ConvertString(c.in)
			require.NoError(t, err)
			require.Equal(t, c.out, v.String())
		})
	}
}

func TestConvertNumber(t *testing.T) {
	v, err := stackvalue.ConvertString("123.456E-2", stackvalue.Prec(100))
	require.NoError(t, err)
	n, ok := v.(*stackvalue.Number)
	require.True(t, ok)
	require.False(t, n.Integer)
	require.Equal(t, uint(100), n.Val.Prec())
	want, _, _ := big.ParseFloat("1.23456", 10, 100, big.ToNearestEven)
	require.Equal(t, 0, n.Val.Cmp(want))

	v, err = stackvalue.ConvertString("-42")
	require.NoError(t, err)
	n = v.(*stackvalue.Number)
	require.True(t, n.Integer)
	require.Equal(t, -1, n.Sign())
}

func TestConvertFraction(t *testing.T) {
	cases := []struct {
		in  string
		num int64
		den int64
	}{
		{"3/4", 3, 4},
		{"-3/4", -3, 4},
		{"1 3/4", 7, 4},
		{"-1 3/4", -7, 4},
		{"6/8", 3, 4},
	}
	for _, c := range cases {
		v, err := stackvalue.ConvertString(c.in)
		require.NoError(t, err, c.in)
		r, ok := v.(*stackvalue.Rational)
		require.True(t, ok, c.in)
		require.Equal(t, big.NewRat(c.num, c.den).String(), r.Rat.String(), c.in)
	}
}

func TestConvertPolar(t *testing.T) {
	v, err := stackvalue.ConvertString("2 ∠ 180°")
	require.NoError(t, err)
	c, ok := v.(*stackvalue.Complex)
	require.True(t, ok)
	require.Equal(t, stackvalue.Polar, c.Form)
	require.Equal(t, pasteparser.Degrees, c.Unit)
	got, _ := c.Radians.Float64()
	require.True(t, got > 3.14159265 && got < 3.14159266, "radians %v", got)

	v, err = stackvalue.ConvertString("2 ∠ 0.5")
	require.NoError(t, err)
	c = v.(*stackvalue.Complex)
	require.Equal(t, pasteparser.Radians, c.Unit)
	got, _ = c.Radians.Float64()
	require.Equal(t, 0.5, got)
}

func TestConvertMatrix(t *testing.T) {
	v, err := stackvalue.ConvertString("[1 2 3\n4 5 6]")
	require.NoError(t, err)
	m, ok := v.(*stackvalue.Matrix)
	require.True(t, ok)
	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, "5", m.Rows[1][1].String())
}

func TestConvertLoneRow(t *testing.T) {
	b := pasteparser.NewBuilder()
	x, _ := b.Integer("1")
	y, _ := b.Integer("2")
	row, err := b.MatrixRow([]*pasteparser.Node{x, y})
	require.NoError(t, err)
	defer b.Free(row)
	v, err := stackvalue.Convert(pasteparser.Host(row))
	require.NoError(t, err)
	require.Equal(t, "[1  2]", v.String())
}

func TestConvertErrors(t *testing.T) {
	b := pasteparser.NewBuilder()
	cases := []struct {
		name  string
		build func() (*pasteparser.Node, error)
		msg   string
	}{
		{
			name: "ragged",
			build: func() (*pasteparser.Node, error) {
				a, _ := b.Integer("1")
				c, _ := b.Integer("2")
				d, _ := b.Integer("3")
				r1, _ := b.MatrixRow([]*pasteparser.Node{a, c})
				r2, _ := b.MatrixRow([]*pasteparser.Node{d})
				return b.Matrix([]*pasteparser.Node{r1, r2})
			},
			msg: "cannot convert Matrix: row 2 has 1 columns, want 2",
		},
		{
			name: "emptyMatrix",
			build: func() (*pasteparser.Node, error) {
				return b.Matrix(nil)
			},
			msg: "cannot convert Matrix: no rows",
		},
		{
			name: "zeroDenominator",
			build: func() (*pasteparser.Node, error) {
				w, _ := b.Zero()
				n, _ := b.Integer("1")
				d, _ := b.Integer("0")
				return b.Fraction(w, n, d)
			},
			msg: "cannot convert Fraction: zero denominator",
		},
		{
			name: "decimalFraction",
			build: func() (*pasteparser.Node, error) {
				w, _ := b.Zero()
				n, _ := b.Double("1.5")
				d, _ := b.Integer("2")
				return b.Fraction(w, n, d)
			},
			msg: `cannot convert Fraction: fraction part "1.5" is not an integer`,
		},
		{
			name: "nestedComplex",
			build: func() (*pasteparser.Node, error) {
				x, _ := b.Zero()
				y, _ := b.One(1)
				inner, _ := b.ComplexCartesian(x, y)
				z, _ := b.Zero()
				return b.ComplexCartesian(inner, z)
			},
			msg: "cannot convert ComplexCartesian: not a real number",
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			n, err := c.build()
			require.NoError(t, err)
			defer b.Free(n)
			_, err = stackvalue.Convert(pasteparser.Host(n))
			require.EqualError(t, err, c.msg)
			var ce *stackvalue.ConversionError
			require.True(t, errors.As(err, &ce))
		})
	}
}

func TestConvertStringParseError(t *testing.T) {
	_, err := stackvalue.ConvertString("asdf123.456")
	var pe *pasteparser.ParseError
	require.True(t, errors.As(err, &pe), "%v", err)
}

func TestConvertNil(t *testing.T) {
	_, err := stackvalue.Convert(nil)
	require.Error(t, err)
}
