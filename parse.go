package pasteparser

// Paste      = Matrix | Polar | Cartesian
// Matrix     = '[' [ Row ] { (newline | ';') [ Row ] } ']'
// Row        = Element { [','] Element }
// Element    = [Sign] Real
// Polar      = [Sign] Magnitude '∠' [Sign] Magnitude [ '°' | 'deg' | 'rad' ]
// Cartesian  = [Sign] ( 'i' | Magnitude [ 'i' | Sign ( 'i' | Magnitude 'i' ) ] )
// Magnitude  = Real | num num '/' num
// Real       = num [ '/' num ]
//
// grammar.ebnf holds the same grammar in a form x/exp/ebnf can check.

// Grammar recognizes pasted text. Parse drives b to build a tree for src and
// then calls exactly one of sink.SetResult or sink.SetError. On failure, it
// must free every node it still owns before reporting the error.
type Grammar interface {
	Parse(src string, b *Builder, sink Sink)
}

// Sink receives the outcome of a parse.
type Sink interface {
	// SetResult takes ownership of root as the parsed value. It reports
	// whether the result was accepted.
	SetResult(root *Node) bool
	// SetError records a parse failure.
	SetError(message string)
}

// DefaultGrammar returns the grammar for values copied out of the
// calculator: numbers, fractions, complex numbers, and matrices.
func DefaultGrammar() Grammar {
	return pasteGrammar{}
}

type pasteGrammar struct{}

func (pasteGrammar) Parse(src string, b *Builder, sink Sink) {
	p := parser{scan: lex(src), b: b}
	n, err := p.parse()
	if err != nil {
		sink.SetError(err.Error())
		return
	}
	sink.SetResult(n)
}

// parser holds the state of a single parse. Each parse method returns either
// a node it has handed to the caller or an error, in which case it has freed
// everything it built.
type parser struct {
	scan *lexer
	b    *Builder
	// rows is set inside matrix brackets, where line breaks separate rows.
	rows bool
}

// next returns the next token, skipping line breaks outside matrices.
func (p *parser) next() (lexToken, error) {
	for {
		tok, err := p.scan.next()
		if err != nil {
			return tok, err
		}
		if tok.kind == tokenNewline && !p.rows {
			continue
		}
		return tok, nil
	}
}

func (p *parser) parse() (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	var n *Node
	switch tok.kind {
	case tokenEOF:
		return nil, &EmptyInputError{Col: tok.pos}
	case tokenOpen:
		n, err = p.parseMatrix(tok)
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		p.scan.push(tok)
		n, err = p.parseScalar()
	}
	if err != nil {
		return nil, err
	}
	end, err := p.next()
	if err != nil {
		p.b.Free(n)
		return nil, err
	}
	switch end.kind {
	case tokenEOF:
		return n, nil
	case tokenClose:
		p.b.Free(n)
		return nil, &BracketError{Col: end.pos, Right: end.text}
	default:
		p.b.Free(n)
		return nil, unexpected(end, "end of input")
	}
}

// parseSign consumes an optional + or - and returns its sign.
func (p *parser) parseSign() (int, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	switch {
	case tok.is(tokenOp, "-"):
		return -1, nil
	case tok.is(tokenOp, "+"):
		return 1, nil
	}
	p.scan.push(tok)
	return 1, nil
}

// parseScalar parses a number, fraction, or complex number.
func (p *parser) parseScalar() (*Node, error) {
	sign, err := p.parseSign()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch {
	case isImagUnit(tok):
		// i, -i
		re, err1 := p.b.Zero()
		im, err2 := p.b.One(sign)
		n, err := p.b.ComplexCartesian(re, im)
		return n, firstErr(err1, err2, err)
	case tok.kind == tokenNum:
		p.scan.push(tok)
	default:
		return nil, unexpected(tok, "number")
	}
	mag, err := p.parseMagnitude(true)
	if err != nil {
		return nil, err
	}

	tok, err = p.next()
	if err != nil {
		p.b.Free(mag)
		return nil, err
	}
	switch {
	case isImagUnit(tok):
		// 2i, -2/3i
		re, err1 := p.b.Zero()
		im, err2 := p.b.Negate(sign, mag)
		n, err := p.b.ComplexCartesian(re, im)
		return n, firstErr(err1, err2, err)
	case tok.kind == tokenAngle:
		// 2 ∠ 30°
		abs, err := p.b.Negate(sign, mag)
		if err != nil {
			return nil, err
		}
		arg, unit, err := p.parsePolarArg()
		if err != nil {
			p.b.Free(abs)
			return nil, err
		}
		return p.b.ComplexPolar(abs, arg, unit)
	case tok.is(tokenOp, "+"), tok.is(tokenOp, "-"):
		// 2 + 3i, 2 - i
		isign := 1
		if tok.text == "-" {
			isign = -1
		}
		re, err := p.b.Negate(sign, mag)
		if err != nil {
			return nil, err
		}
		im, err := p.parseImag(isign)
		if err != nil {
			p.b.Free(re)
			return nil, err
		}
		return p.b.ComplexCartesian(re, im)
	}
	p.scan.push(tok)
	return p.b.Negate(sign, mag)
}

// parseImag parses the imaginary part of a cartesian value after its sign.
func (p *parser) parseImag(sign int) (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch {
	case isImagUnit(tok):
		return p.b.One(sign)
	case tok.kind == tokenNum:
		p.scan.push(tok)
	default:
		return nil, unexpected(tok, "imaginary part")
	}
	mag, err := p.parseMagnitude(true)
	if err != nil {
		return nil, err
	}
	tok, err = p.next()
	if err != nil {
		p.b.Free(mag)
		return nil, err
	}
	if !isImagUnit(tok) {
		p.b.Free(mag)
		return nil, unexpected(tok, `"i"`)
	}
	return p.b.Negate(sign, mag)
}

// parsePolarArg parses the argument of a polar value after the angle sign,
// including its unit. An argument without a unit is in radians.
func (p *parser) parsePolarArg() (*Node, AngleUnit, error) {
	sign, err := p.parseSign()
	if err != nil {
		return nil, AngleUnknown, err
	}
	mag, err := p.parseMagnitude(true)
	if err != nil {
		return nil, AngleUnknown, err
	}
	arg, err := p.b.Negate(sign, mag)
	if err != nil {
		return nil, AngleUnknown, err
	}
	tok, err := p.next()
	if err != nil {
		p.b.Free(arg)
		return nil, AngleUnknown, err
	}
	switch {
	case tok.kind == tokenDegree, tok.is(tokenIdent, "deg"):
		return arg, Degrees, nil
	case tok.is(tokenIdent, "rad"):
		return arg, Radians, nil
	}
	p.scan.push(tok)
	return arg, Radians, nil
}

// parseMagnitude parses an unsigned number or fraction. If mixed is set, a
// number followed by a fraction is a mixed fraction; otherwise the two are
// left for the caller.
func (p *parser) parseMagnitude(mixed bool) (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenNum {
		return nil, unexpected(tok, "number")
	}
	first, err := p.number(tok)
	if err != nil {
		return nil, err
	}
	tok, err = p.next()
	if err != nil {
		p.b.Free(first)
		return nil, err
	}
	switch {
	case tok.is(tokenOp, "/"):
		// 3/4
		den, err := p.parseNumber()
		if err != nil {
			p.b.Free(first)
			return nil, err
		}
		whole, err1 := p.b.Zero()
		n, err := p.b.Fraction(whole, first, den)
		return n, firstErr(err1, err)
	case tok.kind == tokenNum && mixed:
		// 1 3/4
		num, err := p.number(tok)
		if err != nil {
			p.b.Free(first)
			return nil, err
		}
		bar, err := p.next()
		if err == nil && !bar.is(tokenOp, "/") {
			err = unexpected(bar, `"/"`)
		}
		if err != nil {
			p.b.Free(first)
			p.b.Free(num)
			return nil, err
		}
		den, err := p.parseNumber()
		if err != nil {
			p.b.Free(first)
			p.b.Free(num)
			return nil, err
		}
		return p.b.Fraction(first, num, den)
	}
	p.scan.push(tok)
	return first, nil
}

// parseNumber parses a single unsigned number.
func (p *parser) parseNumber() (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenNum {
		return nil, unexpected(tok, "number")
	}
	return p.number(tok)
}

// number creates the leaf for a number token.
func (p *parser) number(tok lexToken) (*Node, error) {
	if isInteger(tok.text) {
		return p.b.Integer(tok.text)
	}
	return p.b.Double(tok.text)
}

// parseMatrix parses the rows of a matrix after its open bracket.
func (p *parser) parseMatrix(open lexToken) (*Node, error) {
	p.rows = true
	defer func() { p.rows = false }()
	var (
		rows, row []*Node
		// comma is set after a comma, when an element must follow.
		comma bool
	)
	fail := func(err error) (*Node, error) {
		p.b.freeAll(row)
		p.b.freeAll(rows)
		return nil, err
	}
	endRow := func() error {
		if len(row) == 0 {
			return nil
		}
		r, err := p.b.MatrixRow(row)
		row = nil
		if err != nil {
			return err
		}
		rows = append(rows, r)
		return nil
	}
	for {
		tok, err := p.next()
		if err != nil {
			return fail(err)
		}
		switch tok.kind {
		case tokenNum, tokenOp:
			p.scan.push(tok)
			elem, err := p.parseElement()
			if err != nil {
				return fail(err)
			}
			row = append(row, elem)
			comma = false
			continue
		case tokenSep:
			if tok.text == "," {
				if len(row) == 0 || comma {
					return fail(unexpected(tok, "matrix element"))
				}
				comma = true
				continue
			}
		case tokenEOF:
			return fail(&BracketError{Col: tok.pos, Left: open.text})
		case tokenOpen:
			return fail(unexpected(tok, "matrix element"))
		}
		if comma {
			return fail(unexpected(tok, "matrix element"))
		}
		switch tok.kind {
		case tokenSep, tokenNewline:
			if err := endRow(); err != nil {
				return fail(err)
			}
		case tokenClose:
			if err := endRow(); err != nil {
				return fail(err)
			}
			return p.b.Matrix(rows)
		default:
			return fail(unexpected(tok, "matrix element"))
		}
	}
}

// parseElement parses a signed number or plain fraction inside a matrix.
func (p *parser) parseElement() (*Node, error) {
	sign, err := p.parseSign()
	if err != nil {
		return nil, err
	}
	mag, err := p.parseMagnitude(false)
	if err != nil {
		return nil, err
	}
	return p.b.Negate(sign, mag)
}

func isImagUnit(tok lexToken) bool {
	return tok.is(tokenIdent, "i")
}

// isInteger reports whether a number token has only digits.
func isInteger(text string) bool {
	for _, r := range text {
		if r < '0' || '9' < r {
			return false
		}
	}
	return text != ""
}

// unexpected creates an error for a token that cannot appear where it is.
func unexpected(tok lexToken, want string) error {
	found := tok.text
	if tok.kind == tokenEOF {
		found = ""
	}
	return &SyntaxError{Col: tok.pos, Found: found, Want: want}
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
