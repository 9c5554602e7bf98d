package pasteparser

import (
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + strconv.Quote(t.text) + "@" + strconv.Itoa(t.pos)
}

// is reports whether the token has the given kind and text.
func (t lexToken) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an unsigned integer or decimal number.
	tokenNum
	// tokenIdent is a run of letters: the imaginary unit or an angle unit.
	tokenIdent
	// tokenOp is a sign or a fraction bar.
	tokenOp
	// tokenAngle is the polar angle sign ∠.
	tokenAngle
	// tokenDegree is the degree sign °.
	tokenDegree
	// tokenOpen is an open matrix bracket.
	tokenOpen
	// tokenClose is a close matrix bracket.
	tokenClose
	// tokenSep is an element separator , or row separator ;.
	tokenSep
	// tokenNewline is a line break, which separates matrix rows.
	tokenNewline
)

var tokenNames = [...]string{
	tokenNone:    "None",
	tokenEOF:     "EOF",
	tokenNum:     "Num",
	tokenIdent:   "Ident",
	tokenOp:      "Op",
	tokenAngle:   "Angle",
	tokenDegree:  "Degree",
	tokenOpen:    "Open",
	tokenClose:   "Close",
	tokenSep:     "Sep",
	tokenNewline: "Newline",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// Operators contains the runes which are lexed as operators. The Unicode
// minus sign is lexed as "-".
const Operators = "+-−/"

const (
	// AngleSign separates the absolute value and argument of a polar value.
	AngleSign = '∠'
	// DegreeSign marks a polar argument in degrees.
	DegreeSign = '°'
)

type lexer struct {
	src []rune
	// off is the index of the next rune in src.
	off int
	buf strings.Builder
	p   lexToken
}

func lex(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("pasteparser: double push")
	}
	l.p = tok
}

// readRune reads a rune from src. ok is false at the end of input.
func (l *lexer) readRune() (r rune, ok bool) {
	if l.off >= len(l.src) {
		return 0, false
	}
	r = l.src[l.off]
	l.off++
	return r, true
}

// unreadRune steps back over the last rune read.
func (l *lexer) unreadRune() {
	l.off--
}

// peek returns the rune k runes ahead of the next one, or 0 past the end.
func (l *lexer) peek(k int) rune {
	if l.off+k >= len(l.src) {
		return 0
	}
	return l.src[l.off+k]
}

// next scans the next token from the input. Positions count runes from 1.
// Once the end of input is reached, every further call returns an EOF token.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	defer l.buf.Reset()
	for {
		tok := lexToken{pos: l.off + 1}
		r, ok := l.readRune()
		if !ok {
			tok.kind = tokenEOF
			return tok, nil
		}
		switch {
		case r == '\n':
			tok.text = "\n"
			tok.kind = tokenNewline
			return tok, nil
		case r == '\r':
			// \r\n is one line break.
			if l.peek(0) == '\n' {
				continue
			}
			tok.text = "\n"
			tok.kind = tokenNewline
			return tok, nil
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			l.scanIdent()
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == AngleSign:
			tok.text = string(AngleSign)
			tok.kind = tokenAngle
			return tok, nil
		case r == DegreeSign:
			tok.text = string(DegreeSign)
			tok.kind = tokenDegree
			return tok, nil
		case r == '[':
			tok.text = "["
			tok.kind = tokenOpen
			return tok, nil
		case r == ']':
			tok.text = "]"
			tok.kind = tokenClose
			return tok, nil
		case r == ',', r == ';':
			tok.text = string(r)
			tok.kind = tokenSep
			return tok, nil
		case r == '−':
			tok.text = "-"
			tok.kind = tokenOp
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans an unsigned decimal number with an optional exponent. The
// number ends at the first rune that cannot continue it. An e or E is part of
// the number only if an exponent follows it, so 2e-3 is one number but 2e is
// a number followed by an identifier.
func (l *lexer) scanNum() error {
	var dig, dot bool
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
			l.buf.WriteRune(r)
			continue
		case r == '.':
			if dot {
				l.buf.WriteRune(r)
				return l.error("number")
			}
			dot = true
			l.buf.WriteRune(r)
			continue
		case (r == 'e' || r == 'E') && dig && l.exponentFollows():
			l.buf.WriteRune(r)
			l.scanExponent()
		default:
			l.unreadRune()
		}
		break
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

// exponentFollows reports whether the runes after an exponent marker form an
// exponent.
func (l *lexer) exponentFollows() bool {
	r := l.peek(0)
	if r == '+' || r == '-' {
		r = l.peek(1)
	}
	return '0' <= r && r <= '9'
}

func (l *lexer) scanExponent() {
	if r := l.peek(0); r == '+' || r == '-' {
		l.readRune()
		l.buf.WriteRune(r)
	}
	for {
		r, ok := l.readRune()
		if !ok {
			return
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) scanIdent() {
	for {
		r, ok := l.readRune()
		if !ok {
			return
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.off,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
