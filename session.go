package pasteparser

import "log/slog"

// Session parses pasted text and holds the outcome of the last parse: either
// a result or an error message, never both. The session owns the result's
// node tree until the next parse or Release. It is not safe to use a Session
// concurrently.
type Session struct {
	b       *Builder
	grammar Grammar
	log     *slog.Logger

	root *Node
	expr *Expression
	msg  string
	// failed is set when msg holds an error, which may be empty.
	failed bool
	// reports counts SetResult and SetError calls during the current parse.
	reports int
}

var _ Sink = (*Session)(nil)

// NewSession creates a parsing session.
func NewSession(opts ...Option) *Session {
	s := settings{}
	for _, opt := range opts {
		if opt != nil {
			s = opt.option(s)
		}
	}
	ss := Session{
		b:       s.builder(),
		grammar: s.grammar,
		log:     s.log,
	}
	if ss.grammar == nil {
		ss.grammar = DefaultGrammar()
	}
	if ss.log == nil {
		ss.log = slog.Default()
	}
	return &ss
}

// Builder returns the builder the session passes to its grammar.
func (s *Session) Builder() *Builder {
	return s.b
}

// Parse parses text and returns the host view of the result, or nil if the
// parse failed, in which case Err describes why. Any previous result is
// freed first.
func (s *Session) Parse(text string) *Expression {
	s.clear()
	s.reports = 0
	s.grammar.Parse(text, s.b, s)
	if s.reports == 0 {
		s.log.Warn("grammar finished without an outcome", slog.Int("length", len(text)))
		s.fail("no result from parser")
	}
	if s.failed {
		s.log.Debug("paste rejected", slog.String("error", s.msg))
		return nil
	}
	s.log.Debug("paste parsed", slog.String("kind", s.expr.Kind.String()))
	return s.expr
}

// SetResult replaces the session's outcome with root and builds its host
// view. The session takes ownership of root. A nil root is recorded as an
// error and SetResult returns false.
func (s *Session) SetResult(root *Node) bool {
	s.report()
	if root == nil {
		s.fail("empty parse result")
		return false
	}
	if root != s.root {
		s.clear()
	}
	s.root = root
	s.expr = Host(root)
	return true
}

// SetError replaces the session's outcome with an error message.
func (s *Session) SetError(message string) {
	s.report()
	s.fail(message)
}

func (s *Session) fail(message string) {
	s.clear()
	s.msg = message
	s.failed = true
}

// report counts an outcome of the current parse. Grammars report exactly
// once; a later report replaces an earlier one.
func (s *Session) report() {
	s.reports++
	if s.reports > 1 {
		s.log.Warn("grammar reported more than one outcome", slog.Int("reports", s.reports))
	}
}

// Result returns the host view of the last successful parse, or nil.
func (s *Session) Result() *Expression {
	return s.expr
}

// Root returns the node tree of the last successful parse, or nil. The tree
// stays owned by the session and is freed by the next parse or Release.
func (s *Session) Root() *Node {
	return s.root
}

// ErrMessage returns the message of the last failed parse, or the empty
// string.
func (s *Session) ErrMessage() string {
	return s.msg
}

// Err returns a *ParseError for the last failed parse, or nil.
func (s *Session) Err() error {
	if !s.failed {
		return nil
	}
	return &ParseError{Message: s.msg}
}

// Release frees the session's result and clears its outcome.
func (s *Session) Release() {
	s.clear()
}

func (s *Session) clear() {
	s.b.Free(s.root)
	s.root = nil
	s.expr = nil
	s.msg = ""
	s.failed = false
}

// ParseString is a shortcut to parse text with a new session and return the
// host view of the result.
func ParseString(text string, opts ...Option) (*Expression, error) {
	s := NewSession(opts...)
	defer s.Release()
	r := s.Parse(text)
	if r == nil {
		return nil, s.Err()
	}
	return r, nil
}
