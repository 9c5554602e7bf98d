package pasteparser

import "log/slog"

// Option is an option for creating a Session or a Builder.
type Option interface {
	option(settings) settings
}

type (
	allocopt   struct{ a Allocator }
	grammaropt struct{ g Grammar }
	logopt     struct{ l *slog.Logger }
	legacyopt  struct{}
)

// settings holds the values set by options.
type settings struct {
	// alloc supplies node storage. nil means the heap.
	alloc Allocator
	// grammar recognizes input text. nil means DefaultGrammar.
	grammar Grammar
	// log receives session events. nil means slog.Default at the time the
	// session is created.
	log *slog.Logger
	// legacy makes every scalar a Double regardless of the requested kind.
	legacy bool
}

func (s settings) builder() *Builder {
	b := Builder{alloc: s.alloc, legacy: s.legacy}
	if b.alloc == nil {
		b.alloc = heap{}
	}
	return &b
}

// WithAllocator sets the allocator that supplies node storage. The default
// allocates from the Go heap and never fails.
func WithAllocator(a Allocator) Option {
	return allocopt{a}
}

func (o allocopt) option(s settings) settings {
	s.alloc = o.a
	return s
}

// WithGrammar sets the grammar a Session uses to recognize pasted text. The
// default is DefaultGrammar.
func WithGrammar(g Grammar) Option {
	return grammaropt{g}
}

func (o grammaropt) option(s settings) settings {
	s.grammar = o.g
	return s
}

// WithLogger sets the logger for session events. Outcomes are logged at debug
// level, and grammars that break the one-outcome contract at warn level.
func WithLogger(l *slog.Logger) Option {
	return logopt{l}
}

func (o logopt) option(s settings) settings {
	s.log = o.l
	return s
}

// LegacyScalarKind makes the builder create every scalar leaf with kind
// Double, ignoring the kind requested by Integer, Zero, One, and Scalar. Older
// versions of the calculator always behaved this way.
func LegacyScalarKind() Option {
	return legacyopt{}
}

func (legacyopt) option(s settings) settings {
	s.legacy = true
	return s
}
