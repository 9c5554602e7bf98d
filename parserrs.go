package pasteparser

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidInput is returned by scalar constructors given empty text and
	// by Negate given a nil node. Nothing is allocated.
	ErrInvalidInput = errors.New("pasteparser: invalid input")
	// ErrAllocation is matched by every error caused by an Allocator failing
	// to supply a node.
	ErrAllocation = errors.New("pasteparser: allocation failed")
	// ErrMissingChild is returned by composite constructors given a nil child,
	// which is how an earlier failure propagates.
	ErrMissingChild = errors.New("pasteparser: missing child node")
)

// AllocError wraps an error returned from an Allocator. It matches
// ErrAllocation with errors.Is.
type AllocError struct {
	Err error
}

func (err *AllocError) Error() string {
	if err.Err == nil || err.Err == ErrAllocation {
		return ErrAllocation.Error()
	}
	return ErrAllocation.Error() + ": " + err.Err.Error()
}

func (err *AllocError) Unwrap() error {
	return err.Err
}

func (err *AllocError) Is(target error) bool {
	return target == ErrAllocation
}

func allocError(err error) error {
	var ae *AllocError
	if errors.As(err, &ae) {
		return err
	}
	return &AllocError{Err: err}
}

// ParseError is the error reported by a Session when a parse failed. Message
// is the text the grammar passed to SetError.
type ParseError struct {
	Message string
}

func (err *ParseError) Error() string {
	return err.Message
}

// NameError indicates an unknown name for a kind or angle unit.
type NameError struct {
	// What is the kind of name, e.g. "kind".
	What string
	// Name is the name that was not recognized.
	Name string
}

func (err *NameError) Error() string {
	return "unknown " + err.What + " " + strconv.Quote(err.Name)
}

// SyntaxError is an error indicating a token that cannot appear where it was
// found. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token.
	Col int
	// Found is the text of the token, or the empty string at the end of input.
	Found string
	// Want describes what the grammar expected instead.
	Want string
}

func (err *SyntaxError) Error() string {
	found := "end of input"
	switch err.Found {
	case "":
	case "\n":
		found = "line break"
	default:
		found = strconv.Quote(err.Found)
	}
	if err.Want == "" {
		return errpos(err.Col, "unexpected "+found)
	}
	return errpos(err.Col, "unexpected "+found+", expected "+err.Want)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched matrix brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket or of the end of input.
	Col int
	// Left is the unclosed open bracket, or empty for a close bracket with
	// no open bracket.
	Left string
	// Right is the unmatched close bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyInputError is an error indicating input with nothing to parse.
type EmptyInputError struct {
	// Col is the position of the end of input.
	Col int
}

func (err *EmptyInputError) Error() string {
	return errpos(err.Col, "no value")
}

func (err *EmptyInputError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyInputError)(nil)
	_ InputError = (*LexError)(nil)
)
