// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import "fmt"

// ErrKind classifies a parse failure.
type ErrKind int

const (
	// UnexpectedEOF means input ended where the grammar required more.
	UnexpectedEOF ErrKind = iota

	// MalformedFlag means a short or long flag violated its syntax.
	MalformedFlag

	// MalformedPlaceholder means an unterminated or empty [..] / <..>.
	MalformedPlaceholder

	// MissingSectionBody means a title line had no indented block after it.
	MissingSectionBody

	// MissingArgDescription means a ':' description marker had no text.
	MissingArgDescription
)

func (k ErrKind) String() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected end of input"
	case MalformedFlag:
		return "malformed flag"
	case MalformedPlaceholder:
		return "malformed placeholder"
	case MissingSectionBody:
		return "missing section body"
	case MissingArgDescription:
		return "missing argument description"
	}
	return "parse error"
}

// ParseError is the single failure type returned by Parse. Line and Col
// are one-based positions in the original input.
type ParseError struct {
	Kind ErrKind
	Msg  string
	Line int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// errAt builds a ParseError from the parser's zero-based cursor.
func errAt(kind ErrKind, line, col int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Line: line + 1,
		Col:  col + 1,
	}
}
