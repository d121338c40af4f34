// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import "github.com/meshintel/helpdoc/pkg/ast"

// Primitive token parsers. Each consumes from a fixed (line, col) cursor
// within lines, skips leading horizontal whitespace, and returns the
// parsed node together with the cursor just past the token. A flag token
// must be terminated by whitespace, a comma, or the end of the line.

// parseShortFlag recognizes "-x": a dash followed by exactly one
// alphabetic or underscore character.
func parseShortFlag(lines []string, line, col int) (*ast.Node, int, int, *ParseError) {
	begLine, begCol := line, col
	s := lines[line]
	if col >= len(s) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected short flag but reached end of line")
	}
	col += skipWhitespace(s, col)
	if col >= len(s) || s[col] != '-' || startsWithAt(s, "--", col) {
		return nil, line, col, errAt(MalformedFlag, line, col, "expected short flag starting with '-'")
	}
	col++
	if col >= len(s) || !isAlpha(s[col]) {
		return nil, line, col, errAt(MalformedFlag, line, col, "invalid short flag identifier")
	}
	identCol := col
	ident := string(s[col])
	col++
	if col < len(s) && !isHorizWS(s[col]) && s[col] != ',' {
		return nil, line, col, errAt(MalformedFlag, line, col, "expected whitespace or comma after short flag")
	}
	node := &ast.Node{
		Kind: ast.ShortFlag,
		Span: ast.Span{StartLine: begLine, StartCol: begCol, EndLine: line, EndCol: col},
	}
	node.Append(&ast.Node{
		Kind: ast.ShortFlagIdent,
		Text: ident,
		Span: ast.Span{StartLine: line, StartCol: identCol, EndLine: line, EndCol: col},
	})
	return node, line, col, nil
}

// parseLongFlag recognizes "--name": two dashes followed by an identifier
// that starts with a letter or underscore, may contain letters, digits,
// underscores and dashes, and ends in a letter, digit or underscore.
func parseLongFlag(lines []string, line, col int) (*ast.Node, int, int, *ParseError) {
	begLine, begCol := line, col
	s := lines[line]
	if col >= len(s) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected long flag but reached end of line")
	}
	col += skipWhitespace(s, col)
	if !startsWithAt(s, "--", col) {
		return nil, line, col, errAt(MalformedFlag, line, col, "expected long flag starting with '--'")
	}
	col += 2
	identCol := col
	for col < len(s) && isAlnumDash(s[col]) {
		col++
	}
	ident := s[identCol:col]
	if len(ident) < 2 || !isAlpha(ident[0]) || !isAlnumUnderscore(ident[len(ident)-1]) {
		return nil, line, col, errAt(MalformedFlag, line, identCol, "invalid long flag identifier %q", ident)
	}
	if col < len(s) && !isHorizWS(s[col]) && s[col] != ',' {
		return nil, line, col, errAt(MalformedFlag, line, col, "expected whitespace or comma after long flag")
	}
	node := &ast.Node{
		Kind: ast.LongFlag,
		Span: ast.Span{StartLine: begLine, StartCol: begCol, EndLine: line, EndCol: col},
	}
	node.Append(&ast.Node{
		Kind: ast.LongFlagIdent,
		Text: ident,
		Span: ast.Span{StartLine: line, StartCol: identCol, EndLine: line, EndCol: col},
	})
	return node, line, col, nil
}

// parsePlaceholder recognizes "[ident]" when kind is ast.OptionalArg and
// "<ident>" when kind is ast.RequiredArg. The identifier is collected up
// to the closing bracket; a missing close is a hard failure. Required
// placeholders additionally demand an identifier that begins with a
// letter/underscore and ends alphanumeric, matching shell variable names.
func parsePlaceholder(lines []string, line, col int, kind ast.Kind) (*ast.Node, int, int, *ParseError) {
	openCh, closeCh := byte('['), byte(']')
	what := "optional argument"
	if kind == ast.RequiredArg {
		openCh, closeCh = '<', '>'
		what = "required argument"
	}
	begLine, begCol := line, col
	s := lines[line]
	if col >= len(s) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected %s but reached end of line", what)
	}
	col += skipWhitespace(s, col)
	if col >= len(s) || s[col] != openCh {
		return nil, line, col, errAt(MalformedPlaceholder, line, col, "expected %s starting with %q", what, string(openCh))
	}
	col++
	identCol := col
	for col < len(s) && s[col] != closeCh {
		col++
	}
	ident := s[identCol:col]
	if ident == "" {
		return nil, line, col, errAt(MalformedPlaceholder, line, identCol, "expected %s identifier", what)
	}
	if kind == ast.RequiredArg && (!isAlpha(ident[0]) || !isAlnumUnderscore(ident[len(ident)-1])) {
		return nil, line, col, errAt(MalformedPlaceholder, line, identCol, "invalid %s identifier %q", what, ident)
	}
	if col >= len(s) || s[col] != closeCh {
		return nil, line, col, errAt(MalformedPlaceholder, line, col, "expected closing %q for %s", string(closeCh), what)
	}
	col++
	node := &ast.Node{
		Kind: kind,
		Span: ast.Span{StartLine: begLine, StartCol: begCol, EndLine: line, EndCol: col},
	}
	node.Append(&ast.Node{
		Kind: ast.ShellIdent,
		Text: ident,
		Span: ast.Span{StartLine: line, StartCol: identCol, EndLine: line, EndCol: col},
	})
	return node, line, col, nil
}
