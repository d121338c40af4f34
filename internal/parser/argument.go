// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"

	"github.com/meshintel/helpdoc/pkg/ast"
)

// parseArgument parses one CLI argument definition: an optional short
// flag, zero or more long flags (at least one flag in total), an optional
// placeholder, then the description. The description is either the text
// after a ':' on the same line, plain trailing text, or a hanging block
// of deeper-indented continuation lines; a bare flag with no description
// at all is also valid.
func parseArgument(lines []string, line, col int) (*ast.Node, int, int, *ParseError) {
	if line >= len(lines) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected argument but reached end of input")
	}
	node := &ast.Node{
		Kind: ast.Argument,
		Span: ast.Span{StartLine: line, StartCol: col},
	}
	argWidth := indentWidth(lines[line])
	hasFlag := false

	if startsWithAt(lines[line], "-", col) && !startsWithAt(lines[line], "--", col) {
		flag, endLine, endCol, err := parseShortFlag(lines, line, col)
		if err != nil {
			return nil, line, col, err
		}
		node.Append(flag)
		line, col = endLine, endCol
		col += skipWhitespace(lines[line], col)
		if col < len(lines[line]) && lines[line][col] == ',' {
			col++
		}
		col += skipWhitespace(lines[line], col)
		hasFlag = true
	}

	for startsWithAt(lines[line], "--", col) {
		flag, endLine, endCol, err := parseLongFlag(lines, line, col)
		if err != nil {
			return nil, line, col, err
		}
		node.Append(flag)
		line, col = endLine, endCol
		col += skipWhitespace(lines[line], col)
		if col < len(lines[line]) && lines[line][col] == ',' {
			col++
			col += skipWhitespace(lines[line], col)
		}
		hasFlag = true
	}

	if !hasFlag {
		return nil, line, col, errAt(MalformedFlag, line, col, "expected at least one flag")
	}

	if startsWithAt(lines[line], "[", col) {
		arg, endLine, endCol, err := parsePlaceholder(lines, line, col, ast.OptionalArg)
		if err != nil {
			return nil, line, col, err
		}
		node.Append(arg)
		line, col = endLine, endCol
		col += skipWhitespace(lines[line], col)
	} else if startsWithAt(lines[line], "<", col) {
		arg, endLine, endCol, err := parsePlaceholder(lines, line, col, ast.RequiredArg)
		if err != nil {
			return nil, line, col, err
		}
		node.Append(arg)
		line, col = endLine, endCol
		col += skipWhitespace(lines[line], col)
	}

	// Inline description after ':'.
	if startsWithAt(lines[line], ":", col) {
		col += skipWhitespace(lines[line], col) + 1
		col += skipWhitespace(lines[line], col)
		text := strings.TrimSpace(lines[line][col:])
		if text == "" {
			return nil, line, col, errAt(MissingArgDescription, line, col, "expected argument description text after ':'")
		}
		node.Append(ast.New(ast.TextLine, text))
		node.Span.EndLine, node.Span.EndCol = line, len(lines[line])
		return node, line + 1, 0, nil
	}

	// Plain trailing text on the flag line.
	if text := strings.TrimSpace(lines[line][col:]); text != "" {
		node.Append(ast.New(ast.TextLine, text))
		node.Span.EndLine, node.Span.EndCol = line, len(lines[line])
		return node, line + 1, 0, nil
	}

	// Hanging description: one or more lines indented a level deeper than
	// the argument line itself.
	next := line + 1
	if next < len(lines) && IsIndented(lines[next], 2) && indentWidth(lines[next]) > argWidth {
		line = next
		for line < len(lines) && IsIndented(lines[line], 2) && indentWidth(lines[line]) > argWidth {
			node.Append(ast.New(ast.TextLine, strings.TrimSpace(lines[line])))
			line++
		}
		node.Span.EndLine, node.Span.EndCol = line-1, len(lines[line-1])
		return node, line, 0, nil
	}

	// No description at all: a bare flag is valid.
	node.Span.EndLine, node.Span.EndCol = line, len(lines[line])
	return node, line + 1, 0, nil
}

// parseArgumentList parses consecutive argument lines, skipping blank
// separator lines between them, until a line no longer begins with '-'.
func parseArgumentList(lines []string, line, col int) (*ast.Node, int, int, *ParseError) {
	node := &ast.Node{
		Kind: ast.ArgumentList,
		Span: ast.Span{StartLine: line, StartCol: col},
	}
	for line < len(lines) && startsWithAt(lines[line], "-", 0) {
		arg, endLine, _, err := parseArgument(lines, line, col)
		if err != nil {
			return nil, line, col, err
		}
		node.Append(arg)
		line, col = endLine, 0
		for line < len(lines) && isBlank(lines[line]) {
			line++
		}
	}
	if len(node.Children) == 0 {
		return nil, line, col, errAt(MalformedFlag, line, col, "expected argument list beginning with '-'")
	}
	node.Span.EndLine = line - 1
	return node, line, 0, nil
}
