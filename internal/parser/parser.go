// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"github.com/meshintel/helpdoc/pkg/ast"
)

// Parse parses help text into a document tree. The grammar is flat at
// the top level: a single forward pass dispatches each construct, and
// the only speculation is one line of lookahead to tell a section title
// from a paragraph line. The first structural failure aborts the parse;
// there is no partial document.
func Parse(text string) (*ast.Node, error) {
	lines := SplitLines(text)
	root, err := parseDocument(lines)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseDocument(lines []string) (*ast.Node, *ParseError) {
	if len(lines) == 0 {
		return nil, errAt(UnexpectedEOF, 0, 0, "input is empty")
	}
	root := &ast.Node{Kind: ast.Root}
	line := 0
	for line < len(lines) {
		if isBlank(lines[line]) {
			line++
			continue
		}

		var (
			node *ast.Node
			err  *ParseError
		)
		switch {
		case isUsageKeyword(lines[line]):
			node, line, _, err = parseUsage(lines, line, 0)

		case commandKeywordLen(lines[line]) > 0 && nextIsIndented(lines, line):
			node, line, _, err = parseCommandSection(lines, line, 0)

		case nextIsIndented(lines, line):
			node, line, _, err = parseSection(lines, line, 0)

		default:
			node, line, _, err = parseParagraph(lines, line, 0, 0)
		}
		if err != nil {
			return nil, err
		}
		root.Append(node)

		for line < len(lines) && isBlank(lines[line]) {
			line++
		}
	}
	if len(root.Children) == 0 {
		return nil, errAt(UnexpectedEOF, 0, 0, "input is empty")
	}
	root.Span.EndLine = len(lines) - 1
	return root, nil
}

// nextIsIndented reports whether the line after the current one exists
// and is an indented, non-blank line: the lookahead that marks the
// current line as a section (or command section) title.
func nextIsIndented(lines []string, line int) bool {
	return line+1 < len(lines) && IsIndented(lines[line+1], 1)
}
