// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"

	"github.com/meshintel/helpdoc/pkg/ast"
)

// parseSection parses a title line followed by an indented body. The body
// is an argument list when its first line begins with '-', otherwise a
// paragraph at indent level 1.
func parseSection(lines []string, line, col int) (*ast.Node, int, int, *ParseError) {
	if line >= len(lines) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected section but reached end of input")
	}
	if IsIndented(lines[line], 1) {
		return nil, line, col, errAt(MissingSectionBody, line, col, "expected unindented section title")
	}
	title := strings.TrimSpace(lines[line])
	section := &ast.Node{
		Kind: ast.Section,
		Text: title,
		Span: ast.Span{StartLine: line, StartCol: col},
	}
	line++
	if line >= len(lines) || !IsIndented(lines[line], 1) {
		return nil, line, col, errAt(MissingSectionBody, line, col, "expected indented text after section title %q", title)
	}

	bodyCol := skipWhitespace(lines[line], 0)
	var (
		body    *ast.Node
		endLine int
		endCol  int
		err     *ParseError
	)
	if strings.HasPrefix(lines[line][bodyCol:], "-") {
		body, endLine, endCol, err = parseArgumentList(lines, line, bodyCol)
	} else {
		body, endLine, endCol, err = parseParagraph(lines, line, 0, 1)
	}
	if err != nil {
		return nil, line, col, err
	}
	section.Append(body)
	section.Span.EndLine, section.Span.EndCol = endLine, endCol
	return section, endLine, endCol, nil
}

// parseParagraph collects consecutive lines at the given indent level
// (blank lines included, trailing blanks trimmed). At indent level 0 a
// non-indented line that is directly followed by an indented line is a
// section title, not a paragraph line; one line of lookahead resolves
// the ambiguity.
func parseParagraph(lines []string, line, col, level int) (*ast.Node, int, int, *ParseError) {
	if line < len(lines) && isBlank(lines[line]) {
		line++
	}
	if line >= len(lines) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected paragraph but reached end of input")
	}
	if !IsIndented(lines[line], level) {
		return nil, line, col, errAt(MissingSectionBody, line, col, "expected paragraph indented to level %d", level)
	}
	para := &ast.Node{
		Kind: ast.Paragraph,
		Span: ast.Span{StartLine: line, StartCol: col},
	}
	for line < len(lines) && (IsIndented(lines[line], level) || isBlank(lines[line])) {
		if level == 0 && !isBlank(lines[line]) && !IsIndented(lines[line], 1) &&
			line+1 < len(lines) && IsIndented(lines[line+1], 1) {
			break
		}
		para.Append(ast.New(ast.TextLine, strings.TrimSpace(lines[line])))
		line++
	}
	for n := len(para.Children); n > 0 && para.Children[n-1].Text == ""; n-- {
		para.Children = para.Children[:n-1]
	}
	para.Span.EndLine = line - 1
	return para, line, 0, nil
}

// parseUsage parses the usage construct. Unlike ordinary sections it
// needs no following indent: text after the keyword (and an optional
// colon) on the same line is the usage text. When that remainder is
// empty, the text is collected from the following indented lines instead,
// newline-joined, with trailing blank lines trimmed.
func parseUsage(lines []string, line, col int) (*ast.Node, int, int, *ParseError) {
	if line >= len(lines) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected usage section but reached end of input")
	}
	if !isUsageKeyword(lines[line]) {
		return nil, line, col, errAt(MissingSectionBody, line, col, "expected usage keyword")
	}
	begLine := line
	s := lines[line]
	col += len("usage")
	col += skipWhitespace(s, col)
	if col < len(s) && s[col] == ':' {
		col++
	}
	col += skipWhitespace(s, col)
	text := strings.TrimSpace(s[col:])

	if text == "" {
		line++
		if line >= len(lines) || !IsIndented(lines[line], 1) {
			return nil, line, col, errAt(MissingSectionBody, line, col, "expected indented usage text after usage keyword")
		}
		text = strings.TrimSpace(lines[line])
		line++
		for line < len(lines) && (IsIndented(lines[line], 1) || isBlank(lines[line])) {
			text += "\n" + strings.TrimSpace(lines[line])
			line++
		}
		text = strings.TrimRight(text, " \t\n")
	} else {
		line++
	}
	node := &ast.Node{
		Kind: ast.Usage,
		Text: text,
		Span: ast.Span{StartLine: begLine, EndLine: line - 1},
	}
	return node, line, 0, nil
}

// parseCommandSection parses a command keyword title and its indented
// block of named sub-commands. Each block line splits on the first
// whitespace run into a name and optional description; a line indented a
// level deeper than the command lines becomes a nested sub-command of
// the preceding command. Nesting stops there.
func parseCommandSection(lines []string, line, col int) (*ast.Node, int, int, *ParseError) {
	if line >= len(lines) {
		return nil, line, col, errAt(UnexpectedEOF, line, col, "expected command section but reached end of input")
	}
	title := strings.TrimSpace(lines[line])
	section := &ast.Node{
		Kind: ast.CommandSection,
		Text: title,
		Span: ast.Span{StartLine: line, StartCol: col},
	}
	line++
	if line >= len(lines) || !IsIndented(lines[line], 1) {
		return nil, line, col, errAt(MissingSectionBody, line, col, "expected indented command list after %q", title)
	}

	baseWidth := indentWidth(lines[line])
	var last *ast.Node
	for line < len(lines) && (IsIndented(lines[line], 1) || isBlank(lines[line])) {
		if isBlank(lines[line]) {
			line++
			continue
		}
		nested := last != nil && IsIndented(lines[line], 2) && indentWidth(lines[line]) > baseWidth
		cmd := parseCommandLine(lines[line], line)
		if nested {
			last.Append(cmd)
		} else {
			section.Append(cmd)
			last = cmd
		}
		line++
	}
	if len(section.Children) == 0 {
		return nil, line, col, errAt(MissingSectionBody, line, col, "expected at least one command under %q", title)
	}
	section.Span.EndLine = line - 1
	return section, line, 0, nil
}

// parseCommandLine splits one command entry into its name and optional
// trailing description.
func parseCommandLine(s string, line int) *ast.Node {
	trimmed := strings.TrimSpace(s)
	name := trimmed
	desc := ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		name = trimmed[:i]
		desc = strings.TrimSpace(trimmed[i:])
	}
	cmd := &ast.Node{
		Kind: ast.Command,
		Text: name,
		Span: ast.Span{StartLine: line, StartCol: indentWidth(s), EndLine: line, EndCol: len(s)},
	}
	if desc != "" {
		cmd.Append(ast.New(ast.TextLine, desc))
	}
	return cmd
}
