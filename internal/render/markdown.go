// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a parsed help text document tree into Markdown.
// Rendering is a pure traversal: the same tree always produces the same
// string, and the renderer fails rather than silently skipping content
// it does not recognize.
package render

import (
	"fmt"
	"strings"

	"github.com/meshintel/helpdoc/pkg/ast"
)

// ErrKind classifies a render failure.
type ErrKind int

const (
	// MissingRootNode means the renderer was handed a tree whose top
	// node is not a document root. This is a usage error by the caller.
	MissingRootNode ErrKind = iota

	// UnexpectedNode means a node of an impossible kind appeared where
	// the document invariants forbid it.
	UnexpectedNode
)

// RenderError reports a failed render with the source position of the
// offending node, one-based.
type RenderError struct {
	Kind ErrKind
	Msg  string
	Line int
	Col  int
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

func errNode(kind ErrKind, n *ast.Node, format string, args ...interface{}) *RenderError {
	return &RenderError{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Line: n.Span.StartLine + 1,
		Col:  n.Span.StartCol + 1,
	}
}

// descIndent is the continuation marker for argument description lines:
// a hard line break followed by a four-space visual indent.
const descIndent = "\\\n&nbsp;&nbsp;&nbsp;&nbsp;"

// Markdown renders a parsed document to a Markdown string. Emission
// order: document title and usage lines first, then the brief (the first
// root paragraph that precedes any section), then every section in
// source order.
func Markdown(doc *ast.Node) (string, error) {
	if doc == nil || doc.Kind != ast.Root {
		n := doc
		if n == nil {
			n = &ast.Node{}
		}
		return "", errNode(MissingRootNode, n, "expected document root node, got %s", n.Kind)
	}

	var out []string

	// Usage lines collect under a single heading; the title comes from
	// the first usage text, cut at the first flag or placeholder marker.
	titled := false
	for _, br := range doc.Children {
		if br.Kind != ast.Usage || strings.TrimSpace(br.Text) == "" {
			continue
		}
		if !titled {
			if title := usageTitle(br.Text); title != "" {
				out = append(out, "# "+title+"\n")
			}
			out = append(out, "### Usage")
			titled = true
		}
		for _, ln := range strings.Split(br.Text, "\n") {
			if strings.TrimSpace(ln) != "" {
				out = append(out, "`"+strings.TrimSpace(ln)+"`\n")
			}
		}
	}

	// The first root paragraph before any section is the brief; later
	// root paragraphs render as plain text blocks.
	sawSection := false
	sawBrief := false
	for _, br := range doc.Children {
		switch br.Kind {
		case ast.Paragraph:
			if !sawSection && !sawBrief {
				out = append(out, "### Brief")
				sawBrief = true
			}
			for _, ln := range br.Children {
				out = append(out, strings.TrimSpace(ln.Text))
			}
			out = append(out, "")
		case ast.Section, ast.CommandSection:
			sawSection = true
		}
	}

	for _, br := range doc.Children {
		switch br.Kind {
		case ast.Section:
			rendered, err := renderSection(br)
			if err != nil {
				return "", err
			}
			out = append(out, rendered...)
		case ast.CommandSection:
			out = append(out, renderCommandSection(br)...)
		}
	}

	return strings.Join(out, "\n"), nil
}

// usageTitle extracts the document title from the first usage line: the
// text up to, but not including, the first flag or placeholder marker.
func usageTitle(usage string) string {
	first, _, _ := strings.Cut(usage, "\n")
	var b strings.Builder
	for _, ch := range first {
		switch {
		case ch == '-' || ch == '[' || ch == '<':
			return strings.TrimSpace(b.String())
		case ch == ' ' || ch == '\t':
			b.WriteByte(' ')
		default:
			b.WriteRune(ch)
		}
	}
	return strings.TrimSpace(b.String())
}

func renderSection(section *ast.Node) ([]string, error) {
	var out []string
	if strings.TrimSpace(section.Text) != "" {
		out = append(out, "### "+strings.TrimSpace(section.Text))
	}
	if len(section.Children) == 0 {
		return nil, errNode(UnexpectedNode, section, "section %q has no body", section.Text)
	}
	switch body := section.Children[0]; body.Kind {
	case ast.Paragraph:
		for _, ln := range body.Children {
			out = append(out, "    "+strings.TrimSpace(ln.Text))
		}
		out = append(out, "")
	case ast.ArgumentList:
		for _, arg := range body.Children {
			rendered, err := renderArgument(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, rendered, "")
		}
	default:
		return nil, errNode(UnexpectedNode, body, "unexpected %s inside section %q", body.Kind, section.Text)
	}
	return out, nil
}

// renderArgument renders one argument definition as a single Markdown
// entry: flag tokens in code spans in declaration order, the positional
// placeholder merged into the last long flag's span, and description
// lines on indented continuations.
func renderArgument(arg *ast.Node) (string, error) {
	if arg.Kind != ast.Argument {
		return "", errNode(UnexpectedNode, arg, "expected argument node, got %s", arg.Kind)
	}
	if len(arg.Children) == 0 {
		return "", errNode(UnexpectedNode, arg, "argument node has no children")
	}

	var b strings.Builder
	i := 0
	if arg.Children[i].Kind == ast.ShortFlag {
		b.WriteString("`-" + arg.Children[i].Children[0].Text + "` ")
		i++
	}

	longOpen := false
	for i < len(arg.Children) && arg.Children[i].Kind == ast.LongFlag {
		if longOpen {
			b.WriteString("` ")
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("`--" + arg.Children[i].Children[0].Text)
		longOpen = true
		i++
	}

	positional := false
	for i < len(arg.Children) &&
		(arg.Children[i].Kind == ast.OptionalArg || arg.Children[i].Kind == ast.RequiredArg) {
		positional = true
		ident := arg.Children[i].Children[0].Text
		marker := "[" + ident + "]"
		if arg.Children[i].Kind == ast.RequiredArg {
			marker = "<" + ident + ">"
		}
		if longOpen {
			b.WriteString("  " + marker + "` ")
			longOpen = false
		} else {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString("`" + marker + "` ")
		}
		i++
	}
	if longOpen && !positional {
		b.WriteString("` ")
	}

	if i < len(arg.Children) && arg.Children[i].Kind != ast.TextLine {
		return "", errNode(UnexpectedNode, arg.Children[i],
			"unexpected %s inside argument", arg.Children[i].Kind)
	}

	var desc strings.Builder
	for _, child := range arg.Children {
		if child.Kind == ast.TextLine {
			desc.WriteString(descIndent + strings.TrimSpace(child.Text))
		}
	}
	if strings.TrimSpace(desc.String()) != "" {
		b.WriteString(desc.String())
	}
	return b.String(), nil
}

// renderCommandSection renders a command list as Markdown bullets, one
// per command, nested sub-commands indented beneath their parent.
func renderCommandSection(section *ast.Node) []string {
	out := []string{"### " + strings.TrimSpace(section.Text)}
	for _, cmd := range section.Children {
		out = append(out, renderCommand(cmd, "")...)
	}
	out = append(out, "")
	return out
}

func renderCommand(cmd *ast.Node, indent string) []string {
	line := indent + "- `" + cmd.Text + "`"
	var nested []*ast.Node
	for _, child := range cmd.Children {
		switch child.Kind {
		case ast.TextLine:
			line += " " + strings.TrimSpace(child.Text)
		case ast.Command:
			nested = append(nested, child)
		}
	}
	out := []string{line}
	for _, sub := range nested {
		out = append(out, renderCommand(sub, indent+"    ")...)
	}
	return out
}
