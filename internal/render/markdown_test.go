// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"

	"github.com/meshintel/helpdoc/internal/parser"
	"github.com/meshintel/helpdoc/pkg/ast"
)

const demoHelp = `Usage: demo [globalOptions] <command>

Demo tool brief.

Options
    -h --help
        Show this help text.
    -o --output <outputFile>
        Write the result to outputFile.

Commands
    build  Build the project.
`

var demoMarkdown = strings.Join([]string{
	"# demo",
	"",
	"### Usage",
	"`demo [globalOptions] <command>`",
	"",
	"### Brief",
	"Demo tool brief.",
	"",
	"### Options",
	"`-h`  `--help` \\",
	"&nbsp;&nbsp;&nbsp;&nbsp;Show this help text.",
	"",
	"`-o`  `--output  <outputFile>` \\",
	"&nbsp;&nbsp;&nbsp;&nbsp;Write the result to outputFile.",
	"",
	"### Commands",
	"- `build` Build the project.",
	"",
}, "\n")

func mustParse(t *testing.T, text string) *ast.Node {
	t.Helper()
	doc, err := parser.Parse(text)
	require.NoError(t, err)
	return doc
}

func TestMarkdownFullDocument(t *testing.T) {
	got, err := Markdown(mustParse(t, demoHelp))
	require.NoError(t, err)
	assert.Equal(t, demoMarkdown, got)
}

func TestMarkdownDeterministic(t *testing.T) {
	doc := mustParse(t, demoHelp)
	first, err := Markdown(doc)
	require.NoError(t, err)
	second, err := Markdown(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMarkdownIsValidMarkdown(t *testing.T) {
	md, err := Markdown(mustParse(t, demoHelp))
	require.NoError(t, err)

	var html bytes.Buffer
	require.NoError(t, goldmark.Convert([]byte(md), &html))
	assert.Contains(t, html.String(), "<h1")
	assert.Contains(t, html.String(), "<h3")
	assert.Contains(t, html.String(), "<code>--output  &lt;outputFile&gt;</code>")
}

func TestMarkdownProseSection(t *testing.T) {
	input := strings.Join([]string{
		"Description",
		"    The tool scans the working tree",
		"    and prints a summary of changes.",
	}, "\n")
	want := strings.Join([]string{
		"### Description",
		"    The tool scans the working tree",
		"    and prints a summary of changes.",
		"",
	}, "\n")

	got, err := Markdown(mustParse(t, input))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarkdownUsageOnly(t *testing.T) {
	got, err := Markdown(mustParse(t, "Usage: solo <file>"))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"# solo",
		"",
		"### Usage",
		"`solo <file>`",
		"",
	}, "\n"), got)
}

func TestMarkdownMultilineUsage(t *testing.T) {
	input := "Usage:\n    tool build <target>\n    tool clean"
	got, err := Markdown(mustParse(t, input))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"# tool build",
		"",
		"### Usage",
		"`tool build <target>`",
		"",
		"`tool clean`",
		"",
	}, "\n"), got)
}

func TestMarkdownLaterParagraphIsNotBrief(t *testing.T) {
	input := strings.Join([]string{
		"Usage: tool",
		"",
		"The brief.",
		"",
		"Options",
		"    -q --quiet : say nothing",
		"",
		"A closing remark.",
	}, "\n")
	got, err := Markdown(mustParse(t, input))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(got, "### Brief"))
	assert.Contains(t, got, "A closing remark.")
	// The closing remark stays after the brief block and is not folded
	// into a second Brief heading.
	assert.Less(t, strings.Index(got, "The brief."), strings.Index(got, "A closing remark."))
}

func TestMarkdownBareFlagArgument(t *testing.T) {
	input := "Options\n    --name <id>"
	got, err := Markdown(mustParse(t, input))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"### Options",
		"`--name  <id>` ",
		"",
	}, "\n"), got)
}

func TestMarkdownNestedCommands(t *testing.T) {
	input := strings.Join([]string{
		"Commands",
		"    test   Run the tests.",
		"        unit  Run only unit tests.",
	}, "\n")
	got, err := Markdown(mustParse(t, input))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"### Commands",
		"- `test` Run the tests.",
		"    - `unit` Run only unit tests.",
		"",
	}, "\n"), got)
}

func TestMarkdownRejectsNonRoot(t *testing.T) {
	for _, doc := range []*ast.Node{nil, ast.New(ast.Paragraph, "")} {
		_, err := Markdown(doc)
		require.Error(t, err)
		rerr, ok := err.(*RenderError)
		require.True(t, ok, "error type %T", err)
		assert.Equal(t, MissingRootNode, rerr.Kind)
	}
}

func TestRenderArgumentRejectsForeignChild(t *testing.T) {
	arg := ast.New(ast.Argument, "")
	arg.Append(ast.New(ast.LongFlag, "")).Append(ast.New(ast.LongFlagIdent, "force"))
	arg.Append(ast.New(ast.Section, "bogus"))

	_, err := renderArgument(arg)
	require.Error(t, err)
	rerr, ok := err.(*RenderError)
	require.True(t, ok, "error type %T", err)
	assert.Equal(t, UnexpectedNode, rerr.Kind)
}
