// Package ast defines the document tree produced by parsing command line
// help text and consumed by the Markdown renderer. Nodes form a simple
// parent-owns-children tree; once a parse returns, the tree is never
// mutated.
package ast

// Kind identifies what a Node represents. There is no tokenizer step, so
// token-like kinds (ShortFlag, ShellIdent, ...) and structural kinds
// (Section, ArgumentList, ...) share the same enumeration.
type Kind int

const (
	// Nothing is the zero value; it never appears in a returned tree.
	Nothing Kind = iota

	// Poison carries an error message in Text. It is only ever a
	// standalone node, never a child of a successful tree.
	Poison

	// Root is the single top node of a parsed document.
	Root

	// Usage holds the usage text, possibly multiple newline-joined lines.
	Usage

	// Section is a titled block whose single child is either an
	// ArgumentList or a Paragraph. Text holds the title.
	Section

	// CommandSection is a titled block listing named sub-commands.
	CommandSection

	// Command is one entry of a CommandSection: Text holds the command
	// name, children hold an optional TextLine description and any
	// nested Command entries.
	Command

	// Paragraph groups consecutive TextLine children.
	Paragraph

	// TextLine is a single line of prose, leading/trailing space trimmed.
	TextLine

	// ShellIdent is the identifier inside a placeholder.
	ShellIdent

	// ShortFlag wraps a ShortFlagIdent, e.g. -f.
	ShortFlag

	// ShortFlagIdent is the single-character short flag name.
	ShortFlagIdent

	// LongFlag wraps a LongFlagIdent, e.g. --force.
	LongFlag

	// LongFlagIdent is the long flag name without the dashes.
	LongFlagIdent

	// OptionalArg is a [name] placeholder wrapping one ShellIdent.
	OptionalArg

	// RequiredArg is a <name> placeholder wrapping one ShellIdent.
	RequiredArg

	// Argument is one flag definition: optional ShortFlag, LongFlags,
	// optional placeholder, trailing TextLine description lines.
	Argument

	// ArgumentList groups one or more Argument children.
	ArgumentList
)

var kindNames = map[Kind]string{
	Nothing:        "Nothing",
	Poison:         "Poison",
	Root:           "Root",
	Usage:          "Usage",
	Section:        "Section",
	CommandSection: "CommandSection",
	Command:        "Command",
	Paragraph:      "Paragraph",
	TextLine:       "TextLine",
	ShellIdent:     "ShellIdent",
	ShortFlag:      "ShortFlag",
	ShortFlagIdent: "ShortFlagIdent",
	LongFlag:       "LongFlag",
	LongFlagIdent:  "LongFlagIdent",
	OptionalArg:    "OptionalArg",
	RequiredArg:    "RequiredArg",
	Argument:       "Argument",
	ArgumentList:   "ArgumentList",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MarshalYAML emits the kind name rather than its numeric value, so raw
// tree dumps stay readable.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Span records where a node started and ended in the source text.
// Lines and columns are zero-based; diagnostics convert to one-based at
// the reporting boundary. Spans are excluded from structural equality.
type Span struct {
	StartLine int `yaml:"-"`
	StartCol  int `yaml:"-"`
	EndLine   int `yaml:"-"`
	EndCol    int `yaml:"-"`
}

// Node is one node of the document tree. Text is only meaningful for
// leaf-like kinds (titles, identifiers, prose lines); child order is
// significant and reflects source order.
type Node struct {
	Kind     Kind    `yaml:"kind"`
	Text     string  `yaml:"text,omitempty"`
	Span     Span    `yaml:"-"`
	Children []*Node `yaml:"children,omitempty"`
}

// New returns a node with the given kind and text and no children.
func New(kind Kind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// Append adds child to n and returns the child.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Equal reports structural equality: kind, text, and children, in order.
// Spans are ignored so trees parsed from differently-indented sources can
// still compare equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, c := range n.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
