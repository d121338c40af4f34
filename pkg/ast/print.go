package ast

import (
	"fmt"
	"strings"
)

// Sprint renders the tree as a compact indented listing, one node per
// line, `└── `-connected. Intended for debugging output.
func Sprint(n *Node) string {
	var b strings.Builder
	sprintNode(&b, n, 0)
	return b.String()
}

func sprintNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("    ", depth)
	connector := ""
	if depth > 0 {
		connector = "└── "
	}
	fmt.Fprintf(b, "%s%s%s\n", indent, connector, label(n))
	if n.Span.StartLine > 0 {
		fmt.Fprintf(b, "%s    [L%d:%d-L%d:%d]\n", indent,
			n.Span.StartLine, n.Span.StartCol, n.Span.EndLine, n.Span.EndCol)
	}
	for _, c := range n.Children {
		sprintNode(b, c, depth+1)
	}
}

// SprintFancy renders the tree with each node boxed and connector lines
// between parent and child boxes.
func SprintFancy(n *Node) string {
	var b strings.Builder
	sprintFancy(&b, n, "")
	return b.String()
}

func sprintFancy(b *strings.Builder, n *Node, prefix string) {
	if n == nil {
		return
	}
	lines := strings.Split(label(n), "\n")
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	fmt.Fprintf(b, "%s┌%s┐\n", prefix, strings.Repeat("─", width+2))
	for _, line := range lines {
		fmt.Fprintf(b, "%s│ %-*s │\n", prefix, width, line)
	}
	fmt.Fprintf(b, "%s└%s┘\n", prefix, strings.Repeat("─", width+2))

	for i, child := range n.Children {
		last := i == len(n.Children)-1
		fmt.Fprintf(b, "%s    │\n", prefix)
		childPrefix := prefix + "    │         "
		if last {
			fmt.Fprintf(b, "%s    └──────────┐\n", prefix)
			childPrefix = prefix + "             "
		} else {
			fmt.Fprintf(b, "%s    ├──────────┐\n", prefix)
		}
		sprintFancy(b, child, childPrefix)
	}
}

func label(n *Node) string {
	if n.Text != "" {
		return n.Kind.String() + ": " + n.Text
	}
	return n.Kind.String()
}
