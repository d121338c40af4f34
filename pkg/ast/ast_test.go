package ast

import (
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Root, "Root"},
		{Usage, "Usage"},
		{ArgumentList, "ArgumentList"},
		{ShortFlagIdent, "ShortFlagIdent"},
		{Kind(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := New(Section, "Options")
	a.Span = Span{StartLine: 3, StartCol: 0, EndLine: 5, EndCol: 12}
	a.Append(New(TextLine, "text"))

	b := New(Section, "Options")
	b.Append(New(TextLine, "text"))

	if !a.Equal(b) {
		t.Error("trees differing only in spans compare unequal")
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	base := func() *Node {
		n := New(Section, "Options")
		n.Append(New(TextLine, "text"))
		return n
	}

	kindDiff := base()
	kindDiff.Kind = CommandSection

	textDiff := base()
	textDiff.Children[0].Text = "other"

	extraChild := base()
	extraChild.Append(New(TextLine, "more"))

	for name, other := range map[string]*Node{
		"kind": kindDiff, "child text": textDiff, "child count": extraChild,
	} {
		if base().Equal(other) {
			t.Errorf("trees differing in %s compare equal", name)
		}
	}
}

func TestEqualNil(t *testing.T) {
	var nilNode *Node
	if !nilNode.Equal(nil) {
		t.Error("nil.Equal(nil) = false")
	}
	if New(Root, "").Equal(nil) {
		t.Error("node.Equal(nil) = true")
	}
	if nilNode.Equal(New(Root, "")) {
		t.Error("nil.Equal(node) = true")
	}
}

func TestYAMLMarshal(t *testing.T) {
	doc := New(Root, "")
	doc.Span = Span{StartLine: 0, EndLine: 2}
	usage := doc.Append(New(Usage, "tool <file>"))
	usage.Span = Span{StartLine: 0, EndLine: 0}

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("yaml.Marshal error: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "kind: Root") {
		t.Errorf("marshaled YAML missing kind name:\n%s", out)
	}
	if !strings.Contains(out, "kind: Usage") {
		t.Errorf("marshaled YAML missing child kind name:\n%s", out)
	}
	if !strings.Contains(out, "text: tool <file>") {
		t.Errorf("marshaled YAML missing text:\n%s", out)
	}
	if strings.Contains(out, "startline") || strings.Contains(out, "span") {
		t.Errorf("marshaled YAML leaks span fields:\n%s", out)
	}
}

func TestSprint(t *testing.T) {
	doc := New(Root, "")
	doc.Append(New(Usage, "tool <file>"))

	out := Sprint(doc)
	if !strings.Contains(out, "Root") {
		t.Errorf("Sprint output missing root label:\n%s", out)
	}
	if !strings.Contains(out, "└── Usage: tool <file>") {
		t.Errorf("Sprint output missing connected child label:\n%s", out)
	}
}

func TestSprintFancy(t *testing.T) {
	doc := New(Root, "")
	doc.Append(New(Usage, "tool <file>"))

	out := SprintFancy(doc)
	for _, want := range []string{"Root", "Usage: tool <file>", "┌", "└"} {
		if !strings.Contains(out, want) {
			t.Errorf("SprintFancy output missing %q:\n%s", want, out)
		}
	}
}
