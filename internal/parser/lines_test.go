// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single no newline", "one", []string{"one"}},
		{"single with newline", "one\n", []string{"one"}},
		{"two lines", "one\ntwo\n", []string{"one", "two"}},
		{"crlf normalized", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"interior blank kept", "one\n\ntwo", []string{"one", "", "two"}},
		{"only newline", "\n", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIndented(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		level int
		want  bool
	}{
		{"level 0 no indent", "text", 0, true},
		{"level 0 leading space", " text", 0, false},
		{"level 0 leading tab", "\ttext", 0, false},
		{"level 1 four spaces", "    text", 1, true},
		{"level 1 two spaces", "  text", 1, true},
		{"level 1 one tab", "\ttext", 1, true},
		{"level 1 one space", " text", 1, false},
		{"level 1 none", "text", 1, false},
		{"level 2 eight spaces", "        text", 2, true},
		{"level 2 four spaces", "    text", 2, true},
		{"level 2 two tabs", "\t\ttext", 2, true},
		{"level 2 one tab", "\ttext", 2, false},
		{"level 2 three spaces", "   text", 2, false},
		{"blank never indented", "    ", 1, false},
		{"empty never indented", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIndented(tt.line, tt.level); got != tt.want {
				t.Errorf("IsIndented(%q, %d) = %v, want %v", tt.line, tt.level, got, tt.want)
			}
		})
	}
}

func TestIndentWidth(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"text", 0},
		{"    text", 4},
		{"\ttext", 1},
		{" \t text", 3},
		{"", 0},
	}
	for _, tt := range tests {
		if got := indentWidth(tt.line); got != tt.want {
			t.Errorf("indentWidth(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestIsUsageKeyword(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"usage: tool", true},
		{"Usage: tool", true},
		{"USAGE", true},
		{"usage", true},
		{"usag", false},
		{"use: tool", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isUsageKeyword(tt.line); got != tt.want {
			t.Errorf("isUsageKeyword(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestCommandKeywordLen(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"Commands", len("commands")},
		{"commands:", len("commands")},
		{"Command", len("command")},
		{"Sub-Commands", len("sub-commands")},
		{"subcommands", len("subcommands")},
		{"Sub-command", len("sub-command")},
		{"Options", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := commandKeywordLen(tt.line); got != tt.want {
			t.Errorf("commandKeywordLen(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestStartsWithAt(t *testing.T) {
	tests := []struct {
		s      string
		prefix string
		pos    int
		want   bool
	}{
		{"  --flag", "--", 0, true},
		{"  --flag", "--", 2, true},
		{"--flag", "-", 0, true},
		{"flag", "--", 0, false},
		{"  ", "-", 0, false},
		{"-f", "--", 0, false},
	}
	for _, tt := range tests {
		if got := startsWithAt(tt.s, tt.prefix, tt.pos); got != tt.want {
			t.Errorf("startsWithAt(%q, %q, %d) = %v, want %v", tt.s, tt.prefix, tt.pos, got, tt.want)
		}
	}
}
