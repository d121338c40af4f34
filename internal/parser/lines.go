// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parser turns raw command line help text into a document tree.
// It is a line-oriented recursive descent parser: there is no tokenizer
// step, each grammar production consumes from an explicit (line, column)
// cursor over the split input and returns the advanced cursor. Logical
// lines and indentation depth carry all of the structure.
package parser

import "strings"

// SplitLines splits text into logical lines. Line terminators are not
// kept; a trailing newline does not produce a final empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// isBlank reports whether the line is empty or whitespace only.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsIndented reports whether line starts at the given indent level. The
// notation tolerates three conventions at every nesting depth: 4·level
// spaces, 2·level spaces, or level tabs. Blank lines are never indented;
// level 0 requires that the line has no leading whitespace at all.
func IsIndented(line string, level int) bool {
	if isBlank(line) {
		return false
	}
	if level < 1 {
		return !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t")
	}
	return strings.HasPrefix(line, strings.Repeat(" ", 4*level)) ||
		strings.HasPrefix(line, strings.Repeat(" ", 2*level)) ||
		strings.HasPrefix(line, strings.Repeat("\t", level))
}

// indentWidth returns the number of leading space/tab characters.
func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// isUsageKeyword reports whether the line starts with the usage keyword,
// case-insensitively.
func isUsageKeyword(line string) bool {
	return len(line) >= len("usage") &&
		strings.EqualFold(line[:len("usage")], "usage")
}

// commandKeywords is ordered longest first so plural and hyphenated
// variants win the prefix match.
var commandKeywords = []string{
	"sub-commands",
	"subcommands",
	"sub-command",
	"subcommand",
	"commands",
	"command",
}

// commandKeywordLen returns the length of the command keyword prefix of
// line, or 0 when the line starts with none of the known variants.
func commandKeywordLen(line string) int {
	for _, kw := range commandKeywords {
		if len(line) >= len(kw) && strings.EqualFold(line[:len(kw)], kw) {
			return len(kw)
		}
	}
	return 0
}

// skipWhitespace returns the number of consecutive spaces/tabs in s
// starting at pos.
func skipWhitespace(s string, pos int) int {
	n := 0
	for pos+n < len(s) && (s[pos+n] == ' ' || s[pos+n] == '\t') {
		n++
	}
	return n
}

// startsWithAt reports whether s has the given prefix at pos, ignoring
// leading whitespace.
func startsWithAt(s, prefix string, pos int) bool {
	if pos > len(s) {
		return false
	}
	return strings.HasPrefix(s[pos+skipWhitespace(s, pos):], prefix)
}

func isAlpha(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlnumUnderscore(c byte) bool {
	return isAlpha(c) || ('0' <= c && c <= '9')
}

func isAlnumDash(c byte) bool {
	return isAlnumUnderscore(c) || c == '-'
}

func isHorizWS(c byte) bool {
	return c == ' ' || c == '\t'
}
