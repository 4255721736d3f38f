package domain

import (
	"strings"
	"unicode/utf8"
)

// Link is one non-blank input line. ID is its 0-based position among the
// surviving lines.
type Link struct {
	ID  int
	Raw string
}

// SplitLinks splits raw text into links. Blank (all-whitespace) lines are
// dropped and the remaining lines are numbered in their original order.
// A trailing carriage return is stripped so CRLF input behaves like LF input.
func SplitLinks(text string) []Link {
	if text == "" {
		return []Link{}
	}

	lines := strings.Split(text, "\n")
	out := make([]Link, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, Link{ID: len(out), Raw: line})
	}
	return out
}

// JoinLinks serializes items back to raw text, newline separated, in the given order.
func JoinLinks(items []ClassifiedItem) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(it.OriginalLink)
	}
	return b.String()
}

// Preview returns the first n runes of a link followed by "...".
func Preview(link string, n int) string {
	if n <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(link) <= n {
		return link + "..."
	}

	var b strings.Builder
	b.Grow(len(link))
	count := 0
	for _, r := range link {
		if count >= n {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String() + "..."
}
