// Package scramble implements the line-preserving obfuscation
// transform used for the hidden rendering of the buffer.
//
// Structural characters (whitespace, digits, and a fixed punctuation
// set) pass through unchanged so the shape of the text survives;
// every other character is replaced with a uniformly random printable
// ASCII character. The transform is deliberately non-deterministic:
// each render of the same line produces different noise, so repeated
// glances reveal nothing beyond structure.
package scramble

import (
	"math/rand"
	"strings"
	"unicode"
)

// Printable ASCII replacement range, inclusive.
const (
	printableMin = 33
	printableMax = 126
)

// IsStructural reports whether r is preserved verbatim by the
// transform: whitespace, digits, period, parentheses, brackets,
// braces, hyphen, asterisk, or the bullet glyph.
func IsStructural(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '.', '(', ')', '[', ']', '{', '}', '-', '*', '•':
		return true
	}
	return false
}

// Line scrambles a single line of text. The input must not contain
// newlines; lines are transformed independently.
func Line(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if IsStructural(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(byte(printableMin + rand.Intn(printableMax-printableMin+1)))
	}
	return b.String()
}

// Lines splits text on newlines and scrambles each line.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = Line(line)
	}
	return lines
}
