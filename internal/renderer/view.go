package renderer

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/therohithborana/cyphernote/internal/engine/buffer"
	"github.com/therohithborana/cyphernote/internal/renderer/scramble"
)

// VisibleLines returns the lines to display for the given content.
// Hidden content is scrambled fresh on every call, so consecutive
// renders of the same buffer differ everywhere except structure.
func VisibleLines(text string, revealed bool) []string {
	if revealed {
		return strings.Split(text, "\n")
	}
	return scramble.Lines(text)
}

// CaretPosition converts a byte offset into screen line and column.
// The column is measured in display cells.
func CaretPosition(text string, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	line = strings.Count(text[:offset], "\n")
	start, _ := buffer.LineBounds(text, offset)
	col = runewidth.StringWidth(text[start:offset])
	return line, col
}
