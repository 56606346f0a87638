package list

import (
	"strings"

	"github.com/therohithborana/cyphernote/internal/engine/buffer"
)

// Result describes the outcome of a structural edit: the replacement
// buffer text and the caret offset to restore once the surface has
// adopted it. Handled is false when the edit does not apply and the
// caller should fall through to plain text entry.
type Result struct {
	Text    string
	Caret   int
	Handled bool
}

// InsertBullet inserts a bullet token (glyph plus a single space) at
// the caret. The caret lands after the token.
func InsertBullet(text string, caret int, glyph string) Result {
	if glyph == "" {
		glyph = DefaultBulletGlyph
	}
	token := glyph + " "
	caret = clampOffset(text, caret)
	return Result{
		Text:    text[:caret] + token + text[caret:],
		Caret:   caret + len(token),
		Handled: true,
	}
}

// InsertNumbered inserts the first-item numbered marker "1. " at the
// caret. The caret lands after the token.
func InsertNumbered(text string, caret int) Result {
	const token = "1. "
	caret = clampOffset(text, caret)
	return Result{
		Text:    text[:caret] + token + text[caret:],
		Caret:   caret + len(token),
		Handled: true,
	}
}

// Continue handles Enter on a list line. Only the line containing the
// caret is inspected.
//
// An empty item (the line's trimmed content is exactly the marker)
// exits the list: everything from the line start to the caret is
// deleted and no newline is inserted. Otherwise a newline, the same
// indentation, and the continuation marker are inserted, with the
// caret placed right after the marker.
func Continue(text string, caret int) Result {
	caret = clampOffset(text, caret)
	start, end := buffer.LineBounds(text, caret)
	line := text[start:end]

	m, ok := ParseMarker(line)
	if !ok {
		return Result{}
	}

	if strings.TrimSpace(line) == strings.TrimSpace(m.Token()) {
		// Empty item: remove the marker instead of continuing.
		return Result{
			Text:    text[:start] + text[caret:],
			Caret:   start,
			Handled: true,
		}
	}

	insertion := "\n" + m.Indent + m.NextToken()
	return Result{
		Text:    text[:caret] + insertion + text[caret:],
		Caret:   caret + len(insertion),
		Handled: true,
	}
}

func clampOffset(text string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(text) {
		return len(text)
	}
	return offset
}
