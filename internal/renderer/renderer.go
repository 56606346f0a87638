// Package renderer composes the editor display: the text area (clear
// or scrambled) and the status line.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/therohithborana/cyphernote/internal/engine/session"
	"github.com/therohithborana/cyphernote/internal/renderer/backend"
)

// Renderer draws a session onto the terminal backend.
type Renderer struct {
	term *backend.Terminal

	// offsetY is the first visible buffer line, adjusted to keep the
	// caret on screen.
	offsetY int

	textStyle   tcell.Style
	hiddenStyle tcell.Style
	statusStyle tcell.Style
}

// New creates a renderer for the given backend.
func New(term *backend.Terminal) *Renderer {
	return &Renderer{
		term:        term,
		textStyle:   tcell.StyleDefault,
		hiddenStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// Draw renders the session and an optional transient status message,
// then flushes. The caret is positioned from the session's current
// offset.
func (r *Renderer) Draw(sess *session.Session, message string) {
	width, height := r.term.Size()
	if width <= 0 || height <= 0 {
		return
	}
	textHeight := height - 1

	text := sess.Text()
	caretLine, caretCol := CaretPosition(text, sess.Caret())
	r.scrollTo(caretLine, textHeight)

	style := r.textStyle
	if !sess.Revealed() {
		style = r.hiddenStyle
	}

	r.term.Clear()

	lines := VisibleLines(text, sess.Revealed())
	for row := 0; row < textHeight; row++ {
		idx := r.offsetY + row
		if idx >= len(lines) {
			break
		}
		drawString(r.term, 0, row, lines[idx], style, width)
	}

	r.drawStatus(sess, message, width, height-1)

	r.term.ShowCursor(caretCol, caretLine-r.offsetY)
	r.term.Show()
}

// scrollTo adjusts the vertical offset so the caret line is visible.
func (r *Renderer) scrollTo(caretLine, textHeight int) {
	if textHeight <= 0 {
		return
	}
	if caretLine < r.offsetY {
		r.offsetY = caretLine
	}
	if caretLine >= r.offsetY+textHeight {
		r.offsetY = caretLine - textHeight + 1
	}
}

func (r *Renderer) drawStatus(sess *session.Session, message string, width, row int) {
	visibility := "hidden"
	if sess.Revealed() {
		visibility = "revealed"
	}

	left := fmt.Sprintf(" cyphernote · %s · undo %d · redo %d · %d words ",
		visibility, sess.UndoDepth(), sess.RedoDepth(), sess.WordCount())
	if message != "" {
		left += "· " + message + " "
	}

	for x := 0; x < width; x++ {
		r.term.SetContent(x, row, ' ', r.statusStyle)
	}
	drawString(r.term, 0, row, left, r.statusStyle, width)
}

func drawString(term *backend.Terminal, x, y int, s string, style tcell.Style, maxWidth int) {
	for _, r := range s {
		if x >= maxWidth {
			break
		}
		term.SetContent(x, y, r, style)
		x++
	}
}
