package session

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/therohithborana/cyphernote/internal/engine/buffer"
	"github.com/therohithborana/cyphernote/internal/engine/caret"
	"github.com/therohithborana/cyphernote/internal/engine/history"
	"github.com/therohithborana/cyphernote/internal/engine/list"
)

// Session owns the editor state for one document: buffer, history,
// caret, and the reveal flag. There are no globals; callers hold the
// session and thread it through explicitly.
//
// A session is driven from the single event loop and is not safe for
// concurrent use. The buffer and history carry their own guards.
type Session struct {
	id   string
	buf  *buffer.Buffer
	hist *history.History

	caret    caret.Caret
	revealed bool

	bulletGlyph string

	// Structural edits set a pending caret which the surface applies
	// only after it has adopted the new buffer content.
	pendingCaret int
	hasPending   bool
}

// Option configures a Session.
type Option func(*Session)

// WithBulletGlyph sets the glyph used for inserted bullet markers.
func WithBulletGlyph(glyph string) Option {
	return func(s *Session) {
		if glyph != "" {
			s.bulletGlyph = glyph
		}
	}
}

// WithRevealed sets the initial reveal state.
func WithRevealed(revealed bool) Option {
	return func(s *Session) {
		s.revealed = revealed
	}
}

// New creates an empty editor session.
func New(opts ...Option) *Session {
	s := &Session{
		id:          uuid.NewString(),
		buf:         buffer.New(),
		hist:        history.New(),
		bulletGlyph: list.DefaultBulletGlyph,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Text returns the current buffer content.
func (s *Session) Text() string {
	return s.buf.Text()
}

// Lines returns the buffer content split into lines.
func (s *Session) Lines() []string {
	return s.buf.Lines()
}

// Caret returns the current caret offset.
func (s *Session) Caret() int {
	return s.caret.Offset()
}

// SetCaret moves the caret, clamped to the buffer bounds.
func (s *Session) SetCaret(offset int) {
	s.caret = caret.New(offset).Clamp(s.buf.Len())
}

// Revealed returns true when content is displayed in the clear.
func (s *Session) Revealed() bool {
	return s.revealed
}

// ToggleReveal flips the reveal flag and returns the new value.
// Visibility is orthogonal to content and never enters the history.
func (s *Session) ToggleReveal() bool {
	s.revealed = !s.revealed
	return s.revealed
}

// SetBulletGlyph changes the glyph used for inserted bullet markers.
// Unrecognized glyphs keep the current setting.
func (s *Session) SetBulletGlyph(glyph string) {
	switch glyph {
	case "-", "*", "•":
		s.bulletGlyph = glyph
	}
}

// UndoDepth returns the number of undo snapshots available.
func (s *Session) UndoDepth() int {
	return s.hist.UndoDepth()
}

// RedoDepth returns the number of redo snapshots available.
func (s *Session) RedoDepth() int {
	return s.hist.RedoDepth()
}

// Replace applies a raw full-buffer replacement from the editing
// surface as one recorded step, placing the caret at caretAfter.
func (s *Session) Replace(newText string, caretAfter int) {
	s.hist.RecordAndSet(s.buf, newText)
	s.SetCaret(caretAfter)
}

// InsertString inserts text at the caret as one recorded step.
func (s *Session) InsertString(text string) {
	if text == "" {
		return
	}
	cur := s.buf.Text()
	at := s.caret.Clamp(len(cur)).Offset()
	s.hist.RecordAndSet(s.buf, cur[:at]+text+cur[at:])
	s.caret = caret.New(at + len(text))
}

// InsertRune inserts a single character at the caret.
func (s *Session) InsertRune(r rune) {
	s.InsertString(string(r))
}

// DeleteBack removes the rune before the caret. No-op at the start of
// the buffer.
func (s *Session) DeleteBack() {
	cur := s.buf.Text()
	at := s.caret.Clamp(len(cur)).Offset()
	if at == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(cur[:at])
	s.hist.RecordAndSet(s.buf, cur[:at-size]+cur[at:])
	s.caret = caret.New(at - size)
}

// DeleteForward removes the rune after the caret. No-op at the end of
// the buffer.
func (s *Session) DeleteForward() {
	cur := s.buf.Text()
	at := s.caret.Clamp(len(cur)).Offset()
	if at >= len(cur) {
		return
	}
	_, size := utf8.DecodeRuneInString(cur[at:])
	s.hist.RecordAndSet(s.buf, cur[:at]+cur[at+size:])
}

// InsertBullet inserts a bullet marker at the caret as a structural
// edit with deferred caret placement.
func (s *Session) InsertBullet() {
	r := list.InsertBullet(s.buf.Text(), s.caret.Offset(), s.bulletGlyph)
	s.applyStructural(r)
}

// InsertNumbered inserts the "1. " marker at the caret.
func (s *Session) InsertNumbered() {
	r := list.InsertNumbered(s.buf.Text(), s.caret.Offset())
	s.applyStructural(r)
}

// HandleEnter processes the Enter key. On a list line the list editor
// continues (or exits) the list as one structural step; anywhere else
// a plain newline is inserted.
func (s *Session) HandleEnter() {
	r := list.Continue(s.buf.Text(), s.caret.Offset())
	if !r.Handled {
		s.InsertString("\n")
		return
	}
	s.applyStructural(r)
}

// applyStructural records a list-editor result and parks the caret
// for deferred placement. The caret value itself is updated too so
// reads between apply and sync stay coherent.
func (s *Session) applyStructural(r list.Result) {
	s.hist.RecordAndSet(s.buf, r.Text)
	s.caret = caret.New(r.Caret)
	s.pendingCaret = r.Caret
	s.hasPending = true
}

// TakePendingCaret returns the caret offset awaiting placement, if
// any, and clears it. The surface calls this after it has observably
// adopted the new buffer content.
func (s *Session) TakePendingCaret() (int, bool) {
	if !s.hasPending {
		return 0, false
	}
	s.hasPending = false
	return s.pendingCaret, true
}

// Undo restores the previous snapshot. The caret is clamped to the
// restored content. Returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	if !s.hist.Undo(s.buf) {
		return false
	}
	s.caret = s.caret.Clamp(s.buf.Len())
	return true
}

// Redo restores the most recently undone snapshot.
func (s *Session) Redo() bool {
	if !s.hist.Redo(s.buf) {
		return false
	}
	s.caret = s.caret.Clamp(s.buf.Len())
	return true
}

// Clear wipes the buffer and all history. Not undoable.
func (s *Session) Clear() {
	s.hist.Clear(s.buf)
	s.caret = caret.New(0)
	s.hasPending = false
}

// MoveLeft moves the caret one rune left.
func (s *Session) MoveLeft() {
	cur := s.buf.Text()
	at := s.caret.Clamp(len(cur)).Offset()
	if at == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(cur[:at])
	s.caret = caret.New(at - size)
}

// MoveRight moves the caret one rune right.
func (s *Session) MoveRight() {
	cur := s.buf.Text()
	at := s.caret.Clamp(len(cur)).Offset()
	if at >= len(cur) {
		return
	}
	_, size := utf8.DecodeRuneInString(cur[at:])
	s.caret = caret.New(at + size)
}

// MoveLineStart moves the caret to the start of its line.
func (s *Session) MoveLineStart() {
	start, _ := s.buf.LineBoundsAt(s.caret.Offset())
	s.caret = caret.New(start)
}

// MoveLineEnd moves the caret to the end of its line.
func (s *Session) MoveLineEnd() {
	_, end := s.buf.LineBoundsAt(s.caret.Offset())
	s.caret = caret.New(end)
}

// MoveUp moves the caret to the previous line, keeping the rune
// column where possible.
func (s *Session) MoveUp() {
	s.moveVertical(-1)
}

// MoveDown moves the caret to the next line.
func (s *Session) MoveDown() {
	s.moveVertical(1)
}

func (s *Session) moveVertical(delta int) {
	text := s.buf.Text()
	at := s.caret.Clamp(len(text)).Offset()

	start, _ := buffer.LineBounds(text, at)
	col := utf8.RuneCountInString(text[start:at])

	var targetStart, targetEnd int
	if delta < 0 {
		if start == 0 {
			return
		}
		targetStart, targetEnd = buffer.LineBounds(text, start-1)
	} else {
		_, end := buffer.LineBounds(text, at)
		if end >= len(text) {
			return
		}
		targetStart, targetEnd = buffer.LineBounds(text, end+1)
	}

	line := text[targetStart:targetEnd]
	offset := targetStart
	for i := 0; i < col; i++ {
		if offset >= targetEnd {
			break
		}
		_, size := utf8.DecodeRuneInString(line[offset-targetStart:])
		offset += size
	}
	s.caret = caret.New(offset)
}

// WordCount returns the number of whitespace-separated words.
func (s *Session) WordCount() int {
	return len(strings.Fields(s.buf.Text()))
}
