package buffer

import (
	"strings"
	"sync"
)

// Buffer holds the full text content of the editor as a single string,
// newlines included. Content changes go through SetText; the history
// engine is the only caller that mutates on behalf of the user.
// All methods are thread-safe.
type Buffer struct {
	mu   sync.RWMutex
	text string
}

// New creates a new empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromString creates a buffer with initial content.
// Line endings are normalized to LF.
func NewFromString(s string) *Buffer {
	return &Buffer{text: normalizeLineEndings(s)}
}

// normalizeLineEndings converts CRLF and CR sequences to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// SetText replaces the full buffer content.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = s
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text)
}

// Lines splits the content on newlines. An empty buffer yields a
// single empty line, matching what an editing surface displays.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Split(b.text, "\n")
}

// LineBoundsAt returns the [start, end) byte range of the line
// containing offset. The newline terminating the line is excluded.
// Offsets outside [0, Len()] are clamped.
func (b *Buffer) LineBoundsAt(offset int) (start, end int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return LineBounds(b.text, offset)
}

// LineAt returns the text of the line containing offset, without its
// trailing newline.
func (b *Buffer) LineAt(offset int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end := LineBounds(b.text, offset)
	return b.text[start:end]
}

// LineBounds returns the [start, end) byte range of the line in text
// that contains offset. Start is the position after the nearest
// preceding newline (or 0), end is the nearest following newline (or
// len(text)). Offsets outside [0, len(text)] are clamped.
func LineBounds(text string, offset int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	start = strings.LastIndexByte(text[:offset], '\n') + 1

	end = len(text)
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	return start, end
}
