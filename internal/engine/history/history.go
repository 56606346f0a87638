package history

import (
	"sync"

	"github.com/therohithborana/cyphernote/internal/engine/buffer"
)

// History manages snapshot-based undo/redo state for a buffer.
//
// Each recorded mutation pushes the buffer's previous full content
// onto the undo stack. Stacks grow without a configured bound; the
// session's lifetime is the only limit.
type History struct {
	mu sync.Mutex

	undoStack []string
	redoStack []string
}

// New creates a new history manager with empty stacks.
func New() *History {
	return &History{}
}

// RecordAndSet records the buffer's current content on the undo stack,
// clears the redo stack, then installs newText as the buffer content.
// Every user-initiated content change goes through here.
func (h *History) RecordAndSet(buf *buffer.Buffer, newText string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append(h.undoStack, buf.Text())
	h.redoStack = nil
	buf.SetText(newText)
}

// Undo restores the most recent undo snapshot, moving the current
// content onto the redo stack. Returns false when there is nothing
// to undo; the buffer is untouched in that case.
func (h *History) Undo(buf *buffer.Buffer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return false
	}

	snapshot := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	h.redoStack = append(h.redoStack, buf.Text())
	buf.SetText(snapshot)
	return true
}

// Redo restores the most recently undone snapshot, moving the current
// content back onto the undo stack. Returns false when there is
// nothing to redo.
func (h *History) Redo(buf *buffer.Buffer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return false
	}

	snapshot := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	h.undoStack = append(h.undoStack, buf.Text())
	buf.SetText(snapshot)
	return true
}

// Clear empties the buffer and discards both stacks unconditionally.
// Nothing is pushed first: clearing is not an undoable edit.
func (h *History) Clear(buf *buffer.Buffer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	buf.SetText("")
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoDepth returns the number of undo snapshots available.
func (h *History) UndoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoDepth returns the number of redo snapshots available.
func (h *History) RedoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}
