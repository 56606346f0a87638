// Package history provides snapshot-based undo/redo for the editor.
//
// The model is two stacks of full-buffer snapshots:
//
//   - Recording a mutation pushes the previous content onto the undo
//     stack and clears the redo stack (the discarded future).
//   - Undo pops the undo stack, parking the current content on the
//     redo stack. Redo is the mirror image.
//
// The guarantee callers rely on: Undo immediately followed by Redo is
// a no-op on observable state, for arbitrary interleavings of
// RecordAndSet with undo/redo. A RecordAndSet between an Undo and a
// later Redo invalidates the redo continuation.
//
// Clear is the one asymmetry: it wipes the buffer and both stacks
// without recording, so clearing cannot be undone.
package history
