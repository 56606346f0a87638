// Package session combines the buffer, history, caret, and reveal
// flag into a single owned editor-session object.
//
// Content changes funnel through the history engine so every
// user-visible edit is one undoable step. Structural edits from the
// list editor additionally park a pending caret; the surface consumes
// it with TakePendingCaret once the new buffer content has been
// applied, preserving the buffer-before-caret ordering invariant.
package session
