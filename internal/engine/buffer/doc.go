// Package buffer provides the text buffer for the editor engine.
//
// A Buffer is a single string of characters including newlines. It is
// deliberately simple: the editor operates on full-content snapshots,
// so the buffer's job is holding the current value and answering
// line-boundary questions for the line editor and renderer.
//
// Mutation discipline: user-visible content changes flow through the
// history engine, which calls SetText. Other packages read.
package buffer
