// Package app wires the editor session, renderer, configuration, and
// terminal backend into a single-threaded event loop.
//
// Everything that mutates editor state runs on the loop goroutine.
// Asynchronous sources (config reload, signals) communicate by
// posting events onto the backend queue. Deferred caret placement
// after structural edits uses the same queue: the sync event is
// processed on the next loop turn, after the buffer change has been
// rendered.
package app
