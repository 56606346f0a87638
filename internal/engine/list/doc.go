// Package list recognizes structural list-editing intents and turns
// them into buffer replacements plus caret placement.
//
// The package is pure: operations take the current text and caret and
// return a Result. The session records the resulting change through
// the history engine so every structural edit is one undoable step.
//
// Matching is line-local. Only the line containing the caret is ever
// inspected; multi-line selections and pastes get no list treatment.
package list
