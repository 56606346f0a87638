// Package key provides key event types for the input system.
//
// This package defines the fundamental types for representing
// keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers and timestamp
//
// FromTcell adapts tcell key events into this model, normalizing
// control-letter codes to rune events with ModCtrl so the dispatch
// layer matches shortcuts uniformly.
package key
