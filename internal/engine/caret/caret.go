package caret

import "fmt"

// Caret represents an insertion point in the buffer as a byte offset.
// Caret is an immutable value type: movement methods return a new
// value. Offsets are kept non-negative; upper-bound clamping is the
// surface's responsibility via Clamp.
type Caret struct {
	offset int
}

// New creates a caret at the given offset.
func New(offset int) Caret {
	if offset < 0 {
		offset = 0
	}
	return Caret{offset: offset}
}

// Offset returns the caret's byte offset.
func (c Caret) Offset() int {
	return c.offset
}

// MoveTo returns a caret at the given offset.
func (c Caret) MoveTo(offset int) Caret {
	return New(offset)
}

// MoveBy returns a caret shifted by delta bytes.
func (c Caret) MoveBy(delta int) Caret {
	return New(c.offset + delta)
}

// Clamp returns a caret clamped to the valid range [0, maxOffset].
func (c Caret) Clamp(maxOffset int) Caret {
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		return Caret{offset: maxOffset}
	}
	return c
}

// Equals returns true if two carets are at the same position.
func (c Caret) Equals(other Caret) bool {
	return c.offset == other.offset
}

// String returns a string representation of the caret.
func (c Caret) String() string {
	return fmt.Sprintf("Caret(%d)", c.offset)
}
