package caret

import "testing"

func TestNewClampsNegative(t *testing.T) {
	c := New(-3)
	if c.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", c.Offset())
	}
}

func TestMoveTo(t *testing.T) {
	c := New(5).MoveTo(12)
	if c.Offset() != 12 {
		t.Errorf("Offset() = %d, want 12", c.Offset())
	}
}

func TestMoveBy(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"forward", 5, 3, 8},
		{"backward", 5, -2, 3},
		{"past zero clamps", 2, -10, 0},
		{"zero delta", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.start).MoveBy(tt.delta)
			if c.Offset() != tt.want {
				t.Errorf("MoveBy(%d) from %d = %d, want %d",
					tt.delta, tt.start, c.Offset(), tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := New(10).Clamp(4).Offset(); got != 4 {
		t.Errorf("Clamp(4) = %d, want 4", got)
	}
	if got := New(3).Clamp(10).Offset(); got != 3 {
		t.Errorf("Clamp(10) = %d, want 3", got)
	}
	if got := New(3).Clamp(-1).Offset(); got != 0 {
		t.Errorf("Clamp(-1) = %d, want 0", got)
	}
}

func TestEquals(t *testing.T) {
	if !New(7).Equals(New(7)) {
		t.Error("carets at same offset should be equal")
	}
	if New(7).Equals(New(8)) {
		t.Error("carets at different offsets should not be equal")
	}
}
