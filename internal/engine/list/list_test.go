package list

import "testing"

func TestParseMarker(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOK   bool
		wantTok  string
		numbered bool
	}{
		{"dash bullet", "- item", true, "- ", false},
		{"star bullet", "* item", true, "* ", false},
		{"dot bullet", "• item", true, "• ", false},
		{"numbered", "3. item", true, "3. ", true},
		{"multi digit", "12. item", true, "12. ", true},
		{"indented bullet", "   - item", true, "- ", false},
		{"tab indent", "\t* item", true, "* ", false},
		{"wide suffix", "-   item", true, "-   ", false},
		{"plain text", "plain", false, "", false},
		{"no space after glyph", "-item", false, "", false},
		{"no period", "3 item", false, "", false},
		{"unrecognized glyph", "> quoted", false, "", false},
		{"plus is not a bullet", "+ item", false, "", false},
		{"empty line", "", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ParseMarker(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseMarker(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := m.Token(); got != tt.wantTok {
				t.Errorf("Token() = %q, want %q", got, tt.wantTok)
			}
			if m.IsNumbered() != tt.numbered {
				t.Errorf("IsNumbered() = %v, want %v", m.IsNumbered(), tt.numbered)
			}
		})
	}
}

func TestMarkerNextToken(t *testing.T) {
	m, ok := ParseMarker("2. second item")
	if !ok {
		t.Fatal("expected marker")
	}
	if got := m.NextToken(); got != "3. " {
		t.Errorf("NextToken() = %q, want %q", got, "3. ")
	}

	b, ok := ParseMarker("* starred")
	if !ok {
		t.Fatal("expected marker")
	}
	if got := b.NextToken(); got != "* " {
		t.Errorf("NextToken() = %q, want %q", got, "* ")
	}
}

func TestInsertBullet(t *testing.T) {
	r := InsertBullet("hello", 0, "-")
	if !r.Handled {
		t.Fatal("expected handled")
	}
	if r.Text != "- hello" {
		t.Errorf("Text = %q, want %q", r.Text, "- hello")
	}
	if r.Caret != 2 {
		t.Errorf("Caret = %d, want 2", r.Caret)
	}
}

func TestInsertBulletMidText(t *testing.T) {
	r := InsertBullet("ab\ncd", 3, "*")
	if r.Text != "ab\n* cd" {
		t.Errorf("Text = %q, want %q", r.Text, "ab\n* cd")
	}
	if r.Caret != 5 {
		t.Errorf("Caret = %d, want 5", r.Caret)
	}
}

func TestInsertBulletDefaultGlyph(t *testing.T) {
	r := InsertBullet("", 0, "")
	if r.Text != "- " {
		t.Errorf("Text = %q, want %q", r.Text, "- ")
	}
}

func TestInsertNumbered(t *testing.T) {
	r := InsertNumbered("item", 0)
	if r.Text != "1. item" {
		t.Errorf("Text = %q, want %q", r.Text, "1. item")
	}
	if r.Caret != 3 {
		t.Errorf("Caret = %d, want 3", r.Caret)
	}
}

func TestContinueBullet(t *testing.T) {
	r := Continue("- item one", 10)
	if !r.Handled {
		t.Fatal("expected handled")
	}
	if r.Text != "- item one\n- " {
		t.Errorf("Text = %q, want %q", r.Text, "- item one\n- ")
	}
	if r.Caret != 13 {
		t.Errorf("Caret = %d, want 13", r.Caret)
	}
}

func TestContinueBulletKeepsGlyphAndIndent(t *testing.T) {
	text := "  * indented"
	r := Continue(text, len(text))
	if r.Text != "  * indented\n  * " {
		t.Errorf("Text = %q, want %q", r.Text, "  * indented\n  * ")
	}
	if r.Caret != len(r.Text) {
		t.Errorf("Caret = %d, want %d", r.Caret, len(r.Text))
	}
}

func TestContinueNumberedIncrements(t *testing.T) {
	text := "2. second item"
	r := Continue(text, len(text))
	if r.Text != "2. second item\n3. " {
		t.Errorf("Text = %q, want %q", r.Text, "2. second item\n3. ")
	}
	if r.Caret != len(r.Text) {
		t.Errorf("Caret = %d, want %d", r.Caret, len(r.Text))
	}
}

// Numbered continuation increments from the current line only; prior
// lines never trigger renumbering.
func TestContinueNumberedIgnoresOtherLines(t *testing.T) {
	text := "1. one\n5. five"
	r := Continue(text, len(text))
	if r.Text != "1. one\n5. five\n6. " {
		t.Errorf("Text = %q, want %q", r.Text, "1. one\n5. five\n6. ")
	}
}

func TestContinueEmptyBulletRemovesMarker(t *testing.T) {
	r := Continue("- ", 2)
	if !r.Handled {
		t.Fatal("expected handled")
	}
	if r.Text != "" {
		t.Errorf("Text = %q, want empty", r.Text)
	}
	if r.Caret != 0 {
		t.Errorf("Caret = %d, want 0", r.Caret)
	}
}

func TestContinueEmptyNumberedRemovesMarker(t *testing.T) {
	text := "1. one\n2. "
	r := Continue(text, len(text))
	if r.Text != "1. one\n" {
		t.Errorf("Text = %q, want %q", r.Text, "1. one\n")
	}
	if r.Caret != 7 {
		t.Errorf("Caret = %d, want 7", r.Caret)
	}
}

func TestContinueEmptyIndentedItemDeletesFromLineStart(t *testing.T) {
	text := "- a\n  - "
	r := Continue(text, len(text))
	if r.Text != "- a\n" {
		t.Errorf("Text = %q, want %q", r.Text, "- a\n")
	}
	if r.Caret != 4 {
		t.Errorf("Caret = %d, want 4", r.Caret)
	}
}

func TestContinueOnlyInspectsCaretLine(t *testing.T) {
	// Caret on a plain line below a list line: not handled.
	r := Continue("- item\nplain", 9)
	if r.Handled {
		t.Error("plain line should not be handled")
	}
}

func TestContinuePlainLineNotHandled(t *testing.T) {
	r := Continue("no list here", 5)
	if r.Handled {
		t.Error("expected not handled")
	}
	if r.Text != "" || r.Caret != 0 {
		t.Error("unhandled result should be zero valued")
	}
}

func TestContinueCaretMidLine(t *testing.T) {
	// Splitting an item carries the tail to the new line.
	text := "- item one"
	r := Continue(text, 6) // after "- item"
	if r.Text != "- item\n-  one" {
		t.Errorf("Text = %q, want %q", r.Text, "- item\n-  one")
	}
	if r.Caret != 9 {
		t.Errorf("Caret = %d, want 9", r.Caret)
	}
}
