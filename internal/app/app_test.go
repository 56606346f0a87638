package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/therohithborana/cyphernote/internal/input/key"
	"github.com/therohithborana/cyphernote/internal/renderer/backend"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	term, sim := backend.NewSimulation()
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(term.Shutdown)
	sim.SetSize(80, 24)

	a, err := New(term, Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(a.Shutdown)
	return a
}

func typeString(a *App, s string) {
	for _, r := range s {
		a.handleKey(key.NewRuneEvent(r, key.ModNone))
	}
}

func TestTypingRecordsSteps(t *testing.T) {
	a := newTestApp(t)
	typeString(a, "hi")

	if got := a.Session().Text(); got != "hi" {
		t.Errorf("text = %q, want %q", got, "hi")
	}
	if got := a.Session().UndoDepth(); got != 2 {
		t.Errorf("undo depth = %d, want 2", got)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	a := newTestApp(t)
	typeString(a, "ab")

	a.handleKey(key.NewRuneEvent('z', key.ModCtrl))
	if got := a.Session().Text(); got != "a" {
		t.Errorf("after undo text = %q, want %q", got, "a")
	}

	a.handleKey(key.NewRuneEvent('y', key.ModCtrl))
	if got := a.Session().Text(); got != "ab" {
		t.Errorf("after redo text = %q, want %q", got, "ab")
	}
}

func TestEnterContinuesBulletAndDefersCaret(t *testing.T) {
	a := newTestApp(t)
	typeString(a, "- one")

	a.handleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone))

	if got := a.Session().Text(); got != "- one\n- " {
		t.Errorf("text = %q, want %q", got, "- one\n- ")
	}

	// The caret placement was parked for the sync event.
	off, ok := a.Session().TakePendingCaret()
	if !ok {
		t.Fatal("expected pending caret after structural edit")
	}
	if off != 8 {
		t.Errorf("pending caret = %d, want 8", off)
	}
}

func TestBulletAndNumberedShortcuts(t *testing.T) {
	a := newTestApp(t)

	a.handleKey(key.NewRuneEvent('b', key.ModCtrl))
	if got := a.Session().Text(); got != "- " {
		t.Errorf("text = %q, want %q", got, "- ")
	}

	a.handleKey(key.NewRuneEvent('x', key.ModCtrl)) // clear
	a.handleKey(key.NewRuneEvent('n', key.ModCtrl))
	if got := a.Session().Text(); got != "1. " {
		t.Errorf("text = %q, want %q", got, "1. ")
	}
}

func TestClearKeyNotUndoable(t *testing.T) {
	a := newTestApp(t)
	typeString(a, "secret")

	a.handleKey(key.NewRuneEvent('x', key.ModCtrl))

	s := a.Session()
	if s.Text() != "" || s.UndoDepth() != 0 || s.RedoDepth() != 0 {
		t.Error("clear should wipe buffer and history")
	}
	if s.Undo() {
		t.Error("undo after clear should be a no-op")
	}
}

func TestRevealToggleKey(t *testing.T) {
	a := newTestApp(t)
	if a.Session().Revealed() {
		t.Fatal("should start hidden")
	}

	a.handleKey(key.NewRuneEvent('e', key.ModCtrl))
	if !a.Session().Revealed() {
		t.Error("Ctrl+E should reveal")
	}

	a.handleKey(key.NewRuneEvent('e', key.ModCtrl))
	if a.Session().Revealed() {
		t.Error("second Ctrl+E should hide")
	}
}

func TestQuitKey(t *testing.T) {
	a := newTestApp(t)
	if !a.handleKey(key.NewRuneEvent('q', key.ModCtrl)) {
		t.Error("Ctrl+Q should quit")
	}
	if a.handleKey(key.NewRuneEvent('q', key.ModNone)) {
		t.Error("plain q should not quit")
	}
}

func TestSaveKeyWritesFile(t *testing.T) {
	a := newTestApp(t)
	a.cfg.Export.Directory = t.TempDir()
	typeString(a, "keep me")

	a.handleKey(key.NewRuneEvent('s', key.ModCtrl))

	data, err := os.ReadFile(filepath.Join(a.cfg.Export.Directory, "cyphernote.txt"))
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(data) != "keep me" {
		t.Errorf("saved %q, want %q", data, "keep me")
	}
}

func TestSaveFailureLeavesStateUntouched(t *testing.T) {
	a := newTestApp(t)
	typeString(a, "content")

	// A directory path through a regular file makes the save fail
	// locally regardless of privileges.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	a.cfg.Export.Directory = filepath.Join(blocker, "sub")

	a.handleKey(key.NewRuneEvent('s', key.ModCtrl))

	if a.Session().Text() != "content" {
		t.Error("failed save must not change the buffer")
	}
	if a.Session().UndoDepth() != 7 {
		t.Errorf("undo depth = %d, want 7", a.Session().UndoDepth())
	}
}

func TestBackspaceAndMovement(t *testing.T) {
	a := newTestApp(t)
	typeString(a, "abc")

	a.handleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone))
	if got := a.Session().Text(); got != "ab" {
		t.Errorf("text = %q, want %q", got, "ab")
	}

	a.handleKey(key.NewSpecialEvent(key.KeyHome, key.ModNone))
	if got := a.Session().Caret(); got != 0 {
		t.Errorf("caret = %d, want 0", got)
	}
	a.handleKey(key.NewSpecialEvent(key.KeyEnd, key.ModNone))
	if got := a.Session().Caret(); got != 2 {
		t.Errorf("caret = %d, want 2", got)
	}
}

func TestTabInsertsSpaces(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(key.NewSpecialEvent(key.KeyTab, key.ModNone))
	if got := a.Session().Text(); got != "    " {
		t.Errorf("text = %q, want four spaces", got)
	}
}
