// Package backend wraps the tcell screen behind the small surface the
// renderer and event loop need.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal is the tcell-backed display surface.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend on the real screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewSimulation creates a backend on a tcell simulation screen for
// tests.
func NewSimulation() (*Terminal, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Terminal{screen: sim}, sim
}

// Init prepares the screen for drawing.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// Clear erases the screen buffer.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// SetContent places a rune at the given cell.
func (t *Terminal) SetContent(x, y int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, r, nil, style)
}

// Sync forces a full redraw, used after terminal resize.
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Sync()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// ShowCursor places the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

// HideCursor removes the hardware cursor.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

// PollEvent blocks for the next input event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues an event behind any pending input. Best-effort:
// a full queue drops the event.
func (t *Terminal) PostEvent(ev tcell.Event) {
	_ = t.screen.PostEvent(ev)
}

// SetClipboard writes data to the system clipboard via OSC 52.
// Fire-and-forget: terminals without clipboard support ignore it.
func (t *Terminal) SetClipboard(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetClipboard(data)
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.screen.Beep()
}
