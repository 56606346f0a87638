package app

import (
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/therohithborana/cyphernote/internal/config"
	"github.com/therohithborana/cyphernote/internal/engine/session"
	"github.com/therohithborana/cyphernote/internal/export"
	"github.com/therohithborana/cyphernote/internal/input/key"
	"github.com/therohithborana/cyphernote/internal/renderer"
	"github.com/therohithborana/cyphernote/internal/renderer/backend"
)

// statusTTL is how long transient status messages stay visible.
const statusTTL = 4 * time.Second

// App wires the session, renderer, and configuration into the event
// loop. All state changes happen on the loop goroutine; external
// inputs (config reload, signals) arrive as posted events.
type App struct {
	cfg  config.Config
	sess *session.Session
	term *backend.Terminal
	rend *renderer.Renderer

	watcher *config.Watcher
	logger  *log.Logger

	statusMsg   string
	statusUntil time.Time
}

// Options configures the application.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
}

// caretSyncEvent requests applying the session's pending caret. It is
// posted behind the buffer-applying event so the caret is written only
// after the surface has adopted the new content.
type caretSyncEvent struct {
	tcell.EventTime
}

// configReloadEvent delivers a reloaded configuration to the loop.
type configReloadEvent struct {
	tcell.EventTime
	cfg config.Config
}

// New creates the application on the given backend.
func New(term *backend.Terminal, opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:  cfg,
		term: term,
		rend: renderer.New(term),
		sess: session.New(
			session.WithBulletGlyph(cfg.Editor.BulletGlyph),
			session.WithRevealed(cfg.Scramble.RevealOnStart),
		),
		logger: opts.Logger,
	}

	if path != "" {
		w, err := config.Watch(path, func(cfg config.Config) {
			ev := &configReloadEvent{cfg: cfg}
			ev.SetEventNow()
			term.PostEvent(ev)
		})
		if err == nil {
			a.watcher = w
		} else {
			a.logf("config watch unavailable: %v", err)
		}
	}

	a.logf("session %s started", a.sess.ID())
	return a, nil
}

// Shutdown releases application resources. The terminal itself is
// owned by the caller.
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
}

// Run drives the event loop until quit.
func (a *App) Run() error {
	a.draw()

	for {
		switch ev := a.term.PollEvent().(type) {
		case *tcell.EventKey:
			if quit := a.handleKey(key.FromTcell(ev)); quit {
				return nil
			}
			a.draw()

		case *caretSyncEvent:
			// The buffer replacement has been rendered; the caret
			// can now be written without the surface clobbering it.
			if off, ok := a.sess.TakePendingCaret(); ok {
				a.sess.SetCaret(off)
				a.draw()
			}

		case *configReloadEvent:
			a.cfg = ev.cfg
			a.sess.SetBulletGlyph(ev.cfg.Editor.BulletGlyph)
			a.setStatus("config reloaded")
			a.logf("config reloaded")
			a.draw()

		case *tcell.EventResize:
			a.term.Sync()
			a.draw()

		case *tcell.EventInterrupt:
			return nil

		case nil:
			// Screen finalized under us.
			return nil
		}
	}
}

// handleKey dispatches one key event. Returns true to quit.
func (a *App) handleKey(e key.Event) bool {
	switch {
	case e.IsCtrl('q'):
		return true

	case e.IsCtrl('z'):
		if !a.sess.Undo() {
			a.term.Beep()
		}

	case e.IsCtrl('y'):
		if !a.sess.Redo() {
			a.term.Beep()
		}

	case e.IsCtrl('e'):
		if a.sess.ToggleReveal() {
			a.setStatus("revealed")
		} else {
			a.setStatus("hidden")
		}

	case e.IsCtrl('b'):
		a.sess.InsertBullet()
		a.scheduleCaretSync()

	case e.IsCtrl('n'):
		a.sess.InsertNumbered()
		a.scheduleCaretSync()

	case e.IsCtrl('x'):
		a.sess.Clear()
		a.setStatus("cleared")

	case e.IsCtrl('c'):
		// Whole-buffer copy; OSC 52 write is fire-and-forget and
		// never touches editor state.
		a.term.SetClipboard([]byte(a.sess.Text()))
		a.setStatus("copied to clipboard")

	case e.IsCtrl('s'):
		path, err := export.Save(a.cfg.Export.Directory, a.cfg.Export.Filename, a.sess.Text())
		if err != nil {
			a.setStatus("save failed: " + err.Error())
			a.logf("save failed: %v", err)
		} else {
			a.setStatus("saved " + path)
		}

	case e.IsEnter():
		a.sess.HandleEnter()
		a.scheduleCaretSync()

	case e.IsBackspace():
		a.sess.DeleteBack()

	case e.Key == key.KeyDelete:
		a.sess.DeleteForward()

	case e.Key == key.KeyTab:
		a.sess.InsertString(strings.Repeat(" ", a.cfg.Editor.TabWidth))

	case e.Key == key.KeyLeft:
		a.sess.MoveLeft()
	case e.Key == key.KeyRight:
		a.sess.MoveRight()
	case e.Key == key.KeyUp:
		a.sess.MoveUp()
	case e.Key == key.KeyDown:
		a.sess.MoveDown()
	case e.Key == key.KeyHome:
		a.sess.MoveLineStart()
	case e.Key == key.KeyEnd:
		a.sess.MoveLineEnd()

	case e.IsChar() && !e.IsModified():
		a.sess.InsertRune(e.Rune)
	}

	return false
}

// scheduleCaretSync queues the deferred caret placement behind the
// redraw of the current event.
func (a *App) scheduleCaretSync() {
	ev := &caretSyncEvent{}
	ev.SetEventNow()
	a.term.PostEvent(ev)
}

func (a *App) setStatus(msg string) {
	a.statusMsg = msg
	a.statusUntil = time.Now().Add(statusTTL)
}

func (a *App) draw() {
	msg := a.statusMsg
	if msg != "" && time.Now().After(a.statusUntil) {
		msg = ""
		a.statusMsg = ""
	}
	a.rend.Draw(a.sess, msg)
}

func (a *App) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

// Session exposes the editor session, used by tests.
func (a *App) Session() *session.Session {
	return a.sess
}
