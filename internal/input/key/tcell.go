package key

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell key event into the editor's key model.
// Control-letter combinations arrive from tcell as control key codes;
// they are normalized to a rune event with ModCtrl set so dispatch
// can match on "C-z" style events uniformly.
func FromTcell(ev *tcell.EventKey) Event {
	mods := modifierFromTcell(ev.Modifiers())

	var e Event
	switch ev.Key() {
	case tcell.KeyEnter:
		e = NewSpecialEvent(KeyEnter, mods.Without(ModCtrl))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e = NewSpecialEvent(KeyBackspace, mods.Without(ModCtrl))
	case tcell.KeyDelete:
		e = NewSpecialEvent(KeyDelete, mods)
	case tcell.KeyTab:
		e = NewSpecialEvent(KeyTab, mods.Without(ModCtrl))
	case tcell.KeyEscape:
		e = NewSpecialEvent(KeyEscape, mods)
	case tcell.KeyUp:
		e = NewSpecialEvent(KeyUp, mods)
	case tcell.KeyDown:
		e = NewSpecialEvent(KeyDown, mods)
	case tcell.KeyLeft:
		e = NewSpecialEvent(KeyLeft, mods)
	case tcell.KeyRight:
		e = NewSpecialEvent(KeyRight, mods)
	case tcell.KeyHome:
		e = NewSpecialEvent(KeyHome, mods)
	case tcell.KeyEnd:
		e = NewSpecialEvent(KeyEnd, mods)
	case tcell.KeyPgUp:
		e = NewSpecialEvent(KeyPageUp, mods)
	case tcell.KeyPgDn:
		e = NewSpecialEvent(KeyPageDown, mods)
	case tcell.KeyRune:
		e = NewRuneEvent(ev.Rune(), mods)
	default:
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := rune('a' + (k - tcell.KeyCtrlA))
			e = NewRuneEvent(r, mods.With(ModCtrl))
		} else {
			e = NewSpecialEvent(KeyNone, mods)
		}
	}

	e.Timestamp = ev.When()
	return e
}

func modifierFromTcell(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	return mods
}
