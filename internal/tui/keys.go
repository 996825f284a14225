package tui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/arena/internal/input"
)

// keySignal maps a tcell key event through the same keymap the raw
// terminal reader uses.
func keySignal(ev *tcell.EventKey, km input.Keymap) (input.Signal, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= utf8.RuneSelf {
			return 0, false
		}
		return km.Lookup(byte(r))
	case tcell.KeyUp:
		return km.LookupArrow('A')
	case tcell.KeyDown:
		return km.LookupArrow('B')
	case tcell.KeyRight:
		return km.LookupArrow('C')
	case tcell.KeyLeft:
		return km.LookupArrow('D')
	case tcell.KeyEnter:
		return km.Lookup('\r')
	case tcell.KeyCtrlC:
		return km.Lookup('\x03')
	case tcell.KeyEscape:
		return km.Escape, true
	default:
		return 0, false
	}
}
