package input

// Keymap translates raw terminal input into signals.
type Keymap struct {
	// Bytes maps single-byte keys.
	Bytes map[byte]Signal
	// Arrows maps the final byte of "ESC [ x" / "ESC O x" sequences.
	Arrows map[byte]Signal
	// Escape is the signal for a lone ESC byte.
	Escape Signal
}

// DefaultKeymap is the hot-seat layout: player one on W/A/S/D with F/G/H,
// player two on the arrow keys with L/K/J.
func DefaultKeymap() Keymap {
	km := Keymap{
		Bytes: map[byte]Signal{
			'\r':   Confirm,
			'\n':   Confirm,
			' ':    Confirm,
			'\x03': Quit, // Ctrl+C in raw mode
		},
		Arrows: map[byte]Signal{
			'A': P2Up,
			'B': P2Down,
			'C': P2Right,
			'D': P2Left,
		},
		Escape: Quit,
	}
	letters := map[byte]Signal{
		'w': P1Up, 's': P1Down, 'a': P1Left, 'd': P1Right,
		'f': P1Attack, 'g': P1SwitchWeapon, 'h': P1Reload,
		'l': P2Attack, 'k': P2SwitchWeapon, 'j': P2Reload,
		'q': Quit,
	}
	for b, sig := range letters {
		km.Bytes[b] = sig
		km.Bytes[b-'a'+'A'] = sig
	}
	return km
}

// Lookup returns the signal bound to a single byte.
func (k Keymap) Lookup(b byte) (Signal, bool) {
	sig, ok := k.Bytes[b]
	return sig, ok
}

// LookupArrow returns the signal bound to an arrow sequence final byte.
func (k Keymap) LookupArrow(final byte) (Signal, bool) {
	sig, ok := k.Arrows[final]
	return sig, ok
}
