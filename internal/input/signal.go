// Package input tracks which control signals are held and exposes them to
// the simulation as immutable per-tick snapshots.
package input

// Signal identifies one control input.
type Signal uint8

const (
	P1Up Signal = iota
	P1Down
	P1Left
	P1Right
	P1Attack
	P1SwitchWeapon
	P1Reload

	P2Up
	P2Down
	P2Left
	P2Right
	P2Attack
	P2SwitchWeapon
	P2Reload

	Confirm // Enter/Space on menus
	Quit    // q, Esc, Ctrl+C

	signalCount
)

var signalNames = [signalCount]string{
	"p1-up", "p1-down", "p1-left", "p1-right", "p1-attack", "p1-switch-weapon", "p1-reload",
	"p2-up", "p2-down", "p2-left", "p2-right", "p2-attack", "p2-switch-weapon", "p2-reload",
	"confirm", "quit",
}

func (s Signal) String() string {
	if s >= signalCount {
		return "unknown"
	}
	return signalNames[s]
}

// Controls groups the signals belonging to one player.
type Controls struct {
	Up, Down, Left, Right Signal
	Attack                Signal
	SwitchWeapon          Signal
	Reload                Signal
}

// PlayerControls holds the control sets for player one and player two, in
// that order.
var PlayerControls = [2]Controls{
	{Up: P1Up, Down: P1Down, Left: P1Left, Right: P1Right, Attack: P1Attack, SwitchWeapon: P1SwitchWeapon, Reload: P1Reload},
	{Up: P2Up, Down: P2Down, Left: P2Left, Right: P2Right, Attack: P2Attack, SwitchWeapon: P2SwitchWeapon, Reload: P2Reload},
}

// Axis returns the directional intent of c in snap. Opposite directions
// held together cancel out on that axis.
func (c Controls) Axis(snap Snapshot) (dx, dy float64) {
	if snap.IsActive(c.Left) {
		dx--
	}
	if snap.IsActive(c.Right) {
		dx++
	}
	if snap.IsActive(c.Up) {
		dy--
	}
	if snap.IsActive(c.Down) {
		dy++
	}
	return dx, dy
}
