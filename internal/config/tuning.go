package config

import "time"

// Arena resolution in logical units. Rendering scales to fit the terminal;
// the vertical axis counts half-block sub-pixels, so 80 units are 40 rows.
const (
	ArenaWidth  = 120
	ArenaHeight = 80
)

// Largest render area in terminal cells; bigger terminals get a border.
const (
	MaxRenderCols = 180
	MaxRenderRows = 60
)

// Simulation tick rate. Every tick advances the match by TickTime.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Combatants
const (
	CombatantWidth  = 4.0
	CombatantHeight = 4.0
	// Spawn inset from the left/right arena edges.
	SpawnInset = 12.0
)

// Projectiles
const (
	ProjectileSize = 1.0
)

// Input
const (
	// DefaultKeyHold keeps a key active after its last press. Terminals only
	// report presses (and auto-repeat), never releases.
	DefaultKeyHold = 150 * time.Millisecond
)
