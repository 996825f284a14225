package loop

import (
	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/match"
	"github.com/tomz197/arena/internal/physics"
)

// Length of the facing marker past the hitbox edge.
const facingMarker = 1.5

// PlayerInk is the colour of a player's combatant and HUD.
func PlayerInk(p match.PlayerID) draw.Ink {
	if p == match.PlayerOne {
		return draw.InkRed
	}
	return draw.InkBlue
}

func projectileInk(owner match.PlayerID) draw.Ink {
	if owner == match.PlayerOne {
		return draw.InkYellow
	}
	return draw.InkCyan
}

// PaintArena draws a match view onto the canvas: projectiles first, then
// combatants with a marker in their facing direction.
func PaintArena(c *draw.Canvas, v match.View) {
	for _, p := range v.Projectiles {
		c.FillRect(physics.RectAround(p.X, p.Y, p.Size, p.Size), projectileInk(p.Owner))
	}

	for _, cv := range v.Combatants {
		ink := PlayerInk(cv.Player)
		if !cv.Alive {
			ink = draw.InkGray
		}
		c.FillRect(physics.RectAround(cv.X, cv.Y, cv.Width, cv.Height), ink)
		if cv.Alive {
			reach := max(cv.Width, cv.Height)/2 + facingMarker
			c.DrawLine(cv.X, cv.Y, cv.X+cv.FX*reach, cv.Y+cv.FY*reach, draw.InkWhite)
		}
	}
}
