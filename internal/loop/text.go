package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/arena/internal/match"
	"github.com/tomz197/arena/internal/object"
)

const healthBarWidth = 10

var controlsHelp = []string{
	"P1: W/A/S/D move  F fire  G switch  H reload",
	"P2: arrows move  L fire  K switch  J reload",
}

// Lines returns the centred text for the current screen. The arena screen
// has none; its HUD comes from StatusLine.
func (s *Session) Lines() []string {
	switch s.screen {
	case ScreenTitle:
		lines := []string{"A  R  E  N  A", "", "Press ENTER to start", ""}
		return append(append(lines, controlsHelp...), "", "Q or ESC quits")
	case ScreenSelect:
		return selectLines(s.classes)
	case ScreenOver:
		wins, draws := s.Score()
		return overLines(s.match.Outcome(), wins, draws)
	default:
		return nil
	}
}

func selectLines(classes [2]object.Class) []string {
	lines := []string{"CHOOSE YOUR CLASS", ""}
	for i, c := range classes {
		spec := c.Spec()
		w := spec.Weapon.Spec()
		lines = append(lines,
			fmt.Sprintf("P%d  <  %-8s  >", i+1, spec.Name),
			fmt.Sprintf("%d HP  speed %.2f  %s (%d dmg, %d rounds)", spec.MaxHealth, spec.Speed, w.Name, w.Damage, w.MagazineSize),
			"",
		)
	}
	return append(lines, "P1: A/D   P2: left/right   ENTER fight")
}

func overLines(o match.Outcome, wins [2]int, draws int) []string {
	title := "DRAW"
	if !o.Draw {
		title = fmt.Sprintf("PLAYER %d WINS", int(o.Winner)+1)
	}
	return []string{
		title,
		"",
		fmt.Sprintf("P1 %d  :  %d P2   (%d drawn)", wins[0], wins[1], draws),
		"",
		"ENTER rematch   Q quit",
	}
}

// StatusLine is the HUD line for one combatant: class, health bar, weapon
// and ammo, or reload progress while reloading.
func StatusLine(c match.CombatantView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %3d/%-3d  %s ", c.Player, c.Class, HealthBar(c.Health, c.MaxHealth, healthBarWidth), c.Health, c.MaxHealth, c.Weapon)
	switch c.WeaponState {
	case object.WeaponReloading:
		fmt.Fprintf(&b, "reloading %3.0f%%", c.ReloadProgress*100)
	case object.WeaponEmpty:
		fmt.Fprintf(&b, "%d/%d EMPTY", c.Ammo, c.MagazineSize)
	default:
		fmt.Fprintf(&b, "%d/%d", c.Ammo, c.MagazineSize)
	}
	if !c.Alive {
		b.WriteString("  KO")
	}
	return b.String()
}

// HealthBar renders health as a bar of width cells.
func HealthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return ""
	}
	filled := (health*width + maxHealth - 1) / maxHealth
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// clockLine formats elapsed match time as mm:ss from the tick count.
func clockLine(ticks uint64, tickRate int) string {
	secs := ticks / uint64(tickRate)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
