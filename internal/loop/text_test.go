package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/match"
	"github.com/tomz197/arena/internal/object"
)

func TestHealthBar(t *testing.T) {
	assert.Equal(t, "██████████", HealthBar(100, 100, 10))
	assert.Equal(t, "█████░░░░░", HealthBar(50, 100, 10))
	assert.Equal(t, "█░░░░░░░░░", HealthBar(1, 100, 10), "any health shows")
	assert.Equal(t, "░░░░░░░░░░", HealthBar(0, 100, 10))
	assert.Empty(t, HealthBar(10, 0, 10))
}

func TestStatusLine(t *testing.T) {
	cv := match.CombatantView{
		Player:       match.PlayerTwo,
		Class:        "Mage",
		Health:       50,
		MaxHealth:    100,
		Alive:        true,
		Weapon:       "Arcane Bolt",
		WeaponState:  object.WeaponReady,
		Ammo:         3,
		MagazineSize: 8,
	}
	assert.Equal(t, "P2 Mage █████░░░░░  50/100  Arcane Bolt 3/8", StatusLine(cv))

	cv.WeaponState = object.WeaponReloading
	cv.ReloadProgress = 0.5
	assert.Contains(t, StatusLine(cv), "reloading  50%")

	cv.WeaponState = object.WeaponEmpty
	cv.Ammo = 0
	assert.Contains(t, StatusLine(cv), "0/8 EMPTY")

	cv.Alive = false
	assert.Contains(t, StatusLine(cv), "KO")
}

func TestSessionLines(t *testing.T) {
	s := NewSession(SessionOptions{})
	assert.Contains(t, s.Lines(), "Press ENTER to start")

	tap(s, input.Confirm)
	lines := s.Lines()
	assert.Contains(t, lines, "CHOOSE YOUR CLASS")
	assert.Contains(t, lines, "P1  <  Warrior   >")
	assert.Contains(t, lines, "P2  <  Mage      >")

	tap(s, input.Confirm)
	assert.Nil(t, s.Lines())
}

func TestOverLines(t *testing.T) {
	lines := overLines(match.Outcome{Concluded: true, Winner: match.PlayerTwo}, [2]int{1, 2}, 0)
	assert.Equal(t, "PLAYER 2 WINS", lines[0])
	assert.Equal(t, "P1 1  :  2 P2   (0 drawn)", lines[2])

	lines = overLines(match.Outcome{Concluded: true, Draw: true}, [2]int{}, 1)
	assert.Equal(t, "DRAW", lines[0])
}

func TestClockLine(t *testing.T) {
	assert.Equal(t, "00:00", clockLine(0, 60))
	assert.Equal(t, "00:00", clockLine(59, 60))
	assert.Equal(t, "01:05", clockLine(65*60, 60))
}
