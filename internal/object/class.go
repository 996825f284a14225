package object

// Class is a selectable fighter type.
type Class int

const (
	Warrior Class = iota
	Mage
	Sniper
	classCount
)

// ClassSpec holds the per-class starting stats.
type ClassSpec struct {
	Name      string
	MaxHealth int
	Speed     float64 // Logical units per tick
	Weapon    Archetype
}

var classes = [classCount]ClassSpec{
	Warrior: {Name: "Warrior", MaxHealth: 120, Speed: 0.7, Weapon: Rifle},
	Mage:    {Name: "Mage", MaxHealth: 100, Speed: 0.8, Weapon: Arcane},
	Sniper:  {Name: "Sniper", MaxHealth: 90, Speed: 0.75, Weapon: Longshot},
}

// Classes returns every selectable class in menu order.
func Classes() []Class {
	return []Class{Warrior, Mage, Sniper}
}

// Spec returns the stats for c. Unknown classes fall back to Warrior.
func (c Class) Spec() ClassSpec {
	if c < 0 || c >= classCount {
		return classes[Warrior]
	}
	return classes[c]
}

func (c Class) String() string {
	return c.Spec().Name
}

// Next cycles forward through the classes.
func (c Class) Next() Class {
	return (c + 1 + classCount) % classCount
}

// Prev cycles backward through the classes.
func (c Class) Prev() Class {
	return (c - 1 + classCount) % classCount
}
