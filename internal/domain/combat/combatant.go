package combat

// Combatant tracks hit points for one side of the combat demo
type Combatant struct {
	Name  string
	HP    int
	MaxHP int
}

// NewCombatant creates a combatant at full health
func NewCombatant(name string, hp int) *Combatant {
	return &Combatant{
		Name:  name,
		HP:    hp,
		MaxHP: hp,
	}
}

// TakeDamage lowers HP, never below zero, and returns the remaining HP
func (c *Combatant) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
	return c.HP
}

// Alive reports whether the combatant can still fight
func (c *Combatant) Alive() bool {
	return c.HP > 0
}
