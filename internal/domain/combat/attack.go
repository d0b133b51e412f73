package combat

import (
	"github.com/inferenco/cedra-randomness-demos/internal/dice"
)

// SeedSides is the range of the single roll an attack is derived from.
// The low two digits drive the crit check, the next two the damage luck.
const SeedSides = 10000

// Attack is the outcome of one resolved attack
type Attack struct {
	Seed       int  `json:"seed"`
	BaseDamage int  `json:"base_damage"`
	Damage     int  `json:"damage"`
	IsCritical bool `json:"is_critical"`
}

// ResolveAttack derives damage and the crit flag from one seed.
// With critChancePercent <= 0 an attack never crits; with >= 100 it always does.
func ResolveAttack(seed, minDmg, maxDmg, critChancePercent int) Attack {
	critRoll := seed % 100
	luckRoll := (seed / 100) % 100

	added := luckRoll * (maxDmg - minDmg) / 100
	base := minDmg + added

	isCrit := critRoll < critChancePercent
	damage := base
	if isCrit {
		damage = base * 2
	}

	return Attack{
		Seed:       seed,
		BaseDamage: base,
		Damage:     damage,
		IsCritical: isCrit,
	}
}

// EnemyAttack is the local counter-attack used by the combat demo
func EnemyAttack(r dice.Roller) int {
	return dice.Between(r, 5, 15)
}
