package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inferenco/cedra-randomness-demos/internal/dice/mock"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/combat"
)

func TestResolveAttack(t *testing.T) {
	tests := []struct {
		name       string
		seed       int
		min, max   int
		critChance int
		want       combat.Attack
	}{
		{
			name: "low luck, no crit",
			seed: 50, min: 1, max: 20, critChance: 10,
			want: combat.Attack{Seed: 50, BaseDamage: 1, Damage: 1},
		},
		{
			name: "luck 50 crit 5",
			seed: 5005, min: 1, max: 20, critChance: 10,
			want: combat.Attack{Seed: 5005, BaseDamage: 10, Damage: 20, IsCritical: true},
		},
		{
			name: "max luck",
			seed: 9999, min: 1, max: 20, critChance: 10,
			want: combat.Attack{Seed: 9999, BaseDamage: 19, Damage: 19},
		},
		{
			name: "seed 10000 wraps to zero",
			seed: 10000, min: 1, max: 20, critChance: 10,
			want: combat.Attack{Seed: 10000, BaseDamage: 1, Damage: 2, IsCritical: true},
		},
		{
			name: "flat range",
			seed: 7777, min: 8, max: 8, critChance: 0,
			want: combat.Attack{Seed: 7777, BaseDamage: 8, Damage: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, combat.ResolveAttack(tt.seed, tt.min, tt.max, tt.critChance))
		})
	}
}

func TestResolveAttack_Properties(t *testing.T) {
	const minDmg, maxDmg = 3, 27

	for seed := 1; seed <= combat.SeedSides; seed++ {
		never := combat.ResolveAttack(seed, minDmg, maxDmg, 0)
		require.False(t, never.IsCritical, "seed %d", seed)
		require.GreaterOrEqual(t, never.Damage, minDmg)
		require.LessOrEqual(t, never.Damage, maxDmg)

		always := combat.ResolveAttack(seed, minDmg, maxDmg, 100)
		require.True(t, always.IsCritical, "seed %d", seed)
		require.Equal(t, never.Damage*2, always.Damage, "seed %d", seed)
	}
}

func TestEnemyAttack(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{0, 10})

	assert.Equal(t, 5, combat.EnemyAttack(roller))
	assert.Equal(t, 15, combat.EnemyAttack(roller))
}

func TestCombatant(t *testing.T) {
	hog := combat.NewCombatant("Wild Hog", 10)

	assert.Equal(t, 4, hog.TakeDamage(6))
	assert.True(t, hog.Alive())
	assert.Equal(t, 4, hog.TakeDamage(-3))
	assert.Equal(t, 0, hog.TakeDamage(9))
	assert.False(t, hog.Alive())
	assert.Equal(t, 10, hog.MaxHP)
}
