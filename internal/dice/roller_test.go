package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inferenco/cedra-randomness-demos/internal/dice"
	"github.com/inferenco/cedra-randomness-demos/internal/dice/mock"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		sides      int
		want       int
		wantPanic  bool
	}{
		{
			name:       "d20",
			setupRolls: []int{15},
			sides:      20,
			want:       15,
		},
		{
			name:       "coin",
			setupRolls: []int{2},
			sides:      2,
			want:       2,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			sides:      6,
			wantPanic:  true,
		},
		{
			name:       "no rolls left",
			setupRolls: []int{},
			sides:      6,
			wantPanic:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			if tt.wantPanic {
				assert.Panics(t, func() { roller.Roll(tt.sides) })
				return
			}

			assert.Equal(t, tt.want, roller.Roll(tt.sides))
		})
	}
}

func TestMockRoller_ShuffleConsumesOneValuePerSwap(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	// swap(3,0) swap(2,2) swap(1,0)
	roller.SetRolls([]int{0, 2, 0})

	deck := []int{0, 1, 2, 3}
	roller.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	assert.Equal(t, []int{1, 3, 2, 0}, deck)
	assert.Equal(t, 3, roller.Used())
}

func TestRandomRoller_RollBounds(t *testing.T) {
	roller := dice.NewRandomRoller()

	for _, sides := range []int{1, 2, 6, 36, 10000} {
		for i := 0; i < 500; i++ {
			v := roller.Roll(sides)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, sides)
		}
	}
}

func TestSeededRoller_Deterministic(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Roll(100), b.Roll(100))
	}
}

func TestBetween(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{0, 90})

	assert.Equal(t, 10, dice.Between(roller, 10, 100))
	assert.Equal(t, 100, dice.Between(roller, 10, 100))
	assert.Equal(t, 5, dice.Between(roller, 5, 5), "empty range returns lo without consuming a roll")
	assert.Equal(t, 2, roller.Used())
}

func TestWeighted(t *testing.T) {
	weights := []int{50, 30, 15, 4, 1}

	tests := []struct {
		name string
		pick int
		want int
	}{
		{name: "first bucket start", pick: 0, want: 0},
		{name: "first bucket end", pick: 49, want: 0},
		{name: "second bucket", pick: 50, want: 1},
		{name: "third bucket", pick: 94, want: 2},
		{name: "fourth bucket", pick: 95, want: 3},
		{name: "last bucket", pick: 99, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls([]int{tt.pick})
			assert.Equal(t, tt.want, dice.Weighted(roller, weights))
		})
	}
}

func TestWeighted_SkipsNonPositive(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{0})

	assert.Equal(t, 1, dice.Weighted(roller, []int{0, 3, -2}))
	assert.Equal(t, -1, dice.Weighted(roller, []int{0, 0}))
}
