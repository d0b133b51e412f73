package bestiary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/inferenco/cedra-randomness-demos/internal/bestiary"
	"github.com/inferenco/cedra-randomness-demos/internal/clients/dnd5e"
	mockdnd5e "github.com/inferenco/cedra-randomness-demos/internal/clients/dnd5e/mock"
)

func TestEnemy(t *testing.T) {
	tests := []struct {
		name    string
		monster *dnd5e.Monster
		err     error
		want    bestiary.Enemy
	}{
		{
			name:    "stat block found",
			monster: &dnd5e.Monster{Key: "boar", Name: "Boar", HitPoints: 11},
			want:    bestiary.Enemy{Name: "Boar", HitPoints: 11},
		},
		{
			name: "api error",
			err:  errors.New("503 service unavailable"),
			want: bestiary.WildHog,
		},
		{
			name:    "empty stat block",
			monster: &dnd5e.Monster{Key: "boar"},
			want:    bestiary.WildHog,
		},
		{
			name: "nil monster",
			want: bestiary.WildHog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mockdnd5e.NewMockClient(ctrl)
			client.EXPECT().GetMonster(bestiary.DefaultMonsterKey).Return(tt.monster, tt.err)

			got := bestiary.New(client).Enemy(bestiary.DefaultMonsterKey)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnemy_NoClient(t *testing.T) {
	assert.Equal(t, bestiary.WildHog, bestiary.New(nil).Enemy("boar"))

	var b *bestiary.Bestiary
	assert.Equal(t, bestiary.WildHog, b.Enemy("boar"))
}
