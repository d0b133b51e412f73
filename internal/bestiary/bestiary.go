// Package bestiary picks the opponent for the combat demo
package bestiary

import (
	"log"

	"github.com/inferenco/cedra-randomness-demos/internal/clients/dnd5e"
)

// DefaultMonsterKey is the stat block the combat demo asks for
const DefaultMonsterKey = "boar"

// Enemy is an opponent's name and starting hit points
type Enemy struct {
	Name      string
	HitPoints int
}

// WildHog is used whenever no stat block can be fetched
var WildHog = Enemy{Name: "Wild Hog", HitPoints: 100}

type Bestiary struct {
	client dnd5e.Client
}

// New creates a bestiary. A nil client always yields WildHog.
func New(client dnd5e.Client) *Bestiary {
	return &Bestiary{client: client}
}

// Enemy looks up key, falling back to WildHog on any failure
func (b *Bestiary) Enemy(key string) Enemy {
	if b == nil || b.client == nil {
		return WildHog
	}

	monster, err := b.client.GetMonster(key)
	if err != nil {
		log.Printf("Failed to get monster %s: %v", key, err)
		return WildHog
	}
	if monster == nil || monster.Name == "" || monster.HitPoints <= 0 {
		log.Printf("Monster %s has no usable stat block", key)
		return WildHog
	}

	return Enemy{Name: monster.Name, HitPoints: monster.HitPoints}
}
