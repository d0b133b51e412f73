package loot

import (
	"github.com/inferenco/cedra-randomness-demos/internal/dice"
)

// Rarity is the tier of a dropped item, matching the contract's u8 encoding
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// Weights is the drop table out of 100, indexed by Rarity
var Weights = []int{50, 30, 15, 4, 1}

const (
	MinItemID = 1000
	MaxItemID = 9999
	MinPower  = 10
	MaxPower  = 100
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "COMMON"
	case RarityUncommon:
		return "UNCOMMON"
	case RarityRare:
		return "RARE"
	case RarityEpic:
		return "EPIC"
	case RarityLegendary:
		return "LEGENDARY"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether r is one of the five defined tiers
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityLegendary
}

// Item is a single loot drop
type Item struct {
	ItemID int    `json:"item_id"`
	Rarity Rarity `json:"rarity"`
	Power  int    `json:"power"`
}

// Synthesize builds n items locally using the fixed drop table.
func Synthesize(r dice.Roller, n int) []Item {
	if n <= 0 {
		return []Item{}
	}

	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Rarity: Rarity(dice.Weighted(r, Weights)),
			ItemID: dice.Between(r, MinItemID, MaxItemID),
			Power:  dice.Between(r, MinPower, MaxPower),
		}
	}
	return items
}
