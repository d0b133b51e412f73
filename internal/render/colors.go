// Package render draws the demos' terminal output
package render

import (
	"github.com/fatih/color"

	"github.com/inferenco/cedra-randomness-demos/internal/domain/cards"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/loot"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Failure = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Muted   = color.New(color.FgHiBlack)
	Dim     = color.New(color.FgHiBlack, color.Bold)
)

// Title colors, one per demo
var (
	DiceTitle   = color.New(color.FgCyan, color.Bold)
	CoinTitle   = color.New(color.FgYellow, color.Bold)
	LootTitle   = color.New(color.FgMagenta, color.Bold)
	CardTitle   = color.New(color.FgBlue, color.Bold)
	CombatTitle = color.New(color.FgRed, color.Bold)
)

var rarityColors = map[loot.Rarity]*color.Color{
	loot.RarityCommon:    color.New(color.FgHiWhite),
	loot.RarityUncommon:  color.New(color.FgHiGreen),
	loot.RarityRare:      color.New(color.FgHiBlue),
	loot.RarityEpic:      color.New(color.FgHiMagenta),
	loot.RarityLegendary: color.New(color.FgHiYellow),
}

// RarityLabel renders "[RARE]" in the rarity's color
func RarityLabel(r loot.Rarity) string {
	label := "[" + r.String() + "]"
	if c, ok := rarityColors[r]; ok {
		return c.Sprint(label)
	}
	return label
}

var (
	redCard   = color.New(color.FgHiRed)
	blackCard = color.New(color.FgHiWhite)
)

// CardName renders a card, hearts and diamonds in red
func CardName(c cards.Card) string {
	if c.IsRed() {
		return redCard.Sprint(c.Name())
	}
	return blackCard.Sprint(c.Name())
}
