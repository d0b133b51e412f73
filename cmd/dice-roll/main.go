// Command dice-roll rolls two dice from a single on-chain roll of 36.
package main

import (
	"github.com/inferenco/cedra-randomness-demos/internal/app"
	"github.com/inferenco/cedra-randomness-demos/internal/demos"
)

func main() {
	app.RunDemo((*demos.Runner).DiceRoll)
}
