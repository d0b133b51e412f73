// Command combat-sim fights a monster with on-chain damage rolls.
package main

import (
	"github.com/inferenco/cedra-randomness-demos/internal/app"
	"github.com/inferenco/cedra-randomness-demos/internal/demos"
)

func main() {
	app.RunDemo((*demos.Runner).CombatSim)
}
