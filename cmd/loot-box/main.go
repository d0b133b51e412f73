// Command loot-box opens a three-item loot box and reads the drops from the indexer.
package main

import (
	"github.com/inferenco/cedra-randomness-demos/internal/app"
	"github.com/inferenco/cedra-randomness-demos/internal/demos"
)

func main() {
	app.RunDemo((*demos.Runner).LootBox)
}
