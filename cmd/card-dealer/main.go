// Command card-dealer deals a starting hand from the contract's shuffled deck.
package main

import (
	"github.com/inferenco/cedra-randomness-demos/internal/app"
	"github.com/inferenco/cedra-randomness-demos/internal/demos"
)

func main() {
	app.RunDemo((*demos.Runner).CardDealer)
}
