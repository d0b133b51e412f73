// Command coin-flip flips a coin on every Enter until Ctrl+C or EOF.
package main

import (
	"github.com/inferenco/cedra-randomness-demos/internal/app"
	"github.com/inferenco/cedra-randomness-demos/internal/demos"
)

func main() {
	app.RunDemo((*demos.Runner).CoinFlip)
}
