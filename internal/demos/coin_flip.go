package demos

import (
	"context"
	"time"

	"github.com/inferenco/cedra-randomness-demos/internal/randomness"
	"github.com/inferenco/cedra-randomness-demos/internal/render"
)

const (
	coinDots     = 5
	coinDotDelay = 200 * time.Millisecond
)

// CoinFlip flips a coin every time Enter is pressed until input ends
func (r *Runner) CoinFlip(ctx context.Context) error {
	render.ClearScreen(r.out)
	r.println(render.CoinTitle.Sprint("🪙  INFERENCO RANDOMNESS: COIN FLIP DEMO  🪙"))
	r.println("Flipping a coin using on-chain randomness...")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printf("\nPress Enter to flip (or Ctrl+C to quit)...")
		if _, ok := r.readLine(); !ok {
			r.println("\nNon-interactive mode detected. Exiting.")
			return nil
		}

		if err := r.animator.Dots(ctx, "Flipping", coinDots, coinDotDelay); err != nil {
			return err
		}

		res := r.randomness.Flip(ctx)
		face := res.Value.String() + "!"
		if res.Value == randomness.Heads {
			r.printf("\n%s\n", render.Success.Sprint(face))
		} else {
			r.printf("\n%s\n", render.Failure.Sprint(face))
		}
		r.simulationNote(res.Simulated(), "(Simulation Mode - local randomness)")

		r.announce(ctx, "🪙 "+face)
	}
}
