package demos

import (
	"context"
	"fmt"
	"time"

	"github.com/inferenco/cedra-randomness-demos/internal/render"
)

const (
	diceFrames     = 15
	diceFrameDelay = 100 * time.Millisecond
)

// DiceRoll rolls two dice from a single roll of 36
func (r *Runner) DiceRoll(ctx context.Context) error {
	render.ClearScreen(r.out)
	r.println(render.DiceTitle.Sprint("🎲  INFERENCO RANDOMNESS: 2D6 DICE ROLL  🎲"))
	r.println("Rolling two dice on-chain...")
	if err := r.animator.Pause(ctx, time.Second); err != nil {
		return err
	}
	r.printf("\n\n")

	err := r.animator.Play(ctx, diceFrames, diceFrameDelay, func(int) []string {
		return render.TwoDice(r.roller.Roll(6), r.roller.Roll(6))
	})
	if err != nil {
		return err
	}

	res := r.randomness.RollPair(ctx)
	pair := res.Value

	r.printf("%s", render.Join(render.TwoDice(pair.First, pair.Second)))
	result := fmt.Sprintf("RESULT: %d + %d = %d", pair.First, pair.Second, pair.Sum())
	r.printf("\n%s\n", render.Success.Sprint(result))
	r.simulationNote(res.Simulated(), "(Simulation Mode - local randomness)")

	r.announce(ctx, "🎲 "+result)
	return nil
}
