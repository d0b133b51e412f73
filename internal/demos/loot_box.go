package demos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/inferenco/cedra-randomness-demos/internal/render"
)

// LootBoxSize is how many items one box holds
const LootBoxSize = 3

// LootBox opens one box and reveals its items one at a time
func (r *Runner) LootBox(ctx context.Context) error {
	render.ClearScreen(r.out)
	r.println(render.LootTitle.Sprint("📦  INFERENCO RANDOMNESS: LOOT BOX DEMO  📦"))
	r.printf("Opening a loot box with %d random items...\n", LootBoxSize)
	r.println("Connecting to contract...")
	r.println()
	if err := r.animator.Pause(ctx, time.Second); err != nil {
		return err
	}

	res := r.randomness.OpenContainer(ctx, LootBoxSize)
	r.simulationNote(res.Simulated(), "(Simulation Mode - Contract response empty/failed)")

	summary := make([]string, 0, len(res.Value))
	for _, item := range res.Value {
		r.printf("%s Item #%d\n", render.RarityLabel(item.Rarity), item.ItemID)
		r.printf("  └── Power: %d\n\n", item.Power)
		summary = append(summary, fmt.Sprintf("[%s] #%d (power %d)", item.Rarity, item.ItemID, item.Power))

		if err := r.animator.Pause(ctx, 800*time.Millisecond); err != nil {
			return err
		}
	}

	r.println(render.Success.Sprint("Done!"))

	r.announce(ctx, "📦 Loot box opened: "+strings.Join(summary, ", "))
	return nil
}
