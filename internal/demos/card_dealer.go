package demos

import (
	"context"
	"strings"

	"github.com/inferenco/cedra-randomness-demos/internal/render"
)

// CardDealer deals a starting hand. The chain deals two cards; the local
// fallback shows the whole shuffled deck.
func (r *Runner) CardDealer(ctx context.Context) error {
	render.ClearScreen(r.out)
	r.println(render.CardTitle.Sprint("🃏  INFERENCO RANDOMNESS: CARD DEALER DEMO  🃏"))
	r.println("Shuffling deck using on-chain Fisher-Yates shuffle...")
	r.println("Connecting to contract...")
	r.println()

	res := r.randomness.DealHand(ctx)

	r.printf("\n%s\n", render.Success.Sprint("Reference Hand Dealt:"))
	names := make([]string, len(res.Value))
	for i, card := range res.Value {
		r.printf("  %s", render.CardName(card))
		names[i] = card.Name()
	}
	r.printf("\n\n")

	if res.Simulated() {
		r.printf("(Received %d cards from local shuffle)\n\n", len(res.Value))
	} else {
		r.printf("(Received %d cards from chain event)\n\n", len(res.Value))
	}

	r.println(render.Muted.Sprint("Note: The 'start_card_game' function deals a starting hand (2 cards) and creates a deck in state."))
	r.println(render.Muted.Sprint("Future actions would hit from that state."))

	r.announce(ctx, "🃏 Dealt "+strings.Join(names, " "))
	return nil
}
