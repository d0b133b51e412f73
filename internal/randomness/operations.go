package randomness

import (
	"context"
	"encoding/json"
	"log"

	"github.com/inferenco/cedra-randomness-demos/internal/clients/cedra"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/cards"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/combat"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/loot"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
	"github.com/inferenco/cedra-randomness-demos/internal/journal"
)

// Roll returns a value in [1, sides]. sides below 1 is treated as 1.
func (p *Provider) Roll(ctx context.Context, sides int) Result[int] {
	res := p.roll(ctx, sides)
	record(ctx, p, OpRoll, res)
	return res
}

// Flip is a roll of two, one meaning heads
func (p *Provider) Flip(ctx context.Context) Result[CoinFace] {
	roll := p.roll(ctx, 2)

	face := Tails
	if roll.Value == 1 {
		face = Heads
	}

	res := Result[CoinFace]{ID: roll.ID, Value: face, Source: roll.Source, Reason: roll.Reason, TxHash: roll.TxHash}
	record(ctx, p, OpFlip, res)
	return res
}

// RollPair derives two six-sided dice from a single roll of 36
func (p *Provider) RollPair(ctx context.Context) Result[Pair] {
	roll := p.roll(ctx, 36)

	res := Result[Pair]{ID: roll.ID, Value: PairFromRoll(roll.Value), Source: roll.Source, Reason: roll.Reason, TxHash: roll.TxHash}
	record(ctx, p, OpRollPair, res)
	return res
}

// ResolveAttack spends one roll of combat.SeedSides on both the damage and
// the crit decision. The result inherits the roll's source.
func (p *Provider) ResolveAttack(ctx context.Context, minDmg, maxDmg, critChancePercent int) Result[combat.Attack] {
	roll := p.roll(ctx, combat.SeedSides)

	res := Result[combat.Attack]{
		ID:     roll.ID,
		Value:  combat.ResolveAttack(roll.Value, minDmg, maxDmg, critChancePercent),
		Source: roll.Source,
		Reason: roll.Reason,
		TxHash: roll.TxHash,
	}
	record(ctx, p, OpResolveAttack, res)
	return res
}

func (p *Provider) roll(ctx context.Context, sides int) Result[int] {
	if sides < 1 {
		sides = 1
	}
	res := Result[int]{ID: p.ids.New()}

	value, txHash, err := p.rollOnChain(ctx, sides)
	if err != nil {
		if !p.simulated {
			log.Printf("Could not read roll from chain, using fallback: %v", err)
		}
		res.Value = p.roller.Roll(sides)
		res.Source = SourceFallback
		res.Reason = err
		res.TxHash = txHash
		return res
	}

	res.Value = value
	res.Source = SourceChain
	res.TxHash = txHash
	return res
}

func (p *Provider) rollOnChain(ctx context.Context, sides int) (int, string, error) {
	if !p.simulated {
		log.Printf("Requesting on-chain random roll via `%s::%s`...", p.module, FuncRollDice)
	}

	sub, err := p.submit(ctx, FuncRollDice, cedra.U64(uint64(sides)))
	if err != nil {
		return 0, "", err
	}

	var state lastRoll
	if err := p.readResource(ctx, ResourceDiceGame, &state); err != nil {
		return 0, sub.TransactionHash, err
	}
	if state.LastRoll == nil {
		return 0, sub.TransactionHash, dnderr.Parsef("last_roll missing from %s", ResourceDiceGame)
	}

	value := state.LastRoll.Int()
	if value < 1 || value > sides {
		return 0, sub.TransactionHash, dnderr.Parsef("last_roll %d outside [1,%d]", value, sides).
			WithMeta("tx_hash", sub.TransactionHash)
	}

	return value, sub.TransactionHash, nil
}

// OpenContainer returns exactly n loot items. An on-chain drop longer than n
// is truncated and a shorter one is topped up locally; either adjustment is
// recorded in Reason while Source stays SourceChain. n below 0 is treated as 0.
func (p *Provider) OpenContainer(ctx context.Context, n int) Result[[]loot.Item] {
	if n < 0 {
		n = 0
	}
	res := Result[[]loot.Item]{ID: p.ids.New()}

	if n == 0 {
		res.Value = []loot.Item{}
		res.Source = SourceFallback
		record(ctx, p, OpOpenContainer, res)
		return res
	}

	items, txHash, err := p.openOnChain(ctx, n)
	res.TxHash = txHash

	switch {
	case err == nil && len(items) == 0:
		err = dnderr.Parsef("transaction %s emitted no loot events", txHash)
		fallthrough
	case err != nil:
		if !p.simulated {
			log.Printf("Could not read loot from chain, using fallback: %v", err)
		}
		res.Value = loot.Synthesize(p.roller, n)
		res.Source = SourceFallback
		res.Reason = err
	case len(items) > n:
		res.Value = items[:n]
		res.Source = SourceChain
		res.Reason = dnderr.Parsef("contract dropped %d items, %d requested", len(items), n).
			WithMeta("tx_hash", txHash)
	case len(items) < n:
		res.Value = append(items, loot.Synthesize(p.roller, n-len(items))...)
		res.Source = SourceChain
		res.Reason = dnderr.Parsef("contract dropped %d items, %d requested; rest generated locally", len(items), n).
			WithMeta("tx_hash", txHash)
	default:
		res.Value = items
		res.Source = SourceChain
	}

	record(ctx, p, OpOpenContainer, res)
	return res
}

func (p *Provider) openOnChain(ctx context.Context, n int) ([]loot.Item, string, error) {
	if !p.simulated {
		log.Printf("Opening loot box via `%s::%s`...", p.module, FuncOpenLootBox)
	}

	sub, err := p.submit(ctx, FuncOpenLootBox, cedra.U64(uint64(n)))
	if err != nil {
		return nil, "", err
	}

	tx, err := p.waitForTransaction(ctx, sub.TransactionHash)
	if err != nil {
		return nil, sub.TransactionHash, err
	}

	items, err := loot.DecodeDrops(tx.EventData())
	if err != nil {
		return nil, sub.TransactionHash, err
	}
	return items, sub.TransactionHash, nil
}

// DealHand returns the contract's player_hand, usually two cards. The local
// fallback returns the whole shuffled deck of 52 instead, so callers must
// handle both lengths.
func (p *Provider) DealHand(ctx context.Context) Result[[]cards.Card] {
	res := Result[[]cards.Card]{ID: p.ids.New()}

	hand, txHash, err := p.dealOnChain(ctx)
	res.TxHash = txHash
	if err != nil {
		if !p.simulated {
			log.Printf("Could not parse hand from chain, using simulated shuffle: %v", err)
		}
		res.Value = cards.ShuffledDeck(p.roller)
		res.Source = SourceFallback
		res.Reason = err
	} else {
		res.Value = hand
		res.Source = SourceChain
	}

	record(ctx, p, OpDealHand, res)
	return res
}

func (p *Provider) dealOnChain(ctx context.Context) ([]cards.Card, string, error) {
	if !p.simulated {
		log.Printf("Shuffling deck via `%s::%s`...", p.module, FuncStartCardGame)
	}

	sub, err := p.submit(ctx, FuncStartCardGame)
	if err != nil {
		return nil, "", err
	}

	var state playerHand
	if err := p.readResource(ctx, ResourceCardGame, &state); err != nil {
		return nil, sub.TransactionHash, err
	}

	values := make([]int, len(state.PlayerHand))
	for i, v := range state.PlayerHand {
		values[i] = v.Int()
	}

	hand, err := cards.FromInts(values)
	if err != nil {
		return nil, sub.TransactionHash, err
	}
	return hand, sub.TransactionHash, nil
}

// record appends a result to the journal. Failures are logged and dropped.
func record[T any](ctx context.Context, p *Provider, op string, res Result[T]) {
	if p.journal == nil {
		return
	}

	value, err := json.Marshal(res.Value)
	if err != nil {
		log.Printf("Failed to encode %s outcome %s: %v", op, res.ID, err)
		return
	}

	entry := &journal.Entry{
		ID:        res.ID,
		Operation: op,
		Source:    string(res.Source),
		Value:     value,
		TxHash:    res.TxHash,
	}
	if res.Reason != nil {
		entry.Reason = res.Reason.Error()
	}

	if err := p.journal.Append(ctx, entry); err != nil {
		log.Printf("Failed to record %s outcome %s: %v", op, res.ID, err)
	}
}
