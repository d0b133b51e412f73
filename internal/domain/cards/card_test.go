package cards_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inferenco/cedra-randomness-demos/internal/dice"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/cards"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

func TestCard_Decode(t *testing.T) {
	tests := []struct {
		card     cards.Card
		wantRank int
		wantSuit int
		wantName string
		wantRed  bool
	}{
		{card: 0, wantRank: 0, wantSuit: 0, wantName: "2♠"},
		{card: 12, wantRank: 12, wantSuit: 0, wantName: "A♠"},
		{card: 13, wantRank: 0, wantSuit: 1, wantName: "2♥", wantRed: true},
		{card: 34, wantRank: 8, wantSuit: 2, wantName: "10♦", wantRed: true},
		{card: 51, wantRank: 12, wantSuit: 3, wantName: "A♣"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantRank, tt.card.Rank())
			assert.Equal(t, tt.wantSuit, tt.card.Suit())
			assert.Equal(t, tt.wantName, tt.card.Name())
			assert.Equal(t, tt.wantRed, tt.card.IsRed())
		})
	}

	assert.Equal(t, "??", cards.Card(52).Name())
}

func TestShuffledDeck_IsPermutation(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 20; i++ {
		deck := cards.Ints(cards.ShuffledDeck(roller))
		require.Len(t, deck, cards.DeckSize)

		sort.Ints(deck)
		for want, got := range deck {
			require.Equal(t, want, got)
		}
	}
}

func TestShuffle_Unbiased(t *testing.T) {
	// every card should land in position 0 roughly 1/52 of the time
	const trials = 52000
	roller := dice.NewSeededRoller(3)
	firstCounts := make([]int, cards.DeckSize)

	for i := 0; i < trials; i++ {
		deck := cards.ShuffledDeck(roller)
		firstCounts[deck[0]]++
	}

	for card, count := range firstCounts {
		assert.InDelta(t, 1000, count, 150, "card %d", card)
	}
}

func TestParseHand(t *testing.T) {
	hand, err := cards.ParseHand([]string{"1", "51"})
	require.NoError(t, err)
	assert.Equal(t, []cards.Card{1, 51}, hand)

	for _, bad := range [][]string{nil, {"x"}, {"3", "52"}, {"-1"}} {
		_, err := cards.ParseHand(bad)
		require.Error(t, err)
		assert.Equal(t, dnderr.CodeParse, dnderr.GetCode(err))
	}
}

func TestFromInts(t *testing.T) {
	hand, err := cards.FromInts([]int{0, 12, 13})
	require.NoError(t, err)
	assert.Equal(t, "2♠ A♠ 2♥", hand[0].Name()+" "+hand[1].Name()+" "+hand[2].Name())

	_, err = cards.FromInts([]int{52})
	assert.Equal(t, dnderr.CodeParse, dnderr.GetCode(err))

	_, err = cards.FromInts(nil)
	assert.Equal(t, dnderr.CodeParse, dnderr.GetCode(err))
}
