package cards

import (
	"strconv"

	"github.com/inferenco/cedra-randomness-demos/internal/dice"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

const ranksPerSuit = 13

var (
	suits = []string{"♠", "♥", "♦", "♣"}
	ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// Card is an index into a standard deck: rank = idx % 13, suit = idx / 13
type Card int

// Valid reports whether c is within [0, 52)
func (c Card) Valid() bool {
	return c >= 0 && c < DeckSize
}

// Rank returns 0 for a two through 12 for an ace
func (c Card) Rank() int {
	return int(c) % ranksPerSuit
}

// Suit returns 0..3 for spades, hearts, diamonds, clubs
func (c Card) Suit() int {
	return int(c) / ranksPerSuit
}

// IsRed reports hearts and diamonds
func (c Card) IsRed() bool {
	s := c.Suit()
	return s == 1 || s == 2
}

// Name renders the card as rank followed by suit symbol, e.g. "10♥"
func (c Card) Name() string {
	if !c.Valid() {
		return "??"
	}
	return ranks[c.Rank()] + suits[c.Suit()]
}

func (c Card) String() string {
	return c.Name()
}

// NewDeck returns the identity deck 0..51
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}
	return deck
}

// Shuffle permutes the deck in place with an unbiased Fisher-Yates pass
func Shuffle(r dice.Roller, deck []Card) {
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// ShuffledDeck returns a full deck in random order
func ShuffledDeck(r dice.Roller) []Card {
	deck := NewDeck()
	Shuffle(r, deck)
	return deck
}

// ParseHand converts the contract's player_hand strings into cards
func ParseHand(values []string) ([]Card, error) {
	if len(values) == 0 {
		return nil, dnderr.Parsef("hand is empty")
	}

	ints := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "parse card").WithMeta("index", i)
		}
		ints[i] = n
	}
	return FromInts(ints)
}

// FromInts converts raw indices into cards, rejecting anything outside the deck
func FromInts(values []int) ([]Card, error) {
	if len(values) == 0 {
		return nil, dnderr.Parsef("hand is empty")
	}

	hand := make([]Card, len(values))
	for i, n := range values {
		card := Card(n)
		if !card.Valid() {
			return nil, dnderr.Parsef("card %d out of range", n).WithMeta("index", i)
		}
		hand[i] = card
	}
	return hand, nil
}

// Ints converts cards back to raw indices
func Ints(hand []Card) []int {
	out := make([]int, len(hand))
	for i, c := range hand {
		out[i] = int(c)
	}
	return out
}
