package randomness

// Source tells where a value came from
type Source string

const (
	// SourceChain means the value was read back from the contract
	SourceChain Source = "chain"

	// SourceFallback means the value was generated locally
	SourceFallback Source = "fallback"
)

// Result is what every provider operation returns. Operations never fail:
// when the chain path breaks, Value holds a locally generated outcome,
// Source is SourceFallback and Reason holds the coded error that caused it.
// A chain result whose value had to be adjusted keeps SourceChain and sets
// Reason to describe the adjustment.
type Result[T any] struct {
	ID     string
	Value  T
	Source Source
	Reason error
	TxHash string
}

// Simulated reports whether the value was generated locally
func (r Result[T]) Simulated() bool {
	return r.Source == SourceFallback
}

// CoinFace is one side of a flipped coin
type CoinFace int

const (
	Heads CoinFace = iota + 1
	Tails
)

func (c CoinFace) String() string {
	switch c {
	case Heads:
		return "HEADS"
	case Tails:
		return "TAILS"
	default:
		return "EDGE"
	}
}

// MarshalText implements encoding.TextMarshaler
func (c CoinFace) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Pair is two six-sided dice derived from one roll of 36
type Pair struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// Sum returns the total of both dice
func (p Pair) Sum() int {
	return p.First + p.Second
}

// PairFromRoll splits a value in [1,36] into two dice in [1,6]
func PairFromRoll(v int) Pair {
	return Pair{
		First:  (v-1)/6 + 1,
		Second: (v-1)%6 + 1,
	}
}
