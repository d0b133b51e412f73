package dice

// Roller is the local pseudo-random source used whenever the chain cannot
// provide a value. Tests inject a predetermined implementation.
type Roller interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int

	// Roll returns a uniform value in [1, sides]. sides must be positive.
	Roll(sides int) int

	// Shuffle permutes n elements through swap, every permutation equally likely
	Shuffle(n int, swap func(i, j int))
}
