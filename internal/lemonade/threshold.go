package lemonade

import "math/rand/v2"

// Threshold bounds for RequiredTaps.
const (
	MinThreshold = 2
	MaxThreshold = 8
)

// Roller produces the next squeeze threshold.
type Roller func() int

// GenerateEvenThreshold returns 2, 4, 6 or 8 with equal probability.
func GenerateEvenThreshold() int {
	return (rand.IntN(4) + 1) * 2
}

// SeededThreshold returns a Roller with the same distribution as
// GenerateEvenThreshold, drawing from a deterministic source.
func SeededThreshold(seed uint64) Roller {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func() int {
		return (r.IntN(4) + 1) * 2
	}
}

// ValidThreshold reports whether n is an even value in [MinThreshold, MaxThreshold].
func ValidThreshold(n int) bool {
	return n >= MinThreshold && n <= MaxThreshold && n%2 == 0
}
