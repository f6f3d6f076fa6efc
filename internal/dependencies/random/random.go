package random

import "math/rand/v2"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string

	// Shuffle randomizes the order of n elements via the swap function
	Shuffle(n int, swap func(i, j int))
}

// PCGRandom implements Random using math/rand/v2's default source
type PCGRandom struct{}

// New creates a new PCGRandom
func New() *PCGRandom {
	return &PCGRandom{}
}

// Intn returns a random int in [0, n)
func (r *PCGRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// String generates a random string of the given length from the given alphabet
func (r *PCGRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

// Shuffle performs a Fisher-Yates shuffle over n elements
func (r *PCGRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
