package rng_test

import (
	"fmt"

	"github.com/algorithm-ninja/konig/rng"
)

// ExampleNew shows that handles created from the same seed are
// interchangeable: they produce the same draws in the same order.
func ExampleNew() {
	const bound = 1048576

	a := rng.New(7)
	b := rng.New(7)

	equal := true
	for i := 0; i < 100; i++ {
		if a.Intn(bound) != b.Intn(bound) {
			equal = false
		}
	}
	fmt.Println("same seed, same stream:", equal)
	// Output:
	// same seed, same stream: true
}
