package whisper

import "math/rand/v2"

// Picker draws a uniformly distributed int in [0, n). Implementations must be
// safe for concurrent use.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// RandomPicker returns a Picker backed by the runtime's global random source.
func RandomPicker() Picker { return globalPicker{} }
