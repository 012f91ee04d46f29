package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Uint64n func(n uint64) uint64
	Bool    func() bool
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Uint64n: func(n uint64) uint64 { return random.Uint64() % n },
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
	}
}
