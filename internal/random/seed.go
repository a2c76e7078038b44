// Package random provides the random sources used by decks and bots.
//
// Games never touch the global generator; they take a Source so tests and replays with a
// fixed seed are reproducible.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the subset of *rand.Rand the games need.
type Source interface {
	Intn(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New - returns a generator seeded with seed, or with a fresh crypto seed when seed is 0.
// The seed actually used is returned so it can be logged.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}

	return rand.New(rand.NewSource(seed)), seed, nil //nolint: gosec // games, not crypto
}

// Shuffle - Fisher-Yates shuffle driven by src.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, src.Intn(i+1))
	}
}
