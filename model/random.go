package model

import (
	"math/rand"
	"time"
)

// Entropy is the randomness source used to seed unseeded boards.
// *rand.Rand satisfies it.
type Entropy interface {
	Float64() float64
}

// NewEntropy returns a non-deterministic source seeded from the clock
func NewEntropy() Entropy {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewRandomBoard fills a height x width board where each cell is Alive with the given probability.
//
// With seed == 0 every cell draws from entropy (NewEntropy when nil). Otherwise cell (row, col)
// draws once from a fresh generator seeded with seed*row + col. That derivation collides across
// rows (seed 1: (0,5) and (1,4) share a seed) and colliding cells always agree.
func NewRandomBoard(width, height int, probability float64, seed uint64, entropy Entropy) *Board {
	b := NewBoard(width, height)

	if seed == 0 && entropy == nil {
		entropy = NewEntropy()
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			src := entropy
			if seed != 0 {
				src = rand.New(rand.NewSource(cellSeed(seed, row, col)))
			}
			b.cells[row][col] = cellOf(bernoulli(src, probability))
		}
	}

	return b
}

// cellSeed derives the per-cell seed; the product wraps at 64 bits
func cellSeed(seed uint64, row, col int) int64 {
	return int64(seed*uint64(row) + uint64(col))
}

func bernoulli(src Entropy, p float64) bool {
	return src.Float64() < p
}
