package main

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rand supplies the randomized starting-value draws. It carries an
// explicit source so tests can seed it; a nil *Rand anywhere in the
// pipeline disables randomization
type Rand struct {
	src rand.Source
}

func NewRand(seed uint64) *Rand {
	return &Rand{src: rand.NewSource(seed)}
}

// Uniform draws from [min, max)
func (r *Rand) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: r.src}.Rand()
}
