// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// picker.go - Random sources for choosing a reply out of a candidate list.

package eliza

import (
	"math/rand/v2"
	"sync"
)

// Picker draws an index uniformly from [0, n). n is always positive.
type Picker interface {
	Intn(n int) int
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(n int) int

// Intn calls f(n).
func (f PickerFunc) Intn(n int) int {
	return f(n)
}

// RandomPicker returns a Picker backed by the global math/rand/v2 source,
// which is safe for concurrent use.
func RandomPicker() Picker {
	return PickerFunc(rand.IntN)
}

type seededPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededPicker returns a deterministic Picker. The same seed always
// produces the same sequence of draws.
func NewSeededPicker(seed uint64) Picker {
	return &seededPicker{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (p *seededPicker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}
