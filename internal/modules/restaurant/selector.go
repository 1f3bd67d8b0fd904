package restaurant

import "math/rand/v2"

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

// RandomPicker draws uniformly from math/rand/v2.
func RandomPicker() Picker {
	return rand.IntN
}

// FixedPicker always returns idx, clamped into range. Used to make selection repeatable.
func FixedPicker(idx int) Picker {
	return func(n int) int {
		if idx < 0 {
			return 0
		}
		if idx >= n {
			return n - 1
		}
		return idx
	}
}

// Pick returns one element of a non-empty slice. The input is not modified.
func (p Picker) Pick(candidates []Candidate) Candidate {
	return candidates[p(len(candidates))]
}
