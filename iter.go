package cevtib

import "iter"

// Bits returns a forward iterator over the logical bits in index order,
// from 0 to Len()-1. The sequence ends exactly where Get first reports
// absence. It is read-only and restartable; ranging again starts over.
func (v *Vector[B]) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; ; i++ {
			bit, ok := v.Get(i)
			if !ok {
				return
			}
			if !yield(bit) {
				return
			}
		}
	}
}

// Blocks returns a forward iterator over the raw storage blocks, one per
// allocated block in storage order. Blocks past the logical length are
// included; their content carries no logical meaning.
func (v *Vector[B]) Blocks() iter.Seq[B] {
	return func(yield func(B) bool) {
		for i := 0; i < v.buf.Len(); i++ {
			if !yield(v.buf.Load(i)) {
				return
			}
		}
	}
}
