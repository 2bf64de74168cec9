// Package cevtib provides a growable, bit-packed boolean vector for Go.
//
// A Vector stores each boolean in a single bit of a fixed-width unsigned
// integer block rather than a full byte or word, and it owns its backing
// storage outright: allocation, reallocation, and release follow an explicit
// lifecycle instead of delegating to a general-purpose dynamic array.
//
// # Quick Start
//
//	v := cevtib.New[uint64]()
//	defer v.Close()
//
//	v.Push(true)
//	v.Push(false)
//
//	bit, ok := v.Get(0) // true, true
//	fmt.Println(v)      // "10"
//
// # Length vs Capacity
//
// Len is the number of logical bits; Cap is the number of addressable bits
// across all allocated blocks. Len never exceeds Cap. Push extends the
// length, growing the reservation by capacity doubling when exhausted. Set
// never extends the length. Bits between Len and Cap are addressable through
// the unchecked accessors but carry no logical meaning.
//
// # Error Model
//
// Expected outcomes are recoverable: Get and Pop report absence with a
// comma-ok result, and Set returns ErrOutOfBounds past the length.
// Allocation failure and a resize that would leave no blocks are fatal and
// panic; there is no valid storage to fall back to.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Callers that share one across
// goroutines must add their own synchronization.
package cevtib
