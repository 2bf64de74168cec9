// Package fixed provides a fixed-capacity bit vector over 64-bit words.
//
// Unlike the growable Vector in the root package, a fixed BitVec never
// reallocates: its capacity is chosen at creation, either by allocating with
// New or by wrapping caller-owned storage with FromBlocks. The latter form
// performs no allocation at all, which suits pre-sized or pooled buffers.
//
// A BitVec is not safe for concurrent use.
package fixed
