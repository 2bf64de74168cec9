// Package store owns the heap allocation backing a bit vector.
//
// A Buffer holds a contiguous run of unsigned integer blocks with an
// explicit allocate/reallocate/release lifecycle:
//
//   - Alloc reserves zero-initialized storage for a positive block count
//   - Realloc resizes the reservation, preserving the overlapping content
//   - Release frees the reservation exactly once
//
// Allocation failure and non-positive block counts are fatal: there is no
// valid buffer to fall back to, so these panic instead of returning errors.
// The Buffer is not safe for concurrent use.
package store
