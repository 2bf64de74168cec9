// Package mem provides memory allocation utilities for block storage.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation of unsigned integer blocks. All use
// of the unsafe package is confined to this package so the raw memory
// surface of the module stays small and auditable.
package mem
