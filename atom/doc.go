// Package atom provides a minimal generic atomic cell for scalar values,
// supporting exactly the two operations consume-ordered code needs from a
// shared location: a release store on the writer side and a plain atomic load
// on the reader side.
//
// # Why This Package Exists
//
// The consume package starts dependency chains from atomic locations. For
// pointer-typed locations, [sync/atomic.Pointer] is the natural storage and
// is used directly. For scalar locations the stdlib coverage is incomplete:
// sync/atomic offers 32- and 64-bit integers, bool, and uintptr, but no
// uint8, uint16, float32, or float64, and no generic type covering all of
// them. Cell fills that gap with a single generic type so that a flag, a
// length, a version counter, or a floating-point reading can all serve as
// the root of a dependency chain.
//
// Raw sync/atomic types can serve the same purpose when the element width
// happens to match, and code that already holds an atomic.Uint64 should keep
// using it. Cell exists for the remaining widths and for generic code that
// must not care which scalar it synchronizes on.
//
// # When NOT to Use This Package
//
// This package implements one very specific storage variant. If you need ANY
// functionality beyond what's provided here, you should use alternatives:
//
//   - Pointer locations: use sync/atomic.Pointer. Cell's element constraint
//     excludes pointers on purpose: a pointer punned into an integer word is
//     invisible to the garbage collector and the pointee may be reclaimed.
//   - Compare-and-swap, add, swap, or any read-modify-write: use the
//     sync/atomic types directly. Consume-ordered read-modify-write is out
//     of scope for this module.
//   - Values wider than eight bytes, strings, or composite types: use a
//     pointer to an immutable value and sync/atomic.Pointer.
//
// The philosophy here is explicit: there is no one-size-fits-all atomic
// container. Cell is the smallest storage type that makes every scalar width
// a valid chain origin, and nothing more.
//
// # Ordering
//
// The Go memory model gives every sync/atomic operation release semantics on
// stores and acquire semantics on loads (they behave as if sequentially
// consistent). Cell.Store is therefore always a valid release store, and
// Cell.Load is at least as strong as the relaxed load that a consume load
// requires. Code built on Cell remains correct on every GOARCH; see the
// consume package documentation for how this interacts with dependency
// ordering.
//
// # Implementation
//
// A Cell stores the value's bits in a single atomic.Uint64 word. Scalars are
// moved in and out of the word by writing through a local uint64, which
// round-trips every permitted element type regardless of byte order. The
// zero Cell holds the zero value of its element type and is ready to use.
package atom
