package atom

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a Cell can hold: every integer and
// floating-point type plus bool. All of them fit in the cell's single word.
//
// Pointer types are excluded at compile time. A pointer stored as integer
// bits would be hidden from the garbage collector; use sync/atomic.Pointer
// for pointer locations instead.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool
}

// A Cell is an atomic storage location for a single scalar value. Stores have
// release semantics and loads have at least acquire semantics, per the Go
// memory model's guarantees for sync/atomic operations.
//
// The zero Cell holds the zero value of T and is ready to use. A Cell must
// not be copied after first use.
type Cell[T Scalar] struct {
	bits atomic.Uint64
}

// New creates a Cell holding v.
//
// New is a convenience for package-level locations that start non-zero; the
// zero Cell is equally valid when the initial value is T's zero value.
func New[T Scalar](v T) *Cell[T] {
	c := new(Cell[T])
	c.Store(v)
	return c
}

// Load atomically loads and returns the stored value.
func (c *Cell[T]) Load() T {
	return unpack[T](c.bits.Load())
}

// Store atomically stores v. The store has release semantics: every write
// that happened before Store in the storing goroutine is visible to any
// goroutine that observes v through Load.
func (c *Cell[T]) Store(v T) {
	c.bits.Store(pack(v))
}

// pack moves v's bits into the low bytes of a word. Every Scalar type is at
// most eight bytes wide, so the write through the local word cannot overflow.
func pack[T Scalar](v T) uint64 {
	var word uint64
	*(*T)(unsafe.Pointer(&word)) = v
	return word
}

// unpack is the inverse of pack. Writing and reading through the same local
// word layout makes the round trip exact for every permitted width and byte
// order.
func unpack[T Scalar](word uint64) T {
	return *(*T)(unsafe.Pointer(&word))
}
