package consume

import (
	"sync/atomic"
	"unsafe"

	"github.com/notorious-go/consume/atom"
)

// Load begins a dependency chain at a scalar atomic location: it loads the
// cell and returns the value paired with a dependency on it. Every chain
// ultimately originates here or at LoadPointer.
//
// The returned pair orders, on the reader side, everything reached through
// its chain after the writer's release store of the observed value. See the
// package documentation for how the consume load maps onto Go's atomics.
func Load[T atom.Scalar](c *atom.Cell[T]) Dependent[T] {
	return DependentOn(c.Load())
}

// LoadPointer begins a dependency chain at a pointer-typed atomic location.
// It is the pointer-valued chain origination point: the returned Pointer is
// live, and accesses reached from it through chain-extending operations are
// ordered after the release store that published the pointer.
func LoadPointer[T any](a *atomic.Pointer[T]) Pointer[T] {
	p := a.Load()
	return Attach(p, DependencyOn(p))
}

// LoadIndirect continues a chain through one more level of indirection:
// given a live pointer to a pointer, it loads the inner pointer and returns
// it live, so multi-hop structures (a table of pointers to nodes, a node's
// next link) can be traversed without re-originating the chain at each hop.
//
// The inner load is atomic, allowing the pointed-to slot to be concurrently
// republished by writers.
func LoadIndirect[T any](p Pointer[*T]) Pointer[T] {
	inner := atomic.LoadPointer((*unsafe.Pointer)(p.p))
	return Pointer[T]{g: p.g, p: inner}
}

// LoadPointerAt manually reconstructs a chain across a boundary the type
// system cannot see through: given a raw pointer-to-pointer location and the
// token that covers it, it attaches the token and loads the pointer stored
// there. Use it when a dependent pointer had to travel as a bare pointer
// (through a callback, a C boundary, a container of raw pointers) alongside
// its extracted Dependency.
func LoadPointerAt[T any](loc **T, d Dependency) Pointer[T] {
	return LoadIndirect(Attach(loc, d))
}

// LoadValueAt is the value form of LoadPointerAt: it attaches d to a raw
// location and reads the value stored there, returning it as a live pair.
//
// Unlike the pointer form, the read is an ordinary load, not an atomic one:
// the location is expected to be quiescent or synchronized by the very chain
// being reconstructed, which is the situation manual reconstruction is for.
func LoadValueAt[T any](loc *T, d Dependency) Dependent[T] {
	return Attach(loc, d).Deref()
}
