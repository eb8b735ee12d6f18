package consume

import (
	"fmt"
	"unsafe"

	// Uintptr and FromUintptr round-trip heap addresses through uintptr for
	// pointer tagging. That is only sound while the runtime does not move
	// heap objects, which this import asserts at program start.
	_ "go4.org/unsafe/assume-no-moving-gc"
)

// A Pointer carries a pointer obtained through a consume load. It supports a
// restricted set of operations compared to regular pointers, which allows it
// to continue carrying the dependency established by that load; each
// operation's classification as chain-extending, chain-preserving, or
// chain-breaking is part of its contract.
//
// A Pointer is live when its chain has been maintained since the load that
// originated it, and broken when it was constructed or overwritten from a
// source with no dependency. A broken Pointer behaves exactly like a raw
// pointer: every operation still works and returns the same values, but no
// ordering is implied. The two states are indistinguishable at runtime in
// normal builds; see Broken and the consumedebug build tag for the
// instrumented exception.
//
// In normal builds a Pointer is represented as a single pointer-sized word.
// The dependency is not stored beside the pointer: it is folded into the
// pointer value itself at construction, as an opaque zero offset, so that
// carrying a dependency costs nothing.
//
// The operations, with the resulting chain state in brackets:
//
//	FromRaw(p), the zero Pointer    [broken]  no dependency
//	Attach(p, d)                    [live]    d's chain attached
//	FromUintptr(u)                  [live]    rebuilt from integer bits, u's chain kept
//	LoadPointer(a)                  [live]    chain origination
//	LoadIndirect(p), LoadPointerAt  [live]    chain continued through indirection
//	q := p  (copy or assignment)    [q as p]  copying never consumes p's liveness
//	p = FromRaw(x)                  [broken]  raw assignment forfeits the chain
//	p.Uintptr()                     [live]    integer result inherits the chain
//	p.Index(i)                      [live]    chain extends to the indexed value
//	p.Get()                         [none]    address covered; member values are NOT
//	p.Deref()                       [live]    chain extends to the pointee value
//	Addr(&p)                        [live]    chain extends to the address computation
//	p.Value()                       [live]    chain extends to the returned raw pointer
//	p.Dependency()                  [as p]    pure token, pointer value discarded
//
// Where a row says [live], read "live if p is live": extending a broken
// chain yields a broken result.
//
// Comparisons are not part of the table because they are chain-neutral: the
// underlying raw pointers can be compared freely without breaking or
// extending anything. Use Equal and IsNil; direct == on the struct is
// representation equality, which under instrumented builds includes the
// bookkeeping byte. Comparing raw pointers is safe for the chain, with one
// compiler-facing caveat: the ordering guarantee assumes the compiler does
// not exploit a comparison's outcome to replace a dependent pointer with a
// known-equal independent one.
type Pointer[T any] struct {
	// guard is zero-size in normal builds; it sits first because a zero-size
	// field in the last position would force padding and break the one-word
	// representation.
	g guard
	p unsafe.Pointer
}

// FromRaw wraps an ordinary pointer carrying no dependency. The result is
// broken: it behaves like p itself and implies no ordering. Writing
// FromRaw's result over a live Pointer is how a chain is deliberately
// forfeited; there is no way back to live except a new consume load or an
// explicit Attach.
//
// The zero Pointer is equivalent to FromRaw[T](nil).
func FromRaw[T any](p *T) Pointer[T] {
	return Pointer[T]{g: brokenGuard(), p: unsafe.Pointer(p)}
}

// Attach pairs an ordinary pointer with an explicit dependency, asserting a
// chain the type system cannot see: typically a pointer that has passed
// through non-dependency-aware code and comes back accompanied by the token
// that covered it. The result is as live as d.
//
// Attach trusts the caller: attaching a token that does not actually cover p
// produces a pointer that claims ordering it does not have, and nothing will
// detect it.
func Attach[T any](p *T, d Dependency) Pointer[T] {
	return Pointer[T]{g: d.g, p: unsafe.Add(unsafe.Pointer(p), d.off)}
}

// FromUintptr rebuilds a dependent pointer from its integer representation,
// keeping the chain carried by the pair. Together with Uintptr it supports
// dependency-preserving pointer tagging: flatten the pointer, mask and test
// tag bits on the integer, rebuild.
//
// The integer must hold an address previously obtained from Uintptr on this
// program run, with any tag bits cleared again. The address round-trip
// assumes a non-moving garbage collector, which the package asserts via its
// assume-no-moving-gc import.
//
// The conversion is exempt from checkptr instrumentation: the rebuilt
// address arrives as plain integer bits with no pointer operand in the
// conversion expression, so the provenance rule checkptr enforces cannot be
// satisfied here.
//
//go:nocheckptr
func FromUintptr[T any](u Dependent[uintptr]) Pointer[T] {
	return Pointer[T]{g: u.Dependency.g, p: unsafe.Pointer(u.Value + u.Dependency.off)}
}

// Deref loads the pointee and extends the chain to the loaded value: the
// returned pair's token covers the value, not just the address it came from.
// Dereferencing nil panics exactly as it does with a raw pointer.
func (p Pointer[T]) Deref() Dependent[T] {
	return dependentWith(*(*T)(p.p), p.g)
}

// Index loads the value i elements past the pointee, as indexing a raw
// pointer to an array would, and extends the chain to the loaded value.
// Negative i indexes backward. The caller is responsible for i staying
// within the pointee's allocation.
func (p Pointer[T]) Index(i int) Dependent[T] {
	var zero T
	v := *(*T)(unsafe.Add(p.p, i*int(unsafe.Sizeof(zero))))
	return dependentWith(v, p.g)
}

// Get returns the raw pointee pointer for member access. The address
// computation is covered by p's chain, but the chain does NOT extend to
// values read through the result: p.Get().F is an ordinary read that
// architectures reordering independent loads may satisfy out of order with
// the load that produced p. When the member value itself must be ordered,
// read it through Deref, or re-cover the result with Attach.
func (p Pointer[T]) Get() *T {
	return (*T)(p.p)
}

// Value returns the raw pointer, extending the chain to the returned value.
// It exists for the circumstances where a bare *T is mandatory (handing the
// pointer to non-dependency-aware code, or invoking through a loaded
// function pointer) and the returned value itself must stay ordered. The
// pointer bits are re-mixed on the way out so the result remains tied to the
// chain rather than to whatever the compiler knows about p.
func (p Pointer[T]) Value() *T {
	return (*T)(unsafe.Add(p.p, mix(uintptr(p.p))))
}

// Uintptr flattens the pointer to its integer representation, extending the
// chain to the integer result. Ordinary arithmetic on the result, such as
// masking or testing tag bits, stays within the chain as long as the pair
// travels together. FromUintptr is the way back.
func (p Pointer[T]) Uintptr() Dependent[uintptr] {
	return dependentWith(uintptr(p.p), p.g)
}

// Addr returns a dependent pointer to p's own pointer word, extending the
// chain to the address computation. The result has the pointer-to-pointer
// shape that LoadIndirect continues chains through.
//
// The result aliases p's storage: it is valid only while p is, and a store
// of a new pointer into *p is visible through it.
//
// Addr is a package-level function rather than a method: its result
// instantiates Pointer with *T, and a method doing that would require
// Pointer's method set to instantiate Pointer for every deeper pointer type
// in turn.
func Addr[T any](p *Pointer[T]) Pointer[*T] {
	return Pointer[*T]{g: p.g, p: unsafe.Pointer(&p.p)}
}

// Dependency extracts a pure token equivalent to p's own chain, discarding
// the pointer value. The token can cover sibling accesses: Attach it to a
// raw pointer, Combine it with another chain, or Tag integer bits with it.
func (p Pointer[T]) Dependency() Dependency {
	return Dependency{g: p.g, off: mix(uintptr(p.p))}
}

// Equal reports whether p and q hold the same raw pointer. Comparisons are
// chain-neutral: they neither extend nor break either side.
func (p Pointer[T]) Equal(q Pointer[T]) bool {
	return p.p == q.p
}

// IsNil reports whether p holds a nil pointer. Chain-neutral.
func (p Pointer[T]) IsNil() bool {
	return p.p == nil
}

// Broken reports whether p is known to carry a broken chain. Without the
// consumedebug build tag, chain state is not tracked and Broken always
// returns false: a broken Pointer is type-indistinguishable from a live
// one, which is precisely the hazard instrumented builds exist to surface.
func (p Pointer[T]) Broken() bool {
	return p.g.broken()
}

// MustLive returns p unchanged after asserting its chain: under the
// consumedebug build tag it panics if p is broken, and otherwise it is a
// no-op. Place it where an algorithm's correctness depends on the chain
// having survived, so instrumented test runs catch silent breaks at the
// point of use rather than as downstream misordering.
func (p Pointer[T]) MustLive() Pointer[T] {
	p.g.mustLive("MustLive")
	return p
}

// String returns a human-readable representation of the pointer. Instrumented
// builds include the chain state, which makes %v output useful when debugging
// where a chain broke.
func (p Pointer[T]) String() string {
	if !Instrumented {
		return fmt.Sprintf("Pointer(%p)", p.p)
	}
	state := "live"
	if p.g.broken() {
		state = "broken"
	}
	return fmt.Sprintf("Pointer(%p, %s)", p.p, state)
}
