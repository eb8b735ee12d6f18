package consume

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// A Dependency is an opaque token recording that a computation depends on a
// previously loaded value. Tokens originate from the consume-load family and
// from DependencyOn; they are merged with Combine, mixed into integer pointer
// representations with Tag, and attached to raw pointers with Attach to keep
// reader-side accesses inside the chain of the load that produced them.
//
// The token's runtime contribution is always a zero offset, but the offset is
// computed from live data through an opaque mixing function, so the compiler
// cannot substitute the constant zero and discard the data flow. Folding a
// token into a pointer is the addition of an offset the optimizer must treat
// as unknown, which is the property that keeps dependent accesses ordered on
// architectures that honor address dependencies.
//
// The zero Dependency carries no provenance. Chains built on it imply no
// ordering, and instrumented builds report it broken.
type Dependency struct {
	g   guard
	off uintptr
}

// DependencyOn returns a token that depends on v, without retaining v. The
// token's data flow is derived from v's leading bytes, so it stays tied to
// whatever computation produced v.
//
// Use DependencyOn when the thing whose load must be ordered is not itself a
// pointer: a version counter, a length, a flag. The returned token is then
// attached to the pointers whose pointees the counter guards.
func DependencyOn[T any](v T) Dependency {
	return Dependency{g: liveGuard(), off: mix(firstWord(&v))}
}

// Combine merges two dependencies into one that implies ordering with
// respect to both inputs' release operations. The merge is associative,
// commutative, and idempotent, so chains may be joined in any grouping and
// order.
//
// Under instrumented builds the result is live only when both inputs are
// live: a combined token claims coverage of both chains, and a broken input
// falsifies that claim.
//
// To combine a dependent pointer into a token, extract its token first:
//
//	d = consume.Combine(d, p.Dependency())
func Combine(a, b Dependency) Dependency {
	return Dependency{g: mergeGuards(a.g, b.g), off: a.off | b.off}
}

// Tag mixes a dependency into an integer pointer representation. The result
// equals bits numerically (the token's offset is zero) but inherits d's
// chain, which keeps pointer-tagging arithmetic inside the dependency chain.
//
// Tag covers the case where the integer bits did not come from a dependent
// pointer's Uintptr (whose Dependent pair already carries its token). The
// way back from tagged bits to a dependent pointer is FromUintptr.
func Tag[I constraints.Integer](bits I, d Dependency) I {
	return bits | I(d.off)
}

// Broken reports whether d is known to carry no dependency chain. Without
// the consumedebug build tag, chain state is not tracked and Broken always
// returns false.
func (d Dependency) Broken() bool { return d.g.broken() }

// mix computes the always-zero offset a token contributes to addresses. The
// xor is trivially zero, but the function is kept out of line so the result
// stays tied to x at every construction site instead of folding to an
// untraceable constant.
//
//go:noinline
func mix(x uintptr) uintptr { return x ^ x }

// firstWord reads up to one word of v's leading bytes, giving the mixer real
// data to depend on for values of any type and size. The bytes are read one
// at a time: T's alignment can be smaller than what any wider load would
// require, so a word-sized read through v is not generally legal.
func firstWord[T any](v *T) uintptr {
	n := unsafe.Sizeof(*v)
	if n > unsafe.Sizeof(uintptr(0)) {
		n = unsafe.Sizeof(uintptr(0))
	}
	var w uintptr
	for i := uintptr(0); i < n; i++ {
		w |= uintptr(*(*byte)(unsafe.Add(unsafe.Pointer(v), i))) << (8 * i)
	}
	return w
}
