// Package consume provides a portable, type-enforced discipline for
// dependency-ordered reads: the "consume" counterpart to a release store,
// which lets a reader observe a writer's publication without an acquire
// fence by relying on genuine data dependencies between the load and the
// accesses that follow it.
//
// On architectures that honor address dependencies (ARM, POWER), a load whose
// address is computed from a prior load's value is ordered after the store
// that published that value, with no fence at all. Read-mostly structures in
// the style of read-copy-update (RCU) are built on exactly this: writers
// publish fully-constructed nodes with a release store, readers traverse
// through dependent loads, and no reader ever pays for a barrier. The hard
// part is keeping the dependency real through every intermediate operation,
// because an innocent-looking rewrite can detach a read from the chain and
// silently forfeit the guarantee. This package makes the chain an explicit,
// typed value so the discipline survives refactoring.
//
// # The Chain Discipline
//
// A dependency chain begins at a consume load and is threaded through
// subsequent operations by the [Dependency], [Dependent], and [Pointer]
// types:
//
//   - Originate: [Load] and [LoadPointer] are the only chain origination
//     points. They load from an atomic location and return a live value.
//   - Extend: Deref, Index, Uintptr, Value, [Addr], and [LoadIndirect] carry
//     the chain to their results. Copying a live Pointer extends the chain
//     to the copy and never consumes the source's liveness.
//   - Preserve without extending: Get covers the address computation but not
//     the member values read through it; Equal and IsNil touch nothing.
//   - Break: constructing or overwriting from a raw pointer ([FromRaw], the
//     zero value) discards the chain. A broken value keeps working exactly
//     like a raw pointer; only the ordering guarantee is gone.
//
// The canonical read path loads a published pointer and reaches everything
// through it:
//
//	var head atomic.Pointer[Node] // writers: head.Store(node) after filling node
//
//	p := consume.LoadPointer(&head)
//	if p.IsNil() {
//		return nil
//	}
//	node := p.Deref() // chain extends to the node's contents
//	return node.Value.Payload
//
// For accesses the type system cannot follow, such as a pointer handed
// through code that only speaks raw pointers, extract the token with
// Dependency, carry it alongside, and reconstruct with [Attach],
// [LoadPointerAt], or [LoadValueAt] on the far side. [Combine] merges the tokens of converging
// chains, and [Tag] keeps pointer-tagging arithmetic inside a chain.
//
// # What Can Go Wrong
//
// Misuse is never rejected at runtime; it is silently downgraded. The
// principal hazard is assigning from a non-dependent source and continuing
// as if the chain held: the result is type-identical to a live value and
// behaves identically in every way that a single-machine test can observe.
// The second hazard is subtler: reading a field through Get does not extend
// the chain to the field's value, so
//
//	p.Get().F      // ordinary read, NOT ordered by the chain
//	p.Deref().Value.F // covered: the whole pointee was read through the chain
//
// differ exactly when it matters. Builds with the consumedebug tag track
// every value's live/broken state so tests can assert the discipline; see
// Broken, MustLive, and the consumetest package.
//
// # How Consume Maps Onto Go's Atomics
//
// Go's public atomics do not expose a relaxed ordering: every sync/atomic
// load is at least as strong as an acquire load under the Go memory model.
// This package therefore never relies on hardware address dependencies for
// correctness. Each consume load is performed with sync/atomic and is
// already "promoted" to the always-correct acquire fallback, uniformly on
// every GOARCH.
//
// What the chain buys at that point is discipline, not weaker fences: the
// dependency structure of the algorithm is recorded in the types, where it
// can be checked under instrumentation and carried unchanged to any future
// backend where consume is cheaper than acquire. The tokens cost nothing:
// a Dependency contributes an opaque zero offset to the pointers it is
// folded into, computed out of line so the compiler cannot constant-fold the
// chain away, and a [Pointer] stays a single word.
//
// # When NOT to Use This Package
//
// Most concurrent Go code should use channels, sync.Mutex, or plain
// sync/atomic values; they are simpler and exactly as fast here, since
// consume loads are promoted anyway. Reach for this package when the
// dependency structure itself is the point: lock-free read paths that must
// document and preserve which accesses are ordered by which publication, and
// that want that claim mechanically checkable under an instrumented build.
package consume
