// Package consumetest provides utilities for testing code built on the
// consume package. It offers a publish/observe harness for the canonical
// writer-publishes, reader-spins scenario, and assertion helpers for the
// live/broken state of dependency chains.
//
// # Overview
//
// [Publish] runs a writer goroutine that constructs a payload and publishes
// its address with a release store, then spins on the calling side with
// consume.LoadPointer until the pointer is observed, returning it live. It
// packages the scenario every consume-ordered structure reduces to, so tests
// can focus on what they do with the pointer once it arrives.
//
// [WantLive] and [WantBroken] assert chain state. Chain state is only
// tracked in builds with the consumedebug tag; WantBroken skips the test
// when the bookkeeping it needs is compiled out, while WantLive degrades to
// the vacuous check that nothing is known broken.
//
// # Example Usage
//
// Verify that a published payload is observed intact through the chain:
//
//	p := consumetest.Publish(t, func() *Config {
//		return &Config{Version: 42}
//	})
//	consumetest.WantLive(t, p)
//	if got := p.Deref().Value.Version; got != 42 {
//		t.Errorf("Version = %v, want 42", got)
//	}
package consumetest

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/notorious-go/consume"
)

// Chained is the common surface of every dependency-carrying value:
// consume.Dependency, consume.Dependent, and consume.Pointer all report
// whether they are known to carry a broken chain.
type Chained interface {
	Broken() bool
}

// WantLive fails the test if v is known to carry a broken chain.
//
// In builds without the consumedebug tag nothing is ever known broken, so
// WantLive passes vacuously; run the test suite with -tags consumedebug to
// give the assertion teeth.
func WantLive(tb testing.TB, v Chained) {
	tb.Helper()
	if v.Broken() {
		tb.Errorf("dependency chain is broken, want live: %v", v)
	}
}

// WantBroken fails the test if v is not flagged as carrying a broken chain.
//
// Breakage is only tracked under the consumedebug build tag; without it a
// broken value is indistinguishable from a live one and WantBroken skips the
// test instead of asserting blind.
func WantBroken(tb testing.TB, v Chained) {
	tb.Helper()
	if !consume.Instrumented {
		tb.Skip("chain state is not tracked; run with -tags consumedebug")
	}
	if !v.Broken() {
		tb.Errorf("dependency chain is live, want broken: %v", v)
	}
}

// Publish runs build in a writer goroutine, publishes the address it returns
// with a release store, and spins on the calling side until a consume load
// observes it. The returned pointer is live and non-nil.
//
// The writer side performs only the publication; everything build writes
// into the payload happens before the release store, which is exactly the
// protocol consume-ordered readers depend on. Publish does not bound the
// spin: a build function that returns nil will hang the test.
func Publish[T any](tb testing.TB, build func() *T) consume.Pointer[T] {
	tb.Helper()

	var slot atomic.Pointer[T]
	go func() {
		slot.Store(build())
	}()

	for {
		if p := consume.LoadPointer(&slot); !p.IsNil() {
			return p
		}
		runtime.Gosched()
	}
}
