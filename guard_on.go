//go:build consumedebug

package consume

import "fmt"

// Instrumented reports whether this build tracks the live/broken state of
// dependency chains. It is true because the consumedebug build tag is set.
//
// Instrumented builds grow every dependency-carrying value by a bookkeeping
// byte, so the one-word Pointer representation does not hold here. Use them
// for testing the chain discipline, not in production binaries.
const Instrumented = true

// guard tags each dependency-carrying value as live or broken. The zero
// guard is broken: a value that never went through a consume load carries no
// chain.
type guard struct {
	state uint8
}

const (
	stateBroken uint8 = iota
	stateLive
)

func liveGuard() guard   { return guard{state: stateLive} }
func brokenGuard() guard { return guard{state: stateBroken} }

func (g guard) broken() bool { return g.state != stateLive }

// A combined token claims ordering with respect to both inputs' releases, so
// a single broken input breaks the result.
func mergeGuards(a, b guard) guard {
	if a.broken() || b.broken() {
		return brokenGuard()
	}
	return liveGuard()
}

func (g guard) mustLive(op string) {
	if g.broken() {
		panic(fmt.Errorf("consume: %s on a value with a broken dependency chain", op))
	}
}
