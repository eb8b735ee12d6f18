//go:build !consumedebug

package consume

// Instrumented reports whether this build tracks the live/broken state of
// dependency chains. It is false unless the consumedebug build tag is set.
//
// Tests that assert on chain state consult this constant and skip when the
// bookkeeping they need is compiled out.
const Instrumented = false

// guard is the per-value chain bookkeeping. In normal builds it occupies no
// space and tracks nothing, keeping Pointer at exactly one word.
type guard struct{}

func liveGuard() guard   { return guard{} }
func brokenGuard() guard { return guard{} }

// broken reports whether the value is known to carry a broken chain. Nothing
// is tracked in this build, so nothing is ever known broken.
func (guard) broken() bool { return false }

func mergeGuards(guard, guard) guard { return guard{} }

func (guard) mustLive(op string) {}
