package consume_test

import (
	"testing"

	"github.com/notorious-go/consume"
	"github.com/notorious-go/consume/consumetest"
)

func TestDependencyOnIsLive(t *testing.T) {
	consumetest.WantLive(t, consume.DependencyOn(uint32(42)))
	consumetest.WantLive(t, consume.DependencyOn(&struct{ a int }{1}))
	consumetest.WantLive(t, consume.DependencyOn([4]byte{1, 2, 3, 4}))
	consumetest.WantLive(t, consume.DependencyOn([5]byte{1, 2, 3, 4, 5}))
}

func TestZeroDependencyIsBroken(t *testing.T) {
	var d consume.Dependency
	consumetest.WantBroken(t, d)
}

func TestZeroDependentIsBroken(t *testing.T) {
	var d consume.Dependent[uint32]
	consumetest.WantBroken(t, d)
}

// Combining carries liveness through in both argument orders and groupings:
// the merged token is live exactly when every input is.
func TestCombineLiveness(t *testing.T) {
	live := consume.DependencyOn(uint64(1))
	also := consume.DependencyOn(uint64(2))
	var broken consume.Dependency

	t.Run("live with live", func(t *testing.T) {
		consumetest.WantLive(t, consume.Combine(live, also))
		consumetest.WantLive(t, consume.Combine(also, live))
	})
	t.Run("broken taints left", func(t *testing.T) {
		consumetest.WantBroken(t, consume.Combine(broken, live))
	})
	t.Run("broken taints right", func(t *testing.T) {
		consumetest.WantBroken(t, consume.Combine(live, broken))
	})
	t.Run("grouping is immaterial", func(t *testing.T) {
		third := consume.DependencyOn(uint64(3))
		left := consume.Combine(consume.Combine(live, also), third)
		right := consume.Combine(live, consume.Combine(also, third))
		consumetest.WantLive(t, left)
		consumetest.WantLive(t, right)
	})
	t.Run("idempotent", func(t *testing.T) {
		consumetest.WantLive(t, consume.Combine(live, live))
	})
}

// Tagging must never disturb the bits being tagged: the token folds in as
// zero, whatever the integer type.
func TestTagIsIdentity(t *testing.T) {
	d := consume.DependencyOn(uint64(42))

	t.Run("uintptr", func(t *testing.T) {
		for _, bits := range []uintptr{0, 1, 42, 1 << 20, ^uintptr(0)} {
			if got := consume.Tag(bits, d); got != bits {
				t.Errorf("Tag(%#x, d) = %#x, want %#x", bits, got, bits)
			}
		}
	})
	t.Run("uint64", func(t *testing.T) {
		for _, bits := range []uint64{0, 0xA5A5A5A5A5A5A5A5, ^uint64(0)} {
			if got := consume.Tag(bits, d); got != bits {
				t.Errorf("Tag(%#x, d) = %#x, want %#x", bits, got, bits)
			}
		}
	})
	t.Run("int32", func(t *testing.T) {
		for _, bits := range []int32{0, 42, -42, 1 << 30} {
			if got := consume.Tag(bits, d); got != bits {
				t.Errorf("Tag(%d, d) = %d, want %d", bits, got, bits)
			}
		}
	})
	t.Run("named integer type", func(t *testing.T) {
		type epoch uint32
		if got := consume.Tag(epoch(7), d); got != 7 {
			t.Errorf("Tag(epoch(7), d) = %d, want 7", got)
		}
	})
}

// A tagged integer participates in the chain by construction: the result is
// data-dependent on the token even though its value is unchanged, so storing
// it back into an address computation keeps the chain intact.
func TestTagThreadsThroughIndexing(t *testing.T) {
	vec := [8]uint32{0, 10, 20, 30, 40, 50, 60, 70}
	d := consume.DependencyOn(&vec)
	i := consume.Tag(3, d)
	p := consume.Attach(&vec[0], d)
	if got := p.Index(i).Value; got != 30 {
		t.Errorf("Index(Tag(3, d)).Value = %d, want 30", got)
	}
}
