package consume_test

import (
	"sync/atomic"
	"testing"

	"github.com/notorious-go/consume"
	"github.com/notorious-go/consume/atom"
	"github.com/notorious-go/consume/consumetest"
)

// loadBack stores v, consume-loads it back, and checks the pair: the value
// must come through bit-exact and the chain must be live.
func loadBack[T atom.Scalar](t *testing.T, v T) {
	t.Helper()
	var c atom.Cell[T]
	c.Store(v)
	got := consume.Load(&c)
	if got.Value != v {
		t.Errorf("Load() = %v, want %v", got.Value, v)
	}
	consumetest.WantLive(t, got)
}

func TestLoadValueFidelity(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { loadBack(t, uint8(42)) })
	t.Run("uint16", func(t *testing.T) { loadBack(t, uint16(42)) })
	t.Run("uint32", func(t *testing.T) { loadBack(t, uint32(42)) })
	t.Run("uint64", func(t *testing.T) { loadBack(t, uint64(42)) })
	t.Run("int8", func(t *testing.T) { loadBack(t, int8(-42)) })
	t.Run("int16", func(t *testing.T) { loadBack(t, int16(-42)) })
	t.Run("int32", func(t *testing.T) { loadBack(t, int32(-42)) })
	t.Run("int64", func(t *testing.T) { loadBack(t, int64(-42)) })
	t.Run("int", func(t *testing.T) { loadBack(t, int(-42)) })
	t.Run("uintptr", func(t *testing.T) { loadBack(t, uintptr(42)) })
	t.Run("float32", func(t *testing.T) { loadBack(t, float32(42)) })
	t.Run("float64", func(t *testing.T) { loadBack(t, float64(42)) })
	t.Run("bool", func(t *testing.T) { loadBack(t, true) })
}

func TestLoadPointerFidelity(t *testing.T) {
	x := uint64(42)
	var slot atomic.Pointer[uint64]
	slot.Store(&x)

	p := consume.LoadPointer(&slot)
	if got := p.Get(); got != slot.Load() {
		t.Errorf("LoadPointer().Get() = %p, want %p", got, slot.Load())
	}
	if got := p.Deref().Value; got != 42 {
		t.Errorf("LoadPointer().Deref().Value = %d, want 42", got)
	}
	consumetest.WantLive(t, p)
}

// A consume load of an empty slot yields a live nil pointer: the chain is
// originated either way, there is just nothing useful at its end yet.
func TestLoadPointerNil(t *testing.T) {
	var slot atomic.Pointer[uint64]
	p := consume.LoadPointer(&slot)
	if !p.IsNil() {
		t.Error("LoadPointer of an empty slot: IsNil() = false, want true")
	}
	consumetest.WantLive(t, p)
}

func TestLoadIndirect(t *testing.T) {
	x := uint64(42)
	inner := &x
	var slot atomic.Pointer[*uint64]
	slot.Store(&inner)

	outer := consume.LoadPointer(&slot)
	p := consume.LoadIndirect(outer)
	if got := p.Get(); got != &x {
		t.Errorf("LoadIndirect().Get() = %p, want %p", got, &x)
	}
	if got := p.Deref().Value; got != 42 {
		t.Errorf("LoadIndirect().Deref().Value = %d, want 42", got)
	}
	consumetest.WantLive(t, p)

	t.Run("broken outer", func(t *testing.T) {
		q := consume.LoadIndirect(consume.FromRaw(&inner))
		if got := q.Get(); got != &x {
			t.Errorf("Get() = %p, want %p", got, &x)
		}
		consumetest.WantBroken(t, q)
	})
}

// The manual-chain forms take a raw location plus a token and continue the
// token's chain through the load, for pointers that traveled through
// non-dependency-aware code.
func TestLoadPointerAt(t *testing.T) {
	x := uint64(42)
	ptr := &x
	p := consume.LoadPointerAt(&ptr, consume.DependencyOn(&ptr))
	if got := p.Get(); got != &x {
		t.Errorf("LoadPointerAt().Get() = %p, want %p", got, &x)
	}
	if got := p.Deref().Value; got != 42 {
		t.Errorf("LoadPointerAt().Deref().Value = %d, want 42", got)
	}
	consumetest.WantLive(t, p)
}

func TestLoadValueAt(t *testing.T) {
	x := uint64(42)

	t.Run("live token", func(t *testing.T) {
		v := consume.LoadValueAt(&x, consume.DependencyOn(&x))
		if v.Value != 42 {
			t.Errorf("LoadValueAt().Value = %d, want 42", v.Value)
		}
		consumetest.WantLive(t, v)
	})
	t.Run("zero token", func(t *testing.T) {
		var d consume.Dependency
		v := consume.LoadValueAt(&x, d)
		if v.Value != 42 {
			t.Errorf("LoadValueAt().Value = %d, want 42", v.Value)
		}
		consumetest.WantBroken(t, v)
	})
}
