package consume

// A Dependent pairs a value with the dependency token that covers it. It is
// the result type of the value-producing chain operations: consume loads of
// scalar cells, dereferences and indexing through dependent pointers, and
// pointer-to-integer conversions.
//
// Both fields are exported, and a composite literal is the explicit pairing
// form:
//
//	d := consume.Dependent[uint32]{Value: v, Dependency: dep}
//
// A Dependent has no meaningful default state: the zero value pairs T's zero
// value with a token that carries no chain. Obtain one from the load family,
// from DependentOn, or by pairing explicitly.
//
// Replace the whole pair rather than mutating Value alone. A new value
// swapped in behind the existing token desynchronizes the pair: the token
// keeps vouching for a load that did not produce the value, and the ordering
// guarantee is silently forfeited.
type Dependent[T any] struct {
	Value      T
	Dependency Dependency
}

// DependentOn pairs v with a dependency on v itself. Use it when v's own
// computation is the chain link to preserve, typically a value that was just
// produced by a chain-extending operation and needs to travel onward as a
// pair.
func DependentOn[T any](v T) Dependent[T] {
	return Dependent[T]{Value: v, Dependency: DependencyOn(v)}
}

// Broken reports whether the pair's token is known to carry no chain. See
// [Dependency.Broken].
func (d Dependent[T]) Broken() bool { return d.Dependency.Broken() }

// dependentWith pairs v with a self-dependency whose bookkeeping is inherited
// from the producing value rather than minted live. Chain-extending pointer
// operations use it so a broken source yields a broken result.
func dependentWith[T any](v T, g guard) Dependent[T] {
	d := DependentOn(v)
	d.Dependency.g = g
	return d
}
