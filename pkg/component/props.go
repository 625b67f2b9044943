package component

// Source is anything readable like a signal: a *reactive.Reader or a
// *reactive.Derived. Reading it inside a binding projection establishes
// the dependency.
type Source[T any] interface {
	Get() T
}

// Prop is one component input, either a plain value fixed at
// construction or a reactive value that bindings can follow. The zero
// Prop is "unset" and resolves through Or to a declared default.
type Prop[T any] struct {
	set    bool
	static T
	source Source[T]
}

// Static declares a prop fixed at construction time.
func Static[T any](v T) Prop[T] {
	return Prop[T]{set: true, static: v}
}

// Reactive declares a prop backed by a reader or derived value.
func Reactive[T any](s Source[T]) Prop[T] {
	return Prop[T]{set: true, source: s}
}

// Set reports whether the prop was provided.
func (p Prop[T]) Set() bool { return p.set }

// IsReactive reports whether the prop follows a reactive source.
func (p Prop[T]) IsReactive() bool { return p.source != nil }

// Or substitutes a default for an unset prop.
func (p Prop[T]) Or(def T) Prop[T] {
	if !p.set {
		return Static(def)
	}
	return p
}

// Value resolves the prop to its current value, uniformly for both
// variants. For a reactive prop called inside a binding projection this
// reads through Get and therefore tracks; for a static prop it is the
// fixed value.
func (p Prop[T]) Value() T {
	if p.source != nil {
		return p.source.Get()
	}
	return p.static
}
