/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or it does not (Nothing). Clients may unpack a Maybe
either by pattern-matching

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        …
    case m.Nothing():
        …
    }

or in the comma-ok style common in Go:

    if v, ok := x.Value(); ok {
        …
    }

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Value() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absence of a value of type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Match starts a switch-like matching of m.
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Value returns the value wrapped by m, or the zero value of T and false.
func (m maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// IsNothing is true if m does not wrap a value.
func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault returns the value wrapped by m, or def if m is Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the value wrapped by m. Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any. Other than x.Map, the result may
// be of a different type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher helps unpacking a Maybe within a switch statement.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
