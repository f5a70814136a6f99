package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fpds/maybe"
)

// node is a cell of a list. Nodes are immutable and may be referenced from any number of
// lists (and from any number of nodes, as the successor of a newly prepended value).
type node[T any] struct {
	value T
	next  *node[T]
}

// List is an immutable singly-linked list. An empty instance is usable as an empty list,
// i.e. this is legal:
//
//     l := list.List[int]{}.Prepend(42)
//
// List is a small value type. Copying it is cheap and never copies any cells.
//
type List[T any] struct {
	head   *node[T]
	length int
}

// New returns the empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// Of creates a list holding values, with values[0] at the front.
func Of[T any](values ...T) List[T] {
	l := List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Prepend(values[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// Prepend returns a new list with value at the front, followed by the values of l.
// The new list shares all cells with l, which remains unchanged.
func (l List[T]) Prepend(value T) List[T] {
	return List[T]{
		head:   &node[T]{value: value, next: l.head},
		length: l.length + 1,
	}
}

// Tail returns a list without the front value of l. The tail of an empty list is empty.
// The new list shares all cells with l, which remains unchanged.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	assertThat(l.length > 0, "inconsistency: non-empty list with length %d", l.length)
	return List[T]{head: l.head.next, length: l.length - 1}
}

// Front returns the front value of l, or Nothing if l is empty.
func (l List[T]) Front() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Len returns the number of values in l.
func (l List[T]) Len() int {
	return l.length
}

// IsEmpty is true if l holds no values.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Iterate returns an iterator starting at the front of l. Lists are immutable, therefore
// every call of Iterate on the same list will produce the same sequence of values.
func (l List[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{curr: l.head}
}

// Each calls f for every value of l, front to back.
func (l List[T]) Each(f func(T)) {
	for n := l.head; n != nil; n = n.next {
		f(n.value)
	}
}

// Slice returns the values of l as a newly allocated slice.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.length)
	l.Each(func(v T) {
		s = append(s, v)
	})
	assertThat(len(s) == l.length, "inconsistency: list of length %d has %d values", l.length, len(s))
	return s
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	b.WriteByte(')')
	return b.String()
}

// Equal returns whether two lists hold the same sequence of values.
// Lists sharing cells compare in time proportional to the length of their unshared prefix.
func Equal[T comparable](a, b List[T]) bool {
	if a.length != b.length {
		return false
	}
	na, nb := a.head, b.head
	for na != nil {
		if na == nb {
			tracer().Debugf("lists share a suffix of length %d", a.length)
			return true
		}
		if na.value != nb.value {
			return false
		}
		na, nb = na.next, nb.next
		a.length--
	}
	return nb == nil
}

// --- Iterator --------------------------------------------------------------

// Iterator walks the cells of a list. It is exhausted after returning the last value
// of the list. Iterators may be dropped at any time.
type Iterator[T any] struct {
	curr *node[T]
}

// Next returns the next value of the list, if any. After the last value, Next returns
// the zero value of T and false, for every subsequent call.
func (it *Iterator[T]) Next() (T, bool) {
	if it.curr == nil {
		var none T
		return none, false
	}
	n := it.curr
	it.curr = n.next
	return n.value, true
}
