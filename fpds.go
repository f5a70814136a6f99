/*
Package fpds offers two small data structures which differ in how their nodes are owned.

Package persistent/list implements an immutable singly-linked list. Lists share their suffixes:
prepending to a list creates a single new cell and links it to the (unchanged) cells of the
original. Any number of lists may hold the same cells, and no list ever modifies one.

Package bst implements a binary search tree which owns its nodes exclusively. The tree may be
read by any number of traversals at the same time, but inserting is not allowed while a
traversal is active. Violations are detected at run-time and result in a panic.

This package holds a few helpers for working with the visitor callbacks both structures accept.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fpds

// Visitor is a callback receiving the values of a traversal, one at a time.
type Visitor[T any] func(T)

// Collect returns a visitor which appends every value it receives to a slice,
// together with a function to fetch the slice collected so far.
//
//     visit, values := fpds.Collect[int]()
//     tree.Inorder(visit)
//     sorted := values()
//
func Collect[T any]() (Visitor[T], func() []T) {
	var values []T
	visit := func(v T) {
		values = append(values, v)
	}
	return visit, func() []T {
		return values
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Map returns a visitor which calls visit with f(v) for every value v it receives.
func Map[T, U any](f func(T) U, visit Visitor[U]) Visitor[T] {
	return func(v T) {
		visit(f(v))
	}
}
