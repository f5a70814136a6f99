package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node is a cell of a tree. Every node has exactly one owner: its parent, or the
// tree for the root node.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// depthStep is a node on an explicit stack, together with its depth in the tree.
type depthStep[T any] struct {
	n     *node[T]
	depth int
}

const defaultStackHint = 16

// props holds configuration of a tree, set at creation time.
type props struct {
	stackHint int // initial capacity of traversal stacks
}

func (p props) init() props {
	if p.stackHint <= 0 {
		p.stackHint = defaultStackHint
	}
	return p
}

// Tree is a binary search tree holding values of type T. Create trees with New or
// NewWithCompare.
type Tree[T any] struct {
	props
	root       *node[T]
	size       int
	compare    func(a, b T) int
	generation uint64 // incremented by every modification
	walking    int    // number of eager traversals in progress
}

// New creates an empty tree for values of an ordered type T.
//
//     tree := bst.New[int](bst.StackHint(32))
//     tree.Insert(42)
//
func New[T constraints.Ordered](opts ...Option) *Tree[T] {
	return NewWithCompare(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}, opts...)
}

// NewWithCompare creates an empty tree for values of type T, which are ordered by a
// comparison function. cmp(a, b) has to return a negative number for a < b, zero for
// a = b and a positive number for a > b.
func NewWithCompare[T any](cmp func(a, b T) int, opts ...Option) *Tree[T] {
	assertThat(cmp != nil, "tree needs a comparison function")
	tree := &Tree[T]{compare: cmp}
	for _, option := range opts {
		tree.props = option.config(tree.props)
	}
	tree.props = tree.props.init()
	return tree
}

// Option is a type to help initializing trees at creation time.
type Option struct {
	config func(props) props
}

// StackHint is an option to set the initial capacity of the stacks used for iterative
// traversals. If the (expected) height of a tree is known, clients may use it as a hint.
// Stacks will grow as needed, regardless of the hint.
//
// Use it like this:
//
//     tree := bst.New[string](StackHint(64))
//
func StackHint(n int) Option {
	return Option{config: func(p props) props {
		if n < 1 {
			n = 1
		}
		p.stackHint = n
		return p
	}}
}

// --- API -------------------------------------------------------------------

// Insert places value into the tree. Values equal to a node's value go into the
// left subtree of that node.
//
// Insert must not be called while a traversal of the tree is in progress. Cursors created
// before Insert has been called will panic on their next step.
func (tree *Tree[T]) Insert(value T) {
	assertThat(tree.compare != nil, "tree not initialized; use New or NewWithCompare")
	if tree.walking > 0 {
		err := fmt.Errorf("bst: insert of %v while visiting: %w", value, ErrConcurrentModification)
		tracer().Errorf("%v", err)
		panic(err)
	}
	link := &tree.root // the link which will receive the new leaf
	for *link != nil {
		if tree.compare(value, (*link).value) <= 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &node[T]{value: value}
	tree.size++
	tree.generation++
	tracer().Debugf("insert: placed %v, tree size = %d", value, tree.size)
}

// Len returns the number of values in the tree.
func (tree *Tree[T]) Len() int {
	return tree.size
}

// Contains returns true if a value equal to v is present in the tree.
func (tree *Tree[T]) Contains(v T) bool {
	n := tree.root
	for n != nil {
		c := tree.compare(v, n.value)
		if c == 0 {
			return true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// Height returns the number of nodes on the longest path from the root to a leaf.
// The height of an empty tree is 0.
func (tree *Tree[T]) Height() int {
	if tree.root == nil {
		return 0
	}
	height := 0
	stack := make([]depthStep[T], 0, tree.stackHint)
	stack = append(stack, depthStep[T]{tree.root, 1})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.depth > height {
			height = s.depth
		}
		if s.n.right != nil {
			stack = append(stack, depthStep[T]{s.n.right, s.depth + 1})
		}
		if s.n.left != nil {
			stack = append(stack, depthStep[T]{s.n.left, s.depth + 1})
		}
	}
	return height
}
