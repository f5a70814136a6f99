package bst

import "fmt"

// Cursor is an external iterator over the values of a tree. A cursor produces one
// value per call of Next, in either preorder or inorder. Every cursor traverses its tree
// exactly once; clients create a new cursor to start over.
//
// A cursor holds a stack of nodes pending to be visited. For preorder, the stack holds
// the right children of nodes already visited (plus the next node). For inorder, the stack
// holds the nodes on the leftmost path of the subtree to be visited next.
//
// The tree must not be modified during the lifetime of a cursor. Next will panic if
// it detects an insertion into the tree after the creation of the cursor.
type Cursor[T any] struct {
	tree       *Tree[T]
	generation uint64 // generation of tree at creation time
	order      Order
	pending    []*node[T]
}

// PreorderIter returns a cursor visiting the tree in preorder.
func (tree *Tree[T]) PreorderIter() *Cursor[T] {
	return tree.Iter(PreOrder)
}

// InorderIter returns a cursor visiting the tree in inorder, i.e. in ascending order.
func (tree *Tree[T]) InorderIter() *Cursor[T] {
	return tree.Iter(InOrder)
}

// Iter returns a cursor visiting the tree in the given order.
func (tree *Tree[T]) Iter(order Order) *Cursor[T] {
	assertThat(order == PreOrder || order == InOrder, "illegal traversal order %d", order)
	c := &Cursor[T]{
		tree:       tree,
		generation: tree.generation,
		order:      order,
		pending:    make([]*node[T], 0, tree.stackHint),
	}
	switch order {
	case PreOrder:
		if tree.root != nil {
			c.pending = append(c.pending, tree.root)
		}
	case InOrder:
		c.descendLeft(tree.root)
	}
	tracer().Debugf("new %s cursor at generation %d", order, c.generation)
	return c
}

// Next returns the next value of the traversal. If the traversal is exhausted, Next returns
// the zero value of T and false.
//
// Next panics if the tree has been modified since the creation of the cursor.
func (c *Cursor[T]) Next() (T, bool) {
	c.checkGeneration()
	if len(c.pending) == 0 {
		var none T
		return none, false
	}
	n := c.pop()
	switch c.order {
	case PreOrder:
		if n.right != nil {
			c.pending = append(c.pending, n.right)
		}
		if n.left != nil {
			c.pending = append(c.pending, n.left)
		}
	case InOrder:
		c.descendLeft(n.right)
	}
	if len(c.pending) == 0 {
		tracer().Debugf("%s cursor exhausted", c.order)
	}
	return n.value, true
}

// HasNext returns true if a subsequent call to Next will produce a value.
//
// HasNext panics if the tree has been modified since the creation of the cursor.
func (c *Cursor[T]) HasNext() bool {
	c.checkGeneration()
	return len(c.pending) > 0
}

// Order returns the order in which c visits its tree.
func (c *Cursor[T]) Order() Order {
	return c.order
}

func (c *Cursor[T]) pop() *node[T] {
	n := c.pending[len(c.pending)-1]
	c.pending[len(c.pending)-1] = nil
	c.pending = c.pending[:len(c.pending)-1]
	return n
}

// descendLeft pushes n and all of its left descendents onto the stack.
func (c *Cursor[T]) descendLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		c.pending = append(c.pending, n)
	}
}

func (c *Cursor[T]) checkGeneration() {
	if c.generation != c.tree.generation {
		err := fmt.Errorf("bst: %s cursor of generation %d used on tree of generation %d: %w",
			c.order, c.generation, c.tree.generation, ErrConcurrentModification)
		tracer().Errorf("%v", err)
		panic(err)
	}
}
