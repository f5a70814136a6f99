package bst

// Order is the order in which a traversal visits the nodes of a tree.
type Order int

// Traversal orders.
const (
	PreOrder Order = iota // node, left subtree, right subtree
	InOrder               // left subtree, node, right subtree
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	}
	return "unknown order"
}

// Walk calls visit for every value of the tree, in the given order.
// Walk uses the iterative traversals.
func (tree *Tree[T]) Walk(order Order, visit func(T)) {
	switch order {
	case PreOrder:
		tree.Preorder(visit)
	case InOrder:
		tree.Inorder(visit)
	default:
		assertThat(false, "illegal traversal order %d", order)
	}
}

// --- Recursive traversals --------------------------------------------------

// PreorderRecursive calls visit for every value of the tree in preorder.
//
// The depth of recursion equals the height of the tree. As trees are not balanced, this
// may be as large as the number of values in the tree. Prefer Preorder.
func (tree *Tree[T]) PreorderRecursive(visit func(T)) {
	defer tree.enterWalk()()
	preorder(tree.root, visit)
}

func preorder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	visit(n.value)
	preorder(n.left, visit)
	preorder(n.right, visit)
}

// InorderRecursive calls visit for every value of the tree in inorder, i.e. in
// ascending order.
//
// The depth of recursion equals the height of the tree. As trees are not balanced, this
// may be as large as the number of values in the tree. Prefer Inorder.
func (tree *Tree[T]) InorderRecursive(visit func(T)) {
	defer tree.enterWalk()()
	inorder(tree.root, visit)
}

func inorder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	inorder(n.left, visit)
	visit(n.value)
	inorder(n.right, visit)
}

// --- Iterative traversals --------------------------------------------------

// Preorder calls visit for every value of the tree in preorder.
func (tree *Tree[T]) Preorder(visit func(T)) {
	defer tree.enterWalk()()
	if tree.root == nil {
		return
	}
	stack := make([]*node[T], 0, tree.stackHint)
	stack = append(stack, tree.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n.value)
		if n.right != nil { // right first => left will be popped next
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

// Inorder calls visit for every value of the tree in inorder, i.e. in ascending order.
func (tree *Tree[T]) Inorder(visit func(T)) {
	defer tree.enterWalk()()
	stack := make([]*node[T], 0, tree.stackHint)
	n := tree.root
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n.value)
		n = n.right
	}
}

// enterWalk marks an eager traversal as being in progress and returns a function
// to mark its end. Eager traversals may be nested, e.g. by reading the tree from
// within a visitor.
func (tree *Tree[T]) enterWalk() func() {
	tree.walking++
	return func() {
		tree.walking--
		assertThat(tree.walking >= 0, "inconsistency: traversal count is negative")
	}
}
