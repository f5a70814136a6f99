package bst

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

type printStep[T any] struct {
	n      *node[T]
	parent tp.Tree
	label  string
}

// String renders the shape of the tree, one node per line. Left children are marked
// with 'L', right children with 'R'.
func (tree *Tree[T]) String() string {
	header := fmt.Sprintf("Tree(size=%d, height=%d)\n", tree.size, tree.Height())
	if tree.root == nil {
		return header
	}
	printer := tp.New()
	stack := make([]printStep[T], 0, tree.stackHint)
	stack = append(stack, printStep[T]{n: tree.root, parent: printer})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		text := s.label + fmt.Sprintf("%v", s.n.value)
		if s.n.left == nil && s.n.right == nil {
			s.parent.AddNode(text)
			continue
		}
		branch := s.parent.AddBranch(text)
		if s.n.right != nil { // right first => left will be printed first
			stack = append(stack, printStep[T]{n: s.n.right, parent: branch, label: "R "})
		}
		if s.n.left != nil {
			stack = append(stack, printStep[T]{n: s.n.left, parent: branch, label: "L "})
		}
	}
	return header + printer.String()
}
