/*
Package bst implements an unbalanced binary search tree.

The tree owns its nodes exclusively; nodes are never handed out to clients. Values are inserted
by descending from the root, going left for values less than or equal to a node's value and
right otherwise. Equal values therefore form a chain of left children below the first
insertion. The tree is not re-balanced, so inserting values in sorted order (or inserting the
same value many times) will produce a tree with linear height.

Reading a tree

Trees may be traversed in preorder (node, left subtree, right subtree) or inorder (left
subtree, node, right subtree). For each of these, three flavours of traversal exist, all of
which produce identical sequences of values:

    tree.PreorderRecursive(visit)   // recursive, call-stack depth = height of tree
    tree.Preorder(visit)            // iterative, using an explicit stack
    tree.PreorderIter()             // cursor, producing one value per call of Next()

The recursive variants are mainly there for reference. On degenerated trees they will use
a call stack of the tree's height; clients should prefer the iterative variants.

Readers and writers

Any number of traversals may read a tree at the same time, but a tree must not be modified
while a traversal is in progress. This is checked at run-time: every Insert increments a
generation counter of the tree, and a Cursor compares the generation it has been created with
on every step. A Cursor which detects a modification of its tree will panic with an error
wrapping ErrConcurrentModification. Calling Insert from within a visitor callback will panic
immediately.

Cursors need not be exhausted. Dropping a cursor at any time is fine and requires no cleanup.

Trees are not safe for concurrent use by multiple goroutines if any of them inserts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpds.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fpds.bst")
}

// ErrConcurrentModification is raised (as a panic) if a tree is modified while it is
// being read.
var ErrConcurrentModification = errors.New("tree modified during traversal")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
