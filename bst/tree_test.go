package bst

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/fpds"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCreateEmptyTree(t *testing.T) {
	tree := New[int]()
	if tree.root != nil || tree.Len() != 0 || tree.Height() != 0 {
		t.Logf("empty tree =\n%s", tree)
		t.Error("expected new tree to be empty, isn't")
	}
	if tree.stackHint != defaultStackHint {
		t.Errorf("expected default stack hint to be %d, is %d", defaultStackHint, tree.stackHint)
	}
	tree = New[int](StackHint(64))
	if tree.stackHint != 64 {
		t.Errorf("expected stack hint to be 64, is %d", tree.stackHint)
	}
	tree = New[int](StackHint(-3))
	if tree.stackHint != 1 {
		t.Errorf("expected stack hint to be clipped to 1, is %d", tree.stackHint)
	}
}

func TestTreeInsertPlacesLeafs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpds.bst")
	defer teardown()
	//
	tree := New[int]()
	tree.Insert(2)
	tree.Insert(1)
	tree.Insert(3)
	require.NotNil(t, tree.root)
	assert.Equal(t, 2, tree.root.value)
	require.NotNil(t, tree.root.left)
	assert.Equal(t, 1, tree.root.left.value)
	require.NotNil(t, tree.root.right)
	assert.Equal(t, 3, tree.root.right.value)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, uint64(3), tree.generation)
}

func TestTreeInsertEqualGoesLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpds.bst")
	defer teardown()
	//
	tree := New[int]()
	for i := 0; i < 3; i++ {
		tree.Insert(5)
	}
	assert.Equal(t, 3, tree.Height())
	n := tree.root
	for depth := 1; depth <= 3; depth++ {
		require.NotNil(t, n, "node at depth %d", depth)
		assert.Nil(t, n.right, "no right child at depth %d", depth)
		n = n.left
	}
	visit, values := fpds.Collect[int]()
	tree.Preorder(visit)
	assert.Equal(t, []int{5, 5, 5}, values())
}

func TestTreeContains(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{8, 4, 10, 6, 5, 7, 9, 12, 13} {
		tree.Insert(v)
	}
	for _, v := range []int{8, 4, 10, 6, 5, 7, 9, 12, 13} {
		assert.True(t, tree.Contains(v), "tree contains %d", v)
	}
	for _, v := range []int{0, 1, 11, 14} {
		assert.False(t, tree.Contains(v), "tree does not contain %d", v)
	}
	assert.False(t, New[string]().Contains("x"))
}

func TestTreeHeight(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{8, 4, 10, 6, 5, 7, 9, 12, 13} {
		tree.Insert(v)
	}
	assert.Equal(t, 4, tree.Height())
	sorted := New[int]()
	for i := 0; i < 100; i++ {
		sorted.Insert(i)
	}
	assert.Equal(t, 100, sorted.Height())
}

type record struct {
	key  int
	name string
}

func TestTreeWithCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpds.bst")
	defer teardown()
	//
	tree := NewWithCompare(func(a, b record) int {
		return a.key - b.key
	})
	tree.Insert(record{2, "first two"})
	tree.Insert(record{1, "one"})
	tree.Insert(record{2, "second two"})
	tree.Insert(record{3, "three"})
	var names []string
	tree.Inorder(func(r record) {
		names = append(names, r.name)
	})
	// equal keys chain to the left, i.e. later insertions come first in inorder
	assert.Equal(t, []string{"one", "second two", "first two", "three"}, names)
	assert.True(t, tree.Contains(record{key: 3}))
}

func TestTreeUninitialized(t *testing.T) {
	tree := &Tree[int]{}
	assert.Panics(t, func() {
		tree.Insert(1)
	})
	assert.Panics(t, func() {
		NewWithCompare[int](nil)
	})
}

func TestTreeInsertErrorTracesValueVerbatim(t *testing.T) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	defer tracing.SetTraceSelector(nil)
	out := &bytes.Buffer{}
	tracer().SetOutput(out)
	//
	tree := buildTree(New[string](), []string{"b", "a"})
	err := recoverError(func() {
		tree.Inorder(func(string) {
			tree.Insert("50%")
		})
	})
	require.True(t, errors.Is(err, ErrConcurrentModification))
	assert.Contains(t, out.String(), "insert of 50% while visiting")
	assert.NotContains(t, out.String(), "%!")
}

func TestTreeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpds.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := New[int]()
	assert.True(t, strings.HasPrefix(tree.String(), "Tree(size=0, height=0)"))
	for _, v := range []int{8, 4, 10, 6} {
		tree.Insert(v)
	}
	s := tree.String()
	t.Logf("tree =\n%s", s)
	assert.True(t, strings.HasPrefix(s, "Tree(size=4, height=3)"))
	for _, label := range []string{"8", "L 4", "R 6", "R 10"} {
		assert.Contains(t, s, label)
	}
	assert.Less(t, strings.Index(s, "L 4"), strings.Index(s, "R 10"), "left subtree printed first")
}

// ---------------------------------------------------------------------------

func buildTree[T any](tree *Tree[T], values []T) *Tree[T] {
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// skewedTree creates a tree of n equal values without going through Insert, which
// would take quadratic time for a degenerated tree.
func skewedTree(n int) *Tree[int] {
	tree := New[int]()
	link := &tree.root
	for i := 0; i < n; i++ {
		*link = &node[int]{value: 1}
		link = &(*link).left
	}
	tree.size = n
	tree.generation = uint64(n)
	return tree
}
