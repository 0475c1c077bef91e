package domain_test

import (
	"testing"

	"github.com/aretw0/ishikawa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTree() domain.Tree {
	return domain.Tree{
		{Key: 1, Name: "Incident"},
		{Key: 2, Name: "Cause A", Parent: 1},
		{Key: 3, Name: "Cause B", Parent: 1},
		{Key: 102, Name: "Sub-cause", Parent: 2},
	}
}

func TestTreeValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validTree().Validate())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Error(t, domain.Tree{}.Validate())
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		tree := validTree()
		tree = append(tree, domain.TreeNode{Key: 2, Name: "Copy", Parent: 1})
		assert.ErrorContains(t, tree.Validate(), "duplicate key")
	})

	t.Run("TwoRoots", func(t *testing.T) {
		tree := validTree()
		tree = append(tree, domain.TreeNode{Key: 50, Name: "Second root"})
		assert.ErrorContains(t, tree.Validate(), "exactly one root")
	})

	t.Run("DanglingParent", func(t *testing.T) {
		tree := validTree()
		tree = append(tree, domain.TreeNode{Key: 60, Name: "Orphan", Parent: 999})
		assert.ErrorContains(t, tree.Validate(), "dangling parent")
	})

	t.Run("NonPositiveKey", func(t *testing.T) {
		tree := domain.Tree{{Key: -1, Name: "Bad"}}
		assert.Error(t, tree.Validate())
	})

	t.Run("EmptyName", func(t *testing.T) {
		tree := domain.Tree{{Key: 1, Name: ""}}
		assert.Error(t, tree.Validate())
	})
}

func TestTreeNavigation(t *testing.T) {
	tree := validTree()

	root := tree.Root()
	assert.Equal(t, 1, root.Key)
	assert.Equal(t, "Incident", root.Name)

	children := tree.Children(1)
	require.Len(t, children, 2)
	assert.Equal(t, "Cause A", children[0].Name)
	assert.Equal(t, "Cause B", children[1].Name)

	node, ok := tree.Lookup(102)
	require.True(t, ok)
	assert.Equal(t, 2, node.Parent)

	_, ok = tree.Lookup(999)
	assert.False(t, ok)
}

func TestTreeDepth(t *testing.T) {
	assert.Equal(t, 3, validTree().Depth())
	assert.Equal(t, 1, domain.Tree{{Key: 1, Name: "Solo"}}.Depth())
	assert.Equal(t, 0, domain.Tree{}.Depth())
}
