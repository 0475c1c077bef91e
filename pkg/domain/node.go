package domain

import "fmt"

// TreeNode is one entry in a cause-effect diagram.
// Keys are positive integers, unique within one tree. Parent references the key
// of another node in the same tree; 0 marks the root.
type TreeNode struct {
	Key    int    `json:"key" yaml:"key"`
	Name   string `json:"name" yaml:"name"`
	Parent int    `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// IsRoot reports whether the node has no parent reference.
func (n TreeNode) IsRoot() bool {
	return n.Parent == 0
}

// Tree is an ordered collection of TreeNodes describing one diagram.
// Insertion order is preserved; parent/child resolution is by key, not position.
// A tree is built once per generation request and replaced wholesale on the
// next request, never mutated in place.
type Tree []TreeNode

// Validate checks the structural invariants of a generated tree:
// exactly one root, unique keys, and every parent reference resolving to an
// existing node in the same collection.
func (t Tree) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("tree is empty")
	}

	keys := make(map[int]bool, len(t))
	roots := 0
	for _, n := range t {
		if n.Key <= 0 {
			return fmt.Errorf("node %q: key must be positive, got %d", n.Name, n.Key)
		}
		if n.Name == "" {
			return fmt.Errorf("node %d: empty name", n.Key)
		}
		if keys[n.Key] {
			return fmt.Errorf("duplicate key %d", n.Key)
		}
		keys[n.Key] = true
		if n.IsRoot() {
			roots++
		}
	}

	if roots != 1 {
		return fmt.Errorf("expected exactly one root, found %d", roots)
	}

	for _, n := range t {
		if !n.IsRoot() && !keys[n.Parent] {
			return fmt.Errorf("node %d: dangling parent reference %d", n.Key, n.Parent)
		}
	}

	return nil
}

// Root returns the root node. It assumes a validated tree; on a rootless
// collection it returns the zero TreeNode.
func (t Tree) Root() TreeNode {
	for _, n := range t {
		if n.IsRoot() {
			return n
		}
	}
	return TreeNode{}
}

// Children returns the direct children of the node with the given key,
// in insertion order.
func (t Tree) Children(key int) []TreeNode {
	var out []TreeNode
	for _, n := range t {
		if n.Parent == key && !n.IsRoot() {
			out = append(out, n)
		}
	}
	return out
}

// Lookup returns the node with the given key.
func (t Tree) Lookup(key int) (TreeNode, bool) {
	for _, n := range t {
		if n.Key == key {
			return n, true
		}
	}
	return TreeNode{}, false
}

// Depth returns the number of layers in the tree (root = 1 layer).
// It assumes a validated tree.
func (t Tree) Depth() int {
	root := t.Root()
	if root.Key == 0 {
		return 0
	}
	var walk func(key int) int
	walk = func(key int) int {
		deepest := 0
		for _, c := range t.Children(key) {
			if d := walk(c.Key); d > deepest {
				deepest = d
			}
		}
		return deepest + 1
	}
	return walk(root.Key)
}
