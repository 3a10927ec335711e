// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import "fmt"

// Tree - holds the root node of an AVL tree of records
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{root: nil, count: 0}
}

// IsEmpty - true if the tree holds no records
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Count - number of records currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - the root node, nil for an empty tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - cached height of the root, 0 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

func rotateLeft(node *Node) *Node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func rotateRight(node *Node) *Node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance restores the AVL property at node and returns the new root
// of the sub-tree. A child balance factor of 0 takes the single rotation.
func rebalance(node *Node) *Node {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	updateHeight(node)
	return node
}

// Insert adds a record. The name must be letters and spaces and the key
// exactly KeyLength characters; an existing key is left untouched and
// ErrDuplicate is returned.
func (tree *Tree) Insert(name, key string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: name %q must be letters and spaces", ErrInvalidInput, name)
	}
	if !ValidInsertKey(key) {
		return fmt.Errorf("%w: key %q must be %d characters", ErrInvalidInput, key, KeyLength)
	}

	root, err := insert(tree.root, name, key)
	if err != nil {
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

func insert(node *Node, name, key string) (*Node, error) {
	if node == nil {
		return newNode(name, key), nil
	}

	var err error
	switch {
	case key > node.record.Key:
		node.right, err = insert(node.right, name, key)
	case key < node.record.Key:
		node.left, err = insert(node.left, name, key)
	default:
		return node, fmt.Errorf("%w: %q", ErrDuplicate, key)
	}
	if err != nil {
		// nothing below changed
		return node, err
	}

	updateHeight(node)
	return rebalance(node), nil
}
