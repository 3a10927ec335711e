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

// Delete removes the record with the given key. The key must be exactly
// KeyLength digits.
func (tree *Tree) Delete(key string) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: key %q must be %d digits", ErrInvalidInput, key, KeyLength)
	}

	found := false
	tree.root = remove(tree.root, key, &found)
	if !found {
		return fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	tree.count -= 1
	return nil
}

// DeleteAt removes the record at zero based position n of the in-order
// sequence.
func (tree *Tree) DeleteAt(n int) error {
	records := tree.InOrder()
	if n < 0 || n >= len(records) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, n, len(records))
	}
	return tree.Delete(records[n].Key)
}

func remove(node *Node, key string, found *bool) *Node {
	if node == nil {
		return nil // key not present
	}

	switch {
	case key > node.record.Key:
		node.right = remove(node.right, key, found)
	case key < node.record.Key:
		node.left = remove(node.left, key, found)
	default:
		*found = true

		// Zero or one child: splice the node out
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}

		// Two children: take over the in-order successor and remove it
		// from the right sub-tree at its original position
		successor := first(node.right)
		node.record = successor.record
		node.right = remove(node.right, successor.record.Key, found)
	}

	updateHeight(node)
	return rebalance(node)
}

// lowest node in a sub-tree
func first(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}
