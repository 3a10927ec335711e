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

// Search returns the name stored under key. The key must be exactly
// KeyLength digits.
func (tree *Tree) Search(key string) (string, error) {
	if !ValidKey(key) {
		return "", fmt.Errorf("%w: key %q must be %d digits", ErrInvalidInput, key, KeyLength)
	}

	node := search(tree.root, key)
	if node == nil {
		return "", fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	return node.record.Name, nil
}

func search(node *Node, key string) *Node {
	for node != nil {
		switch {
		case key < node.record.Key:
			node = node.left
		case key > node.record.Key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// SearchName returns the key of every record whose name equals name, in
// pre-order visiting order. Names are not ordered by the tree, so every
// node is visited.
func (tree *Tree) SearchName(name string) ([]string, error) {
	var keys []string
	searchName(tree.root, name, &keys)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	return keys, nil
}

func searchName(node *Node, name string, keys *[]string) {
	if node == nil {
		return
	}
	if node.record.Name == name {
		*keys = append(*keys, node.record.Key)
	}
	searchName(node.left, name, keys)
	searchName(node.right, name, keys)
}
