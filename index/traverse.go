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

// InOrder - records in ascending key order (left, self, right)
func (tree *Tree) InOrder() []Record {
	records := make([]Record, 0, tree.count)
	inOrder(tree.root, &records)
	return records
}

// PreOrder - records in self, left, right order
func (tree *Tree) PreOrder() []Record {
	records := make([]Record, 0, tree.count)
	preOrder(tree.root, &records)
	return records
}

// PostOrder - records in left, right, self order
func (tree *Tree) PostOrder() []Record {
	records := make([]Record, 0, tree.count)
	postOrder(tree.root, &records)
	return records
}

func inOrder(node *Node, records *[]Record) {
	if node == nil {
		return
	}
	inOrder(node.left, records)
	*records = append(*records, node.record)
	inOrder(node.right, records)
}

func preOrder(node *Node, records *[]Record) {
	if node == nil {
		return
	}
	*records = append(*records, node.record)
	preOrder(node.left, records)
	preOrder(node.right, records)
}

func postOrder(node *Node, records *[]Record) {
	if node == nil {
		return
	}
	postOrder(node.left, records)
	postOrder(node.right, records)
	*records = append(*records, node.record)
}

// LevelCount walks the tree breadth first and returns the number of
// levels, root being level 1. It does not read the cached heights.
func (tree *Tree) LevelCount() int {
	if tree.root == nil {
		return 0
	}

	levels := 0
	queue := []*Node{tree.root}
	for len(queue) > 0 {
		levels += 1
		next := make([]*Node, 0, 2*len(queue))
		for _, node := range queue {
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		queue = next
	}
	return levels
}
