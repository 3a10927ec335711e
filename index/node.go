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

// Record is the payload stored at each tree position.
type Record struct {
	Name string
	Key  string
}

// Node is a single position in the tree. Fields are only changed by the
// tree itself; callers get read access through the accessors.
type Node struct {
	record Record
	left   *Node // keys less than record.Key
	right  *Node // keys greater than record.Key
	height int   // leaf = 1
}

func newNode(name, key string) *Node {
	return &Node{
		record: Record{Name: name, Key: key},
		height: 1,
	}
}

// Record - the record held by the node
func (p *Node) Record() Record {
	return p.record
}

// Left - left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// height of an absent child is 0
func height(p *Node) int {
	if p == nil {
		return 0
	}
	return p.height
}

func updateHeight(p *Node) {
	p.height = max(height(p.left), height(p.right)) + 1
}

func balanceFactor(p *Node) int {
	if p == nil {
		return 0
	}
	return height(p.left) - height(p.right)
}
