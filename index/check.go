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

// Check verifies the ordering, cached height and balance of every node,
// the record count, and that the breadth first level count agrees with
// the root height. The first violation found is returned wrapped in
// ErrCorrupt.
func (tree *Tree) Check() error {
	n, err := check(tree.root, "", "")
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted %d nodes, expected %d", ErrCorrupt, n, tree.count)
	}
	if levels := tree.LevelCount(); levels != tree.Height() {
		return fmt.Errorf("%w: %d levels but root height %d", ErrCorrupt, levels, tree.Height())
	}
	return nil
}

// internal: consistency checker, keys must lie strictly inside (low, high);
// an empty bound is open
func check(node *Node, low, high string) (int, error) {
	if node == nil {
		return 0, nil
	}
	key := node.record.Key
	if low != "" && key <= low {
		return 0, fmt.Errorf("%w: key %q not greater than %q", ErrCorrupt, key, low)
	}
	if high != "" && key >= high {
		return 0, fmt.Errorf("%w: key %q not less than %q", ErrCorrupt, key, high)
	}

	nl, err := check(node.left, low, key)
	if err != nil {
		return 0, err
	}
	nr, err := check(node.right, key, high)
	if err != nil {
		return 0, err
	}

	if expected := 1 + max(height(node.left), height(node.right)); node.height != expected {
		return 0, fmt.Errorf("%w: key %q height %d, expected %d", ErrCorrupt, key, node.height, expected)
	}
	if bf := balanceFactor(node); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: key %q balance factor %d", ErrCorrupt, key, bf)
	}
	return 1 + nl + nr, nil
}
