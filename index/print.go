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

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII drawing of the tree to w, right sub-trees above
// left ones, and returns the number of levels drawn.
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

func printTree(w io.Writer, node *Node, prefix string, br branch) int {
	if node == nil {
		return 0
	}
	rd := 0
	ld := 0
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, node.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s %q h=%d %+d\n", node.record.Key, node.record.Name, node.height, balanceFactor(node))
	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, node.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
