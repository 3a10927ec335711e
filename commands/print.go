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

package commands

import (
	"strconv"
	"strings"

	"github.com/cybrota/rostertree/index"
)

// TraversalHandler prints the names of one traversal order joined by ", "
type TraversalHandler struct {
	name string
	walk func() []index.Record
}

func NewInorderHandler(tree *index.Tree) *TraversalHandler {
	return &TraversalHandler{name: "printInorder", walk: tree.InOrder}
}

func NewPreorderHandler(tree *index.Tree) *TraversalHandler {
	return &TraversalHandler{name: "printPreorder", walk: tree.PreOrder}
}

func NewPostorderHandler(tree *index.Tree) *TraversalHandler {
	return &TraversalHandler{name: "printPostorder", walk: tree.PostOrder}
}

func (h *TraversalHandler) Name() string {
	return h.name
}

// SupportsCommand - arguments are ignored
func (h *TraversalHandler) SupportsCommand(cmd *Command) bool {
	return true
}

func (h *TraversalHandler) Priority() int {
	return 1
}

func (h *TraversalHandler) Execute(cmd *Command) Outcome {
	return Outcome{Lines: []string{JoinNames(h.walk())}}
}

// JoinNames renders records as "name, name, name"
func JoinNames(records []index.Record) string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}

// LevelCountHandler handles `printLevelCount`
type LevelCountHandler struct {
	tree *index.Tree
}

func NewLevelCountHandler(tree *index.Tree) *LevelCountHandler {
	return &LevelCountHandler{tree: tree}
}

func (h *LevelCountHandler) Name() string {
	return "printLevelCount"
}

func (h *LevelCountHandler) SupportsCommand(cmd *Command) bool {
	return true
}

func (h *LevelCountHandler) Priority() int {
	return 1
}

func (h *LevelCountHandler) Execute(cmd *Command) Outcome {
	return Outcome{Lines: []string{strconv.Itoa(h.tree.LevelCount())}}
}
