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

import "github.com/cybrota/rostertree/index"

// InsertHandler handles `insert "NAME" KEY`
type InsertHandler struct {
	tree  *index.Tree
	names *NameCache
}

func NewInsertHandler(tree *index.Tree, names *NameCache) *InsertHandler {
	return &InsertHandler{tree: tree, names: names}
}

func (h *InsertHandler) Name() string {
	return "insert"
}

func (h *InsertHandler) SupportsCommand(cmd *Command) bool {
	return cmd.HasText() && cmd.HasNumber()
}

func (h *InsertHandler) Priority() int {
	return 1
}

func (h *InsertHandler) Execute(cmd *Command) Outcome {
	if err := h.tree.Insert(cmd.Text, cmd.Number); err != nil {
		return failed(err)
	}
	h.names.Observe(cmd.Text)
	return succeeded(true)
}
