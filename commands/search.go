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

// SearchKeyHandler handles `search KEY`. It outranks SearchNameHandler
// when a line carries both arguments.
type SearchKeyHandler struct {
	tree *index.Tree
}

func NewSearchKeyHandler(tree *index.Tree) *SearchKeyHandler {
	return &SearchKeyHandler{tree: tree}
}

func (h *SearchKeyHandler) Name() string {
	return "search"
}

func (h *SearchKeyHandler) SupportsCommand(cmd *Command) bool {
	return cmd.HasNumber()
}

func (h *SearchKeyHandler) Priority() int {
	return 1
}

func (h *SearchKeyHandler) Execute(cmd *Command) Outcome {
	name, err := h.tree.Search(cmd.Number)
	if err != nil {
		return failed(err)
	}
	return Outcome{Lines: []string{name}}
}

// SearchNameHandler handles `search "NAME"`, printing every matching key
// on its own line
type SearchNameHandler struct {
	tree  *index.Tree
	names *NameCache
}

func NewSearchNameHandler(tree *index.Tree, names *NameCache) *SearchNameHandler {
	return &SearchNameHandler{tree: tree, names: names}
}

func (h *SearchNameHandler) Name() string {
	return "search"
}

func (h *SearchNameHandler) SupportsCommand(cmd *Command) bool {
	return cmd.HasText()
}

func (h *SearchNameHandler) Priority() int {
	return 2
}

func (h *SearchNameHandler) Execute(cmd *Command) Outcome {
	if !h.names.MaybeContains(cmd.Text) {
		return failed(index.ErrNotFound)
	}
	if keys, ok := h.names.Get(cmd.Text); ok {
		return Outcome{Lines: keys}
	}

	keys, err := h.tree.SearchName(cmd.Text)
	if err != nil {
		return failed(err)
	}
	h.names.Set(cmd.Text, keys)
	return Outcome{Lines: keys}
}
