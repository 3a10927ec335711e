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
	"fmt"
	"strconv"

	"github.com/cybrota/rostertree/index"
)

// RemoveHandler handles `remove KEY`
type RemoveHandler struct {
	tree *index.Tree
}

func NewRemoveHandler(tree *index.Tree) *RemoveHandler {
	return &RemoveHandler{tree: tree}
}

func (h *RemoveHandler) Name() string {
	return "remove"
}

func (h *RemoveHandler) SupportsCommand(cmd *Command) bool {
	return cmd.HasNumber()
}

func (h *RemoveHandler) Priority() int {
	return 1
}

func (h *RemoveHandler) Execute(cmd *Command) Outcome {
	if err := h.tree.Delete(cmd.Number); err != nil {
		return failed(err)
	}
	return succeeded(true)
}

// RemoveInorderHandler handles `removeInorder N`
type RemoveInorderHandler struct {
	tree *index.Tree
}

func NewRemoveInorderHandler(tree *index.Tree) *RemoveInorderHandler {
	return &RemoveInorderHandler{tree: tree}
}

func (h *RemoveInorderHandler) Name() string {
	return "removeInorder"
}

func (h *RemoveInorderHandler) SupportsCommand(cmd *Command) bool {
	return cmd.HasNumber()
}

func (h *RemoveInorderHandler) Priority() int {
	return 1
}

func (h *RemoveInorderHandler) Execute(cmd *Command) Outcome {
	n, err := strconv.Atoi(cmd.Number)
	if err != nil {
		return failed(fmt.Errorf("%w: %v", index.ErrOutOfRange, err))
	}
	if err := h.tree.DeleteAt(n); err != nil {
		return failed(err)
	}
	return succeeded(true)
}
