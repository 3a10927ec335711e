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

// Handler defines the interface for a single command keyword
type Handler interface {
	Name() string // keyword it answers to
	SupportsCommand(cmd *Command) bool
	Priority() int // Lower number = higher priority
	Execute(cmd *Command) Outcome
}

// Outcome is what a handler produced. A non-nil Err renders as
// Unsuccessful; otherwise Lines are written one per line.
type Outcome struct {
	Lines   []string
	Mutated bool // the tree changed
	Err     error
}

func succeeded(mutated bool) Outcome {
	return Outcome{Lines: []string{Successful}, Mutated: mutated}
}

func failed(err error) Outcome {
	return Outcome{Err: err}
}
