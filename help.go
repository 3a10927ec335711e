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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Rostertree %s**

An in-memory roster of names keyed by 8-digit identifiers, kept in a
self-balancing search tree and driven by a tiny line-oriented command language.

Built with Go %s

# 1. Commands
* insert "NAME" KEY: add a record; NAME is letters and spaces, KEY is 8 digits
* remove KEY: remove the record stored under KEY
* removeInorder N: remove the N-th record in key order, counting from 0
* search KEY: print the name stored under KEY
* search "NAME": print every key stored under NAME, one per line
* printInorder, printPreorder, printPostorder: names in traversal order
* printLevelCount: number of levels in the tree

Every mutation and failed lookup prints successful or unsuccessful.

# 2. Front ends
* rostertree < script.txt: run commands read from stdin
* rostertree run FILE...: run command files, with --progress for a spinner
* rostertree shell: interactive shell with history, completion and meta commands
* rostertree tui: terminal UI with a transcript and a live record panel

# 3. Configuration
* Settings live in ~/.rostertree.yaml, see rostertree settings
* Use --config to point at another file

# Please be aware
* Copy to clipboard in the TUI on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
