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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/rostertree/commands"
	"github.com/cybrota/rostertree/index"
	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `insert "Brandon" 45679999
insert "Brian" 35459999
insert "Briana" 87879999
insert "Bella" 95469999
printInorder
remove 45679999
removeInorder 2
printInorder
search "Brian"
search 87879999
printLevelCount
insert "A11y" 12345678
bogus
`

func TestRunScript(t *testing.T) {
	d := commands.NewDispatcher(index.New())
	var out bytes.Buffer

	n, err := runScript(d, strings.NewReader(sampleScript), &out, nil)
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	expected := []string{
		"successful",
		"successful",
		"successful",
		"successful",
		"Brian, Brandon, Briana, Bella",
		"successful",
		"successful",
		"Brian, Briana",
		"35459999",
		"Briana",
		"2",
		"unsuccessful",
		"unsuccessful",
	}
	assert.Equal(t, strings.Join(expected, "\n")+"\n", out.String())
}

func TestRunScriptWithProgress(t *testing.T) {
	d := commands.NewDispatcher(index.New())
	bar := progressbar.NewOptions(-1, progressbar.OptionSetWriter(io.Discard))

	n, err := runScript(d, strings.NewReader("printLevelCount\nprintInorder\n"), io.Discard, bar)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.EqualValues(t, 2, bar.State().CurrentNum)
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0644))

	d := commands.NewDispatcher(index.New())
	var out bytes.Buffer
	n, err := runScriptFile(d, path, &out, false)
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, 2, d.Tree().Count())

	_, err = runScriptFile(d, filepath.Join(t.TempDir(), "missing.txt"), &out, false)
	assert.Error(t, err)
}
