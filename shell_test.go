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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/rostertree/commands"
	"github.com/cybrota/rostertree/index"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell() (*shell, *bytes.Buffer) {
	var out bytes.Buffer
	s := &shell{
		dispatcher: commands.NewDispatcher(index.New()),
		out:        &out,
		errOut:     &out,
	}
	return s, &out
}

func TestShellCommands(t *testing.T) {
	s, out := newTestShell()

	require.NoError(t, s.handleLine(`insert "Ada Lovelace" 18151210`))
	require.NoError(t, s.handleLine(`insert "Alan Turing" 19120623`))
	require.NoError(t, s.handleLine("   "))
	require.NoError(t, s.handleLine("search 19120623"))
	require.NoError(t, s.handleLine("remove 99999999"))

	assert.Equal(t, "successful\nsuccessful\nAlan Turing\nunsuccessful\n", out.String())
}

func TestShellMetaCommands(t *testing.T) {
	s, out := newTestShell()
	require.NoError(t, s.handleLine(`insert "Ada" 18151210`))
	require.NoError(t, s.handleLine(`insert "Alan" 19120623`))
	out.Reset()

	require.NoError(t, s.handleLine(".count"))
	assert.Equal(t, "2\n", out.String())
	out.Reset()

	require.NoError(t, s.handleLine(".check"))
	assert.Equal(t, "ok: 2 records, 2 levels\n", out.String())
	out.Reset()

	require.NoError(t, s.handleLine(".tree"))
	assert.Contains(t, out.String(), `18151210 "Ada" h=2 -1`)
	assert.Contains(t, out.String(), `19120623 "Alan" h=1 +0`)
	out.Reset()

	require.NoError(t, s.handleLine(".help"))
	assert.Contains(t, out.String(), "removeInorder N")
	assert.Contains(t, out.String(), ".log-level LEVEL")
}

func TestShellTreeEmpty(t *testing.T) {
	s, out := newTestShell()
	require.NoError(t, s.handleLine(".tree"))
	assert.Equal(t, "(empty)\n", out.String())
}

func TestShellExit(t *testing.T) {
	s, _ := newTestShell()
	assert.ErrorIs(t, s.handleLine(".exit"), errShellExit)
	assert.ErrorIs(t, s.handleLine("  .quit  "), errShellExit)
}

func TestShellMetaErrors(t *testing.T) {
	s, _ := newTestShell()

	tests := []struct {
		line    string
		wantErr string
	}{
		{".bogus", `unknown meta command "bogus"`},
		{".load", "usage: .load FILE..."},
		{".log-level", "usage: .log-level LEVEL"},
		{".log-level loud", `invalid log level "loud"`},
		{".", "no meta command provided"},
		{`.load "unterminated`, "failed to parse command"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			err := s.handleLine(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShellLoad(t *testing.T) {
	s, out := newTestShell()
	path := filepath.Join(t.TempDir(), "my roster.txt")
	script := "insert \"Grace Hopper\" 19061209\nsearch 19061209\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	require.NoError(t, s.handleLine(`.load "`+path+`"`))
	assert.Equal(t, "successful\nGrace Hopper\n", out.String())
	assert.Equal(t, 1, s.dispatcher.Tree().Count())

	err := s.handleLine(".load " + filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestShellLogLevel(t *testing.T) {
	previous := log.GetLevel()
	defer log.SetLevel(previous)

	s, _ := newTestShell()
	require.NoError(t, s.handleLine(".log-level debug"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSplitCommand(t *testing.T) {
	args, err := splitCommand(`load "my file.txt" other.txt`)
	require.NoError(t, err)
	assert.Equal(t, []string{"load", "my file.txt", "other.txt"}, args)
}

func TestShellCompleter(t *testing.T) {
	s, _ := newTestShell()
	c := s.completer()

	var names []string
	for _, child := range c.GetChildren() {
		names = append(names, strings.TrimSpace(string(child.GetName())))
	}
	for _, k := range s.dispatcher.Keywords() {
		assert.Contains(t, names, k)
	}
	assert.Contains(t, names, ".load")
	assert.Contains(t, names, ".log-level")
}

func TestColorize(t *testing.T) {
	assert.Equal(t, commands.Successful, colorize(commands.Successful, false))
	assert.Equal(t, Green+commands.Successful+Reset, colorize(commands.Successful, true))
	assert.Equal(t, Error+commands.Unsuccessful+Reset, colorize(commands.Unsuccessful, true))
	assert.Equal(t, "Ada, Alan", colorize("Ada, Alan", true))
}
