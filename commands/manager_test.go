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
	"testing"

	"github.com/cybrota/rostertree/index"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	input    string
	expected string
}

func runSteps(t *testing.T, d *Dispatcher, steps []step) {
	t.Helper()
	for i, s := range steps {
		if got := d.Execute(s.input); got != s.expected {
			t.Errorf("step %d %q: expected %q, got %q", i, s.input, s.expected, got)
		}
	}
}

func TestDispatcherSession(t *testing.T) {
	d := NewDispatcher(index.New())

	runSteps(t, d, []step{
		{`insert "Brandon" 45679999`, Successful},
		{`insert "Brian" 35459999`, Successful},
		{`insert "Briana" 87879999`, Successful},
		{`insert "Bella" 95469999`, Successful},
		{`printInorder`, "Brian, Brandon, Briana, Bella"},
		{`printPreorder`, "Brandon, Brian, Briana, Bella"},
		{`printPostorder`, "Brian, Bella, Briana, Brandon"},
		{`printLevelCount`, "3"},
		{`remove 45679999`, Successful},
		{`printPreorder`, "Briana, Brian, Bella"},
		{`removeInorder 2`, Successful},
		{`printInorder`, "Brian, Briana"},
		{`search 35459999`, "Brian"},
		{`search "Brian"`, "35459999"},
		{`search "Bella"`, Unsuccessful},
		{`search "Brian" 87879999`, "Briana"},
		{`printLevelCount`, "2"},
	})
}

func TestDispatcherFailures(t *testing.T) {
	d := NewDispatcher(index.New())

	runSteps(t, d, []step{
		{`insert "Brian" 35459999`, Successful},
		{`insert "A11y" 12345678`, Unsuccessful},
		{`insert "Duplicate" 35459999`, Unsuccessful},
		{`insert "Short" 1234567`, Unsuccessful},
		{`insert "Brian"`, Unsuccessful},
		{`insert 12345678`, Unsuccessful},
		{`insert Brandon 45679999`, Unsuccessful},
		{`remove 1234567`, Unsuccessful},
		{`remove 99999999`, Unsuccessful},
		{`remove`, Unsuccessful},
		{`search 99999999`, Unsuccessful},
		{`search 123`, Unsuccessful},
		{`search`, Unsuccessful},
		{`removeInorder 10`, Unsuccessful},
		{`removeInorder 99999999999999999999999`, Unsuccessful},
		{`invalidCommand`, Unsuccessful},
		{``, Unsuccessful},
		{`printInorder`, "Brian"},
	})
	assert.Equal(t, 1, d.Tree().Count())
}

func TestDispatcherEmptyTree(t *testing.T) {
	d := NewDispatcher(index.New())

	runSteps(t, d, []step{
		{`printInorder`, ""},
		{`printPreorder`, ""},
		{`printPostorder`, ""},
		{`printLevelCount`, "0"},
		{`removeInorder 0`, Unsuccessful},
	})
}

func TestDispatcherSearchNameMultipleMatches(t *testing.T) {
	d := NewDispatcher(index.New())

	runSteps(t, d, []step{
		{`insert "Ann" 20000000`, Successful},
		{`insert "Ann" 10000000`, Successful},
		{`insert "Bob" 30000000`, Successful},
		// pre-order: root first
		{`search "Ann"`, "20000000\n10000000"},
	})
}

func TestDispatcherNameCacheInvalidation(t *testing.T) {
	names := NewNameCache(0, 4096, 3)
	d := NewDispatcher(index.New(), WithNameCache(names))

	runSteps(t, d, []step{
		{`insert "Ann" 11111111`, Successful},
		{`search "Ann"`, "11111111"},
	})
	assert.Equal(t, 1, names.Len(), "lookup should be memoised")

	runSteps(t, d, []step{
		{`remove 11111111`, Successful},
		{`search "Ann"`, Unsuccessful},
		{`insert "Ann" 22222222`, Successful},
		{`search "Ann"`, "22222222"},
		{`search "Zed"`, Unsuccessful},
	})
}

func TestDispatcherSeedsFilterFromTree(t *testing.T) {
	tree := index.New()
	require.NoError(t, tree.Insert("Preloaded", "12345678"))

	d := NewDispatcher(tree)
	runSteps(t, d, []step{
		{`search "Preloaded"`, "12345678"},
	})
}

func TestDispatcherVerify(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	d := NewDispatcher(index.New(), WithVerify(true), WithLogger(logger))
	for i, key := range []string{"50000000", "40000000", "30000000", "20000000", "10000000"} {
		require.Equal(t, Successful, d.Execute(`insert "Node" `+key), "insert %d", i)
	}
	require.Equal(t, Successful, d.Execute(`remove 40000000`))

	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, entry.Level, "unexpected error log: %s", entry.Message)
	}
	assert.NotEmpty(t, hook.AllEntries(), "dispatches are logged at debug")
}

type fixedHandler struct{}

func (fixedHandler) Name() string                      { return "printLevelCount" }
func (fixedHandler) SupportsCommand(cmd *Command) bool { return true }
func (fixedHandler) Priority() int                     { return 0 }
func (fixedHandler) Execute(cmd *Command) Outcome      { return Outcome{Lines: []string{"42"}} }

func TestRegisterHandlerPriority(t *testing.T) {
	d := NewDispatcher(index.New())
	d.RegisterHandler(fixedHandler{})
	assert.Equal(t, "42", d.Execute("printLevelCount"))
}

func TestKeywords(t *testing.T) {
	d := NewDispatcher(index.New())
	assert.Equal(t, []string{
		"insert", "remove", "search", "printInorder", "printPreorder",
		"printPostorder", "printLevelCount", "removeInorder",
	}, d.Keywords())
}
