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
	"sort"
	"strings"

	"github.com/cybrota/rostertree/index"
	log "github.com/sirupsen/logrus"
)

// Dispatcher routes parsed lines to the registered handlers
type Dispatcher struct {
	handlers []Handler
	tree     *index.Tree
	names    *NameCache
	verify   bool
	logger   log.FieldLogger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithNameCache replaces the default name lookup cache
func WithNameCache(c *NameCache) Option {
	return func(d *Dispatcher) {
		d.names = c
	}
}

// WithVerify runs Tree.Check after every mutating command
func WithVerify(verify bool) Option {
	return func(d *Dispatcher) {
		d.verify = verify
	}
}

// WithLogger replaces the standard logrus logger
func WithLogger(logger log.FieldLogger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a dispatcher over tree with all commands registered
func NewDispatcher(tree *index.Tree, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		tree:   tree,
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.names == nil {
		d.names = NewDefaultNameCache()
	}

	// names already in the tree must pass the filter
	for _, r := range tree.InOrder() {
		d.names.Observe(r.Name)
	}

	d.RegisterHandler(NewInsertHandler(tree, d.names))
	d.RegisterHandler(NewRemoveHandler(tree))
	d.RegisterHandler(NewSearchKeyHandler(tree))
	d.RegisterHandler(NewSearchNameHandler(tree, d.names))
	d.RegisterHandler(NewInorderHandler(tree))
	d.RegisterHandler(NewPreorderHandler(tree))
	d.RegisterHandler(NewPostorderHandler(tree))
	d.RegisterHandler(NewLevelCountHandler(tree))
	d.RegisterHandler(NewRemoveInorderHandler(tree))

	return d
}

// RegisterHandler registers a new handler keeping priority order
func (d *Dispatcher) RegisterHandler(h Handler) {
	d.handlers = append(d.handlers, h)
	sort.SliceStable(d.handlers, func(i, j int) bool {
		return d.handlers[i].Priority() < d.handlers[j].Priority()
	})
}

// Tree - the tree commands run against
func (d *Dispatcher) Tree() *index.Tree {
	return d.tree
}

// Keywords - distinct command keywords in registration order
func (d *Dispatcher) Keywords() []string {
	seen := make(map[string]struct{}, len(d.handlers))
	keywords := make([]string, 0, len(d.handlers))
	for _, h := range d.handlers {
		if _, ok := seen[h.Name()]; ok {
			continue
		}
		seen[h.Name()] = struct{}{}
		keywords = append(keywords, h.Name())
	}
	return keywords
}

// Execute runs one line and returns its rendered output. Every failure,
// including an unknown or malformed line, renders as Unsuccessful.
func (d *Dispatcher) Execute(line string) string {
	cmd, err := Parse(line)
	if err != nil {
		d.logger.WithField("line", line).Debug("malformed command")
		return Unsuccessful
	}

	h := d.handlerFor(cmd)
	if h == nil {
		d.logger.WithField("command", cmd.Name).Debug("no handler for command")
		return Unsuccessful
	}

	outcome := h.Execute(cmd)
	if outcome.Mutated {
		d.afterMutation(cmd)
	}

	if outcome.Err != nil {
		d.logger.WithFields(log.Fields{
			"command": cmd.Name,
			"outcome": Unsuccessful,
		}).WithError(outcome.Err).Debug("dispatched")
		return Unsuccessful
	}

	out := strings.Join(outcome.Lines, "\n")
	d.logger.WithFields(log.Fields{
		"command": cmd.Name,
		"outcome": out,
	}).Debug("dispatched")
	return out
}

func (d *Dispatcher) handlerFor(cmd *Command) Handler {
	for _, h := range d.handlers {
		if h.Name() == cmd.Name && h.SupportsCommand(cmd) {
			return h
		}
	}
	return nil
}

func (d *Dispatcher) afterMutation(cmd *Command) {
	d.names.Invalidate()
	if !d.verify {
		return
	}
	if err := d.tree.Check(); err != nil {
		d.logger.WithField("command", cmd.Raw).WithError(err).Error("tree invariant violated")
	}
}
