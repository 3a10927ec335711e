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
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cybrota/rostertree/commands"
	"github.com/mattn/go-shellwords"
	log "github.com/sirupsen/logrus"
)

const shellUsage = `
Commands:
	insert "NAME" KEY        add a record (KEY is 8 digits)
	remove KEY               remove a record
	removeInorder N          remove the N-th record in key order
	search KEY               print the name stored under KEY
	search "NAME"            print every key stored under NAME
	printInorder             names in key order
	printPreorder            names in pre-order
	printPostorder           names in post-order
	printLevelCount          number of levels in the tree
Meta commands:
	.help                    this text
	.tree                    draw the tree
	.check                   verify the tree invariants
	.count                   number of records
	.load FILE...            run the commands in FILE
	.log-level LEVEL         debug, info, warn, error
	.exit                    leave the shell
`

var errShellExit = errors.New("exit")

// shell is the interactive front end over one dispatcher
type shell struct {
	dispatcher *commands.Dispatcher
	out        io.Writer
	errOut     io.Writer
	color      bool
	progress   bool
}

func newShell(d *commands.Dispatcher, out, errOut io.Writer, config *Config) *shell {
	return &shell{
		dispatcher: d,
		out:        out,
		errOut:     errOut,
		color:      config.Shell.Color,
		progress:   config.Script.Progress,
	}
}

// splitCommand splits a meta command line into parts, honouring quotes.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// handleLine runs one line; errShellExit asks the caller to stop
func (s *shell) handleLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, ".") {
		return s.runMeta(trimmed[1:])
	}
	fmt.Fprintln(s.out, colorize(s.dispatcher.Execute(line), s.color))
	return nil
}

func (s *shell) runMeta(line string) error {
	args, err := splitCommand(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("no meta command provided")
	}

	tree := s.dispatcher.Tree()
	switch args[0] {
	case "help":
		io.WriteString(s.out, shellUsage[1:])
	case "tree":
		if tree.IsEmpty() {
			fmt.Fprintln(s.out, "(empty)")
			return nil
		}
		tree.Print(s.out)
	case "check":
		if err := tree.Check(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "ok: %d records, %d levels\n", tree.Count(), tree.LevelCount())
	case "count":
		fmt.Fprintln(s.out, tree.Count())
	case "load":
		if len(args) < 2 {
			return errors.New("usage: .load FILE...")
		}
		for _, path := range args[1:] {
			if _, err := runScriptFile(s.dispatcher, expandHome(path), s.out, s.progress); err != nil {
				return err
			}
		}
	case "log-level":
		if len(args) != 2 {
			return errors.New("usage: .log-level LEVEL")
		}
		return setLogLevel(args[1])
	case "exit", "quit":
		return errShellExit
	default:
		return fmt.Errorf("unknown meta command %q, try .help", args[0])
	}
	return nil
}

func (s *shell) completer() *readline.PrefixCompleter {
	keywords := s.dispatcher.Keywords()
	items := make([]readline.PrefixCompleterInterface, 0, len(keywords)+7)
	for _, k := range keywords {
		items = append(items, readline.PcItem(k))
	}
	metas := []string{".help", ".tree", ".check", ".count", ".load", ".exit"}
	sort.Strings(metas)
	for _, m := range metas {
		items = append(items, readline.PcItem(m))
	}
	items = append(items, readline.PcItem(".log-level",
		readline.PcItem("debug"),
		readline.PcItem("info"),
		readline.PcItem("warn"),
		readline.PcItem("error"),
	))
	return readline.NewPrefixCompleter(items...)
}

// runShell reads lines until EOF, .exit or ctrl+c on an empty line
func runShell(d *commands.Dispatcher, config *Config) error {
	InitializeColors()

	s := newShell(d, nil, nil, config)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          config.Shell.Prompt,
		HistoryFile:     expandHome(config.Shell.HistoryFile),
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %v", err)
	}
	defer l.Close()

	s.out, s.errOut = l.Stdout(), l.Stderr()
	log.SetOutput(l.Stderr())

	fmt.Fprintln(l.Stderr(), "Type .help for commands, .exit to leave.")
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.handleLine(line); err != nil {
			if errors.Is(err, errShellExit) {
				return nil
			}
			fmt.Fprintln(s.errOut, colorizeError(err.Error(), s.color))
		}
	}
}
