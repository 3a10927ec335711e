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
	"errors"
	"regexp"
)

// Outcome tokens written for commands that only succeed or fail.
const (
	Successful   = "successful"
	Unsuccessful = "unsuccessful"
)

// ErrMalformed is returned by Parse for a line that is not a keyword
// optionally followed by a quoted name and/or a digit token.
var ErrMalformed = errors.New("malformed command")

// keyword, then an optional "quoted name", then an optional digit token
var commandRegex = regexp.MustCompile(`^\s*(\w+)(?:\s+"([^"]+)")?(?:\s+(\d+))?\s*$`)

// Command represents one parsed input line
type Command struct {
	Raw    string
	Name   string // keyword, e.g. "insert"
	Text   string // quoted argument without the quotes, "" if absent
	Number string // digit argument, "" if absent
}

// HasText reports whether a quoted argument was given
func (c *Command) HasText() bool {
	return c.Text != ""
}

// HasNumber reports whether a digit argument was given
func (c *Command) HasNumber() bool {
	return c.Number != ""
}

// Parse splits a line into keyword and arguments.
func Parse(line string) (*Command, error) {
	m := commandRegex.FindStringSubmatch(line)
	if m == nil {
		return nil, ErrMalformed
	}
	return &Command{
		Raw:    line,
		Name:   m[1],
		Text:   m[2],
		Number: m[3],
	}, nil
}
