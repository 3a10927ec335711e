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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cybrota/rostertree/commands"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// runScript feeds every line of r to the dispatcher and writes each
// output on its own line, in input order. bar may be nil.
func runScript(d *commands.Dispatcher, r io.Reader, w io.Writer, bar *progressbar.ProgressBar) (int, error) {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	count := 0
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, d.Execute(scanner.Text())); err != nil {
			return count, err
		}
		count++
		if bar != nil {
			bar.Add(1)
		}
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}

// runScriptFile runs the commands in path, showing a spinner on stderr
// when showProgress is set
func runScriptFile(d *commands.Dispatcher, path string, w io.Writer, showProgress bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("script file %s not found", path)
		}
		return 0, err
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = newScriptProgress(filepath.Base(path))
	}

	log.WithField("file", path).Info("running script")
	count, err := runScript(d, file, w, bar)
	if bar != nil {
		bar.Finish()
	}
	log.WithFields(log.Fields{
		"file":     path,
		"commands": count,
	}).Info("script finished")
	return count, err
}

func newScriptProgress(name string) *progressbar.ProgressBar {
	// Unknown total: spinner with a running count
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(fmt.Sprintf("📜 Running %s", name)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(os.Stderr, "\n✅ %s completed\n", name)
		}),
	)
}
