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
	"os"

	"github.com/cybrota/rostertree/commands"
	"github.com/cybrota/rostertree/index"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// newDispatcher builds an empty roster wired the way config asks
func newDispatcher(config *Config) *commands.Dispatcher {
	names := commands.NewNameCache(
		config.Cache.NameLookupTTL,
		config.Cache.BloomSize,
		config.Cache.BloomHashes,
	)
	return commands.NewDispatcher(index.New(),
		commands.WithNameCache(names),
		commands.WithVerify(config.Engine.Verify),
		commands.WithLogger(log.StandardLogger()),
	)
}

// runInputs runs every file in order against one tree, or stdin when
// no file is given
func runInputs(config *Config, files []string, showProgress bool) error {
	d := newDispatcher(config)
	if len(files) == 0 {
		_, err := runScript(d, os.Stdin, os.Stdout, nil)
		return err
	}
	for _, path := range files {
		if _, err := runScriptFile(d, path, os.Stdout, showProgress); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	asciiLogo := `
┳┓        ┏┳┓
┣┫┏┓┏╋┏┓┏┓ ┃ ┏┓┏┓┏┓
┛┗┗┛┛┗┗ ┛  ┻ ┛ ┗ ┗
A balanced roster of names and keys, driven by line commands [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var configPath string
	var config *Config

	loadSettings := func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = LoadConfig(configPath)
		if err != nil {
			log.Warnf("Failed to load configuration: %v. Using default settings.", err)
		}
		return setupLogging(config.Log.Level)
	}

	var cmdRun = &cobra.Command{
		Use:   "run [FILE...]",
		Short: "Run commands from files or stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run reads one command per line and prints one result per command`),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showProgress := config.Script.Progress
			if cmd.Flags().Changed("progress") {
				showProgress, _ = cmd.Flags().GetBool("progress")
			}
			return runInputs(config, args, showProgress)
		},
	}
	cmdRun.Flags().Bool("progress", false, "show a spinner on stderr while running files")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive roster shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell starts a line editor on a fresh roster`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(newDispatcher(config), config)
		},
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Launches the roster terminal UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `TUI shows a transcript and the live roster side by side`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(newDispatcher(config))
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the configuration, creating a default file when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Rostertree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the rostertree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Rostertree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:               "rostertree",
		Version:           version,
		Long:              asciiLogo,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, commands come from stdin
			return runInputs(config, nil, false)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.rostertree.yaml)")
	rootCmd.AddCommand(cmdRun, cmdShell, cmdTUI, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
