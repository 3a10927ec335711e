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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".rostertree.yaml"

type LogConfig struct {
	Level string `yaml:"level"`
}

type ShellConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
}

type EngineConfig struct {
	Verify bool `yaml:"verify"`
}

type CacheConfig struct {
	NameLookupTTL time.Duration `yaml:"name_lookup_ttl"`
	BloomSize     uint          `yaml:"bloom_size"`
	BloomHashes   uint          `yaml:"bloom_hashes"`
}

type ScriptConfig struct {
	Progress bool `yaml:"progress"`
}

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Shell  ShellConfig  `yaml:"shell"`
	Engine EngineConfig `yaml:"engine"`
	Cache  CacheConfig  `yaml:"cache"`
	Script ScriptConfig `yaml:"script"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "warn",
		},
		Shell: ShellConfig{
			Prompt:      "» ",
			HistoryFile: "~/.rostertree_history",
			Color:       true,
		},
		Engine: EngineConfig{
			Verify: false,
		},
		Cache: CacheConfig{
			NameLookupTTL: 5 * time.Minute,
			BloomSize:     1 << 20,
			BloomHashes:   7,
		},
		Script: ScriptConfig{
			Progress: false,
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the yaml file at path, or ~/.rostertree.yaml when path
// is empty. A missing or unreadable file yields the defaults; keys left
// out of the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config %s: %v", path, err)
	}
	return &config, nil
}

// expandHome turns a leading ~/ into the user's home directory
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

func writeDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func displaySettings(path string) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			fmt.Printf("❌ Failed to get config path: %v\n", err)
			return
		}
		path = p
	}

	configExists := true
	if _, err := os.Stat(path); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(path); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", path)
	}

	config, err := LoadConfig(path)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Rostertree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n\n", path)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n\n", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		fmt.Printf("❌ Failed to render configuration: %v\n", err)
		return
	}
	fmt.Printf("📊 Current settings:\n\n%s\n", data)

	if !config.Engine.Verify {
		fmt.Printf("💡 To check tree invariants after every change, edit %s:\n", path)
		fmt.Printf("   engine:\n     verify: true\n")
	}
}
