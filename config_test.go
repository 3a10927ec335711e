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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if config.Log.Level != "warn" || config.Cache.BloomHashes != 7 {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "log:\n  level: debug\nengine:\n  verify: true\ncache:\n  name_lookup_ttl: 90s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if config.Log.Level != "debug" {
		t.Errorf("log.level = %q; want debug", config.Log.Level)
	}
	if !config.Engine.Verify {
		t.Error("engine.verify should be true")
	}
	if config.Cache.NameLookupTTL != 90*time.Second {
		t.Errorf("cache.name_lookup_ttl = %v; want 90s", config.Cache.NameLookupTTL)
	}
	// untouched keys keep defaults
	if config.Shell.Prompt != "» " || config.Cache.BloomSize != 1<<20 {
		t.Errorf("defaults lost: %+v", config)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err == nil {
		t.Error("expected a parse error")
	}
	if config == nil || config.Log.Level != "warn" {
		t.Errorf("expected defaults on parse error, got %+v", config)
	}
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := writeDefaultConfigFile(path); err != nil {
		t.Fatalf("writeDefaultConfigFile returned error: %v", err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if *config != defaultConfig() {
		t.Errorf("round trip changed config: %+v", config)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/hist"); got != filepath.Join(home, "hist") {
		t.Errorf("expandHome(~/hist) = %q", got)
	}
	if got := expandHome("/tmp/hist"); got != "/tmp/hist" {
		t.Errorf("expandHome(/tmp/hist) = %q", got)
	}
}
