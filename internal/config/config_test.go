package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// Feature: lemonade, Property 5: Config merge precedence
func TestConfigMergePrecedence(t *testing.T) {
	// Generator for a non-empty string field value.
	nonEmptyString := rapid.StringMatching(`[a-zA-Z0-9/_.-]{1,20}`)

	// Each field is independently either empty or a non-empty value.
	configGen := rapid.Custom(func(t *rapid.T) *Config {
		cfg := &Config{}
		if rapid.Bool().Draw(t, "hasAccent") {
			cfg.Accent = nonEmptyString.Draw(t, "accent")
		}
		if rapid.Bool().Draw(t, "hasArt") {
			cfg.Art = nonEmptyString.Draw(t, "art")
		}
		if rapid.Bool().Draw(t, "hasLogLevel") {
			cfg.LogLevel = nonEmptyString.Draw(t, "logLevel")
		}
		if rapid.Bool().Draw(t, "hasLogFile") {
			cfg.LogFile = nonEmptyString.Draw(t, "logFile")
		}
		return cfg
	})

	rapid.Check(t, func(t *rapid.T) {
		global := configGen.Draw(t, "global")
		project := configGen.Draw(t, "project")

		merged := Merge(global, project)
		defaults := Defaults()

		checkStringField(t, "Accent", global.Accent, project.Accent, defaults.Accent, merged.Accent)
		checkStringField(t, "Art", global.Art, project.Art, defaults.Art, merged.Art)
		checkStringField(t, "LogLevel", global.LogLevel, project.LogLevel, defaults.LogLevel, merged.LogLevel)
		checkStringField(t, "LogFile", global.LogFile, project.LogFile, defaults.LogFile, merged.LogFile)
	})
}

// checkStringField asserts the merge precedence rule for a single string field:
//   - project non-empty  → merged == project
//   - project empty, global non-empty → merged == global
//   - both empty → merged == defaultVal
func checkStringField(t *rapid.T, name, globalVal, projectVal, defaultVal, mergedVal string) {
	t.Helper()
	switch {
	case projectVal != "":
		if mergedVal != projectVal {
			t.Fatalf("%s: both set — expected project value %q, got %q", name, projectVal, mergedVal)
		}
	case globalVal != "":
		if mergedVal != globalVal {
			t.Fatalf("%s: only global set — expected global value %q, got %q", name, globalVal, mergedVal)
		}
	default:
		if mergedVal != defaultVal {
			t.Fatalf("%s: neither set — expected default %q, got %q", name, defaultVal, mergedVal)
		}
	}
}

func TestMergeNilBoth(t *testing.T) {
	if got := Merge(nil, nil); got != Defaults() {
		t.Errorf("want defaults, got %+v", got)
	}
}

func TestDefaultsValues(t *testing.T) {
	d := Defaults()
	if d.Art != ArtASCII {
		t.Errorf("Art: want %q, got %q", ArtASCII, d.Art)
	}
	if d.Accent == "" {
		t.Error("Accent: want a default colour")
	}
	if d.LogFile != "" {
		t.Errorf("LogFile: want empty, got %q", d.LogFile)
	}
}

func TestLoadGlobalMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config, got nil")
	}
	if *cfg != Defaults() {
		t.Errorf("want defaults, got %+v", *cfg)
	}
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoadProjectMissingFileReturnsNil(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadProject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoadProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	cfgDir := filepath.Join(home, ".config", "lemonade")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(`{"accent":"62","art":"plain"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ProjectFile, []byte(`{"accent":"205"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Accent != "205" {
		t.Errorf("Accent: want project %q, got %q", "205", cfg.Accent)
	}
	if cfg.Art != ArtPlain {
		t.Errorf("Art: want global %q, got %q", ArtPlain, cfg.Art)
	}
}

func TestLoadGlobalParseError(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	// Write an invalid JSON file where LoadGlobal expects it.
	cfgDir := filepath.Join(tmp, ".config", "lemonade")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte("{invalid json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadGlobal()
	if err == nil {
		t.Fatal("expected an error for invalid JSON, got nil")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if parseErr.Path != filepath.Join(cfgDir, "config.json") {
		t.Errorf("Path: got %q", parseErr.Path)
	}
}

func TestWatchReloadsOnProjectWrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{filepath.Join(dir, ProjectFile)}, func(c Config) {
			changes <- c
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, ProjectFile), []byte(`{"accent":"99"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Accent != "99" {
			t.Errorf("Accent: want %q, got %q", "99", c.Accent)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
