package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ProjectFile is the per-directory config file name.
const ProjectFile = ".lemonadeconfig"

// Art styles understood by the TUI.
const (
	ArtASCII = "ascii"
	ArtPlain = "plain"
)

// Config holds all configurable lemonade settings.
type Config struct {
	Accent   string `json:"accent"`    // lipgloss colour for the title bar and frame
	Art      string `json:"art"`       // "ascii" | "plain"
	LogLevel string `json:"log_level"` // zerolog level name
	LogFile  string `json:"log_file"`  // empty disables logging
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		Accent: "220",
		Art:    ArtASCII,
	}
}

// GlobalPath returns ~/.config/lemonade/config.json.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lemonade", "config.json"), nil
}

// LoadGlobal reads ~/.config/lemonade/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path, true)
}

// LoadProject reads .lemonadeconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(ProjectFile, false)
}

// Load reads both files and merges them.
func Load() (Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return Config{}, err
	}
	project, err := LoadProject()
	if err != nil {
		return Config{}, err
	}
	return Merge(global, project), nil
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	for _, c := range []*Config{global, project} {
		if c == nil {
			continue
		}
		if c.Accent != "" {
			result.Accent = c.Accent
		}
		if c.Art != "" {
			result.Art = c.Art
		}
		if c.LogLevel != "" {
			result.LogLevel = c.LogLevel
		}
		if c.LogFile != "" {
			result.LogFile = c.LogFile
		}
	}
	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
