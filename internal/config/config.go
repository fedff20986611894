// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/glean/config.yml.
// Every field is optional; zero values fall back to built-in defaults.
type GlobalConfig struct {
	OllamaURL       string `yaml:"ollama_url,omitempty"`
	EmbedModel      string `yaml:"embed_model,omitempty"`
	EmbedDimensions int    `yaml:"embed_dimensions,omitempty"`
	ChatModel       string `yaml:"chat_model,omitempty"`
	TopK            int    `yaml:"top_k,omitempty"`
	HistoryPath     string `yaml:"history_path,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "glean"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// HistoryFile is the default chat history database name.
	HistoryFile = "history.db"

	// DefaultTopK is how many ranked sentences are shown by default.
	DefaultTopK = 3
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/glean/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
// On read or parse failure the empty config is returned alongside the
// error, so callers that discard the error fall back to defaults
// instead of dereferencing nil.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return &GlobalConfig{}, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &GlobalConfig{}, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.HistoryPath != "" {
		cfg.HistoryPath = ExpandPath(cfg.HistoryPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetTopK returns the configured result count, or DefaultTopK.
func GetTopK() int {
	cfg, _ := LoadGlobalConfig()
	if cfg.TopK > 0 {
		return cfg.TopK
	}
	return DefaultTopK
}

// GetHistoryPath returns the chat history database path.
// Defaults to history.db next to the config file.
func GetHistoryPath() string {
	cfg, _ := LoadGlobalConfig()
	if cfg.HistoryPath != "" {
		return cfg.HistoryPath
	}
	configPath := GlobalConfigPath()
	if configPath == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(configPath), HistoryFile)
}

// GetChatModel returns the configured chat model, or empty for the default.
func GetChatModel() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.ChatModel
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
