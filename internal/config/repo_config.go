// Package config provides repository configuration management,
// including reading and writing worksets configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Detection strategy names accepted in the config file.
const (
	StrategyWatch = "watch"
	StrategyPoll  = "poll"
)

// DefaultPollInterval is the polling fallback interval
const DefaultPollInterval = 5 * time.Second

// DefaultMaxListedFiles caps how many file names a save notification lists
const DefaultMaxListedFiles = 5

// RepoConfig represents the repository configuration
type RepoConfig struct {
	// EditorOpenCommand opens a single file; "{path}" is replaced with the
	// file path. Example: "code -g {path}".
	EditorOpenCommand *string `json:"editorOpenCommand,omitempty"`

	// EditorCloseAllCommand closes all editor views. Optional; when unset,
	// restore skips the close step.
	EditorCloseAllCommand *string `json:"editorCloseAllCommand,omitempty"`

	// DetectionStrategy forces "watch" or "poll". Empty means automatic.
	DetectionStrategy *string `json:"detectionStrategy,omitempty"`

	// PollIntervalSeconds overrides the polling fallback interval
	PollIntervalSeconds *int `json:"pollIntervalSeconds,omitempty"`

	// MaxListedFiles overrides how many files a save notification lists
	MaxListedFiles *int `json:"maxListedFiles,omitempty"`

	// DesktopNotifications enables desktop notifications from the watcher
	DesktopNotifications *bool `json:"desktopNotifications,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".worksets_config")
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// SaveRepoConfig writes the repository configuration
func SaveRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// OpenCommand returns the configured editor open command, or the EDITOR
// environment variable as a fallback. Empty when neither is set.
func (c *RepoConfig) OpenCommand() string {
	if c.EditorOpenCommand != nil && *c.EditorOpenCommand != "" {
		return *c.EditorOpenCommand
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor + " {path}"
	}
	return ""
}

// CloseAllCommand returns the configured close-all command, or empty
func (c *RepoConfig) CloseAllCommand() string {
	if c.EditorCloseAllCommand != nil {
		return *c.EditorCloseAllCommand
	}
	return ""
}

// Strategy returns the forced detection strategy, or empty for automatic
func (c *RepoConfig) Strategy() string {
	if c.DetectionStrategy != nil {
		return *c.DetectionStrategy
	}
	return ""
}

// PollInterval returns the polling interval to use
func (c *RepoConfig) PollInterval() time.Duration {
	if c.PollIntervalSeconds != nil && *c.PollIntervalSeconds > 0 {
		return time.Duration(*c.PollIntervalSeconds) * time.Second
	}
	return DefaultPollInterval
}

// MaxListed returns how many files a save notification should list
func (c *RepoConfig) MaxListed() int {
	if c.MaxListedFiles != nil && *c.MaxListedFiles > 0 {
		return *c.MaxListedFiles
	}
	return DefaultMaxListedFiles
}

// NotificationsEnabled returns whether desktop notifications are enabled
func (c *RepoConfig) NotificationsEnabled() bool {
	if c.DesktopNotifications != nil {
		return *c.DesktopNotifications
	}
	return true
}
