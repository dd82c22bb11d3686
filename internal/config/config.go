package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "tarotpick"

// Config represents the application configuration
type Config struct {
	DefaultDeck string `toml:"default_deck"` // Art deck used for premium rendering
	Shape       string `toml:"shape"`        // "full" (78 cards) or "major" (22 cards)
	Premium     bool   `toml:"premium"`      // Premium artwork entitlement
	Language    string `toml:"language"`     // Preferred names/<lang>.toml of the art deck
	LogLevel    string `toml:"log_level"`
	HTTPAddr    string `toml:"http_addr"`
}

// Default returns the configuration written on first run
func Default() Config {
	return Config{
		DefaultDeck: "rider-waite-smith",
		Shape:       "full",
		Language:    "en",
		LogLevel:    "info",
		HTTPAddr:    ":8080",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "tarot", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetCacheDir returns the directory for generated files such as ANSI art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// LoadConfig loads the config file, creating it with defaults when missing.
// TAROTPICK_LOG_LEVEL and TAROTPICK_HTTP_ADDR override the file.
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("TAROTPICK_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("TAROTPICK_HTTP_ADDR"); v != "" {
		config.HTTPAddr = v
	}

	return config, nil
}

// loadFile reads the config file without environment overrides
func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	c := Default()
	if _, err := toml.DecodeFile(configPath, &c); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return &c, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDeckPath returns the path to a deck, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck saved in the config file.
// Command-line overrides such as --deck do not change it.
func GetDefaultDeck() (string, error) {
	config, err := loadFile()
	if err != nil {
		return "", err
	}

	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return SaveConfig(config)
}

// ParseLogLevel converts a config log level into a slog.Level
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
