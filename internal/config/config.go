package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the settings read once at startup. It is passed by value to
// every component and never modified afterwards.
type Config struct {
	Separator             string  `mapstructure:"separator" yaml:"separator"`
	SocketAddress         string  `mapstructure:"socket_address" yaml:"socket_address"`
	EmptyText             string  `mapstructure:"empty_text" yaml:"empty_text"`
	Width                 int     `mapstructure:"width" yaml:"width"`
	LineHeight            float64 `mapstructure:"line_height" yaml:"line_height"`
	BackgroundColor       string  `mapstructure:"background_color" yaml:"background_color"`
	ActiveBackgroundColor string  `mapstructure:"active_background_color" yaml:"active_background_color"`
	Hyprctl               string  `mapstructure:"hyprctl" yaml:"hyprctl"`
}

// MinWidth is the smallest usable width: room for the "..." ellipsis.
const MinWidth = 3

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "GROUPIE_CONFIG_PATH"

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Separator:             " || ",
		SocketAddress:         DefaultSocketAddress(),
		EmptyText:             "",
		Width:                 100,
		LineHeight:            1.0,
		BackgroundColor:       "#1e1e2e",
		ActiveBackgroundColor: "#45475a",
		Hyprctl:               "hyprctl",
	}
}

// DefaultSocketAddress derives the Hyprland event socket path from the
// session environment. It is empty when either variable is unset.
func DefaultSocketAddress() string {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if runtimeDir == "" || signature == "" {
		return ""
	}
	return filepath.Join(runtimeDir, "hypr", signature, ".socket2.sock")
}

// DefaultConfigPath resolves the config file location: GROUPIE_CONFIG_PATH,
// then $XDG_CONFIG_HOME/groupie/config.json, then ~/.config/groupie/config.json.
func DefaultConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "groupie", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "groupie", "config.json"), nil
}

// Validate checks the values the layout depends on.
func (c Config) Validate() error {
	if c.Width < MinWidth {
		return fmt.Errorf("width must be at least %d, got %d", MinWidth, c.Width)
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("line_height must be positive, got %v", c.LineHeight)
	}
	return nil
}
