package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
	"pkt.systems/pslog"
)

// Load reads the JSON config at path, or DefaultConfigPath when path is
// empty. A missing or unreadable file yields the defaults with a warning.
// Malformed JSON, wrong-typed values and invalid settings are errors.
// GROUPIE_<KEY> environment variables override file values.
func Load(ctx context.Context, path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("GROUPIE")
	v.AutomaticEnv()
	v.SetDefault("separator", cfg.Separator)
	v.SetDefault("socket_address", cfg.SocketAddress)
	v.SetDefault("empty_text", cfg.EmptyText)
	v.SetDefault("width", cfg.Width)
	v.SetDefault("line_height", cfg.LineHeight)
	v.SetDefault("background_color", cfg.BackgroundColor)
	v.SetDefault("active_background_color", cfg.ActiveBackgroundColor)
	v.SetDefault("hyprctl", cfg.Hyprctl)

	data, err := os.ReadFile(path)
	if err != nil {
		pslog.Ctx(ctx).Warn("couldn't load configuration file, using default values", "path", path, "err", err)
		data = nil
	}
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		stripped = []byte("{}")
	}
	if err := v.ReadConfig(bytes.NewReader(stripped)); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.SocketAddress = os.ExpandEnv(strings.TrimSpace(cfg.SocketAddress))
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
