package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/pslog"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func setSession(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	setSession(t)
	var buf bytes.Buffer
	logger := pslog.NewWithOptions(&buf, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.InfoLevel,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)

	cfg, err := Load(ctx, filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not be fatal: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
	if !strings.Contains(buf.String(), "couldn't load configuration file") {
		t.Errorf("expected warning in log, got %q", buf.String())
	}
}

func TestDefaults(t *testing.T) {
	setSession(t)
	cfg := Default()
	if cfg.Separator != " || " {
		t.Errorf("separator: got %q", cfg.Separator)
	}
	if cfg.Width != 100 {
		t.Errorf("width: got %d", cfg.Width)
	}
	if cfg.LineHeight != 1.0 {
		t.Errorf("line_height: got %v", cfg.LineHeight)
	}
	if cfg.EmptyText != "" {
		t.Errorf("empty_text: got %q", cfg.EmptyText)
	}
	if cfg.SocketAddress != "/run/user/1000/hypr/abc123/.socket2.sock" {
		t.Errorf("socket_address: got %q", cfg.SocketAddress)
	}
}

func TestDefaultSocketAddress_MissingEnv(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	if got := DefaultSocketAddress(); got != "" {
		t.Errorf("expected empty address, got %q", got)
	}
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	setSession(t)
	path := writeConfig(t, `{
		// bar settings
		"separator": " | ",
		"width": 80,
		"line_height": 1.4,
		"active_background_color": "#ff0000",
	}`)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Separator != " | " || cfg.Width != 80 || cfg.LineHeight != 1.4 || cfg.ActiveBackgroundColor != "#ff0000" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BackgroundColor != Default().BackgroundColor || cfg.Hyprctl != "hyprctl" {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	setSession(t)
	t.Setenv("GROUPIE_WIDTH", "42")
	path := writeConfig(t, `{"width": 80}`)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 42 {
		t.Errorf("width: got %d, want 42", cfg.Width)
	}
}

func TestLoadExpandsSocketAddress(t *testing.T) {
	setSession(t)
	path := writeConfig(t, `{"socket_address": "$XDG_RUNTIME_DIR/custom.sock"}`)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SocketAddress != "/run/user/1000/custom.sock" {
		t.Errorf("socket_address: got %q", cfg.SocketAddress)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	setSession(t)
	cfg, err := Load(context.Background(), writeConfig(t, "  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	setSession(t)
	tests := []struct {
		name     string
		contents string
		want     string
	}{
		{"malformed json", `{"width": `, "parse config"},
		{"wrong type", `{"width": "wide"}`, "decode config"},
		{"too narrow", `{"width": 2}`, "width must be at least 3"},
		{"zero line height", `{"line_height": 0}`, "line_height must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), writeConfig(t, tt.contents))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/groupie.json")
	if p, _ := DefaultConfigPath(); p != "/etc/groupie.json" {
		t.Errorf("env override: got %q", p)
	}
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.cfg")
	if p, _ := DefaultConfigPath(); p != "/home/u/.cfg/groupie/config.json" {
		t.Errorf("xdg: got %q", p)
	}
}
