package cmd

import (
	"fmt"

	"github.com/mj1618/groupie/internal/config"
	"github.com/mj1618/groupie/internal/platform"
	"github.com/spf13/cobra"
)

// loadConfig reads the configuration named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Context(), path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newProvider returns the window manager backend configured by cfg.
func newProvider(cfg config.Config) (*platform.Provider, error) {
	return platform.NewProvider(platform.Options{
		Hyprctl:       cfg.Hyprctl,
		SocketAddress: cfg.SocketAddress,
	})
}
