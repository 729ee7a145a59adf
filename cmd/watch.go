package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mj1618/groupie/internal/output"
	"github.com/mj1618/groupie/internal/status"
	"github.com/mj1618/groupie/internal/watch"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

// errNoSocket is returned when no event socket address can be determined.
var errNoSocket = errors.New("socket_address is not configured and XDG_RUNTIME_DIR or HYPRLAND_INSTANCE_SIGNATURE is unset")

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	emitter := output.NewEmitter(cmd.OutOrStdout())
	if cfg.SocketAddress == "" {
		emitter.Emit(status.ErrorLine(errNoSocket.Error()))
		return errNoSocket
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	pipeline := status.NewPipeline(provider.Querier, cfg)
	w := watch.New(provider.Events, pipeline, emitter)

	pslog.Ctx(ctx).Info("watching window groups", "socket", cfg.SocketAddress, "width", cfg.Width)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
