package main

import (
	"context"
	"log"
	"os"

	"github.com/mj1618/groupie/cmd"
	_ "github.com/mj1618/groupie/internal/platform/hyprland"

	"pkt.systems/psi"
	"pkt.systems/pslog"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	// stdout carries the status records; everything else goes to stderr.
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	return cmd.Execute(ctx)
}
