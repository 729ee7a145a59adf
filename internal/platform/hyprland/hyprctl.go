package hyprland

import (
	"context"
	"encoding/json"
	"os/exec"
	"unicode/utf8"

	"github.com/mj1618/groupie/internal/model"
	"pkt.systems/pslog"
)

// DefaultHyprctl is the query binary used when none is configured.
const DefaultHyprctl = "hyprctl"

// Hyprctl implements platform.Querier by running hyprctl in JSON mode.
type Hyprctl struct {
	binary string
}

// NewHyprctl returns a querier running binary. An empty binary means DefaultHyprctl.
func NewHyprctl(binary string) *Hyprctl {
	if binary == "" {
		binary = DefaultHyprctl
	}
	return &Hyprctl{binary: binary}
}

func (h *Hyprctl) ActiveWorkspace(ctx context.Context) ([]byte, error) {
	return h.run(ctx, "activeworkspace", "-j")
}

func (h *Hyprctl) Clients(ctx context.Context) ([]byte, error) {
	return h.run(ctx, "clients", "-j")
}

// run executes one query. Failures are logged with their cause and
// returned as a query error with a static message.
func (h *Hyprctl) run(ctx context.Context, args ...string) ([]byte, error) {
	log := pslog.Ctx(ctx).With("command", h.binary, "args", args)

	out, err := exec.CommandContext(ctx, h.binary, args...).Output()
	if err != nil {
		log.Error("unable to run query command", "err", err)
		return nil, model.QueryError("Unable to run command, check logs for more information")
	}
	if !utf8.Valid(out) {
		log.Error("query output is not valid UTF-8", "bytes", len(out))
		return nil, model.QueryError("Unable to convert command output to text, check logs for more information")
	}
	if !json.Valid(out) {
		log.Error("query output is not JSON", "output", string(out))
		return nil, model.QueryError("Unable to parse command output as JSON, check logs for more information")
	}
	log.Trace("query ok", "bytes", len(out))
	return out, nil
}
