// Package status runs one refresh: snapshot, then layout.
package status

import (
	"context"

	"github.com/mj1618/groupie/internal/config"
	"github.com/mj1618/groupie/internal/layout"
	"github.com/mj1618/groupie/internal/platform"
	"github.com/mj1618/groupie/internal/snapshot"
	"pkt.systems/pslog"
)

// ErrorPrefix starts the text of a line reporting a failure.
const ErrorPrefix = "ERROR: "

// Pipeline renders the status line for the active workspace.
type Pipeline struct {
	querier platform.Querier
	cfg     config.Config
}

// NewPipeline returns a pipeline querying q and formatting with cfg.
func NewPipeline(q platform.Querier, cfg config.Config) *Pipeline {
	return &Pipeline{querier: q, cfg: cfg}
}

// Refresh fetches the current windows and formats them. Any error aborts
// the whole refresh.
func (p *Pipeline) Refresh(ctx context.Context) (string, error) {
	windows, err := snapshot.Fetch(ctx, p.querier)
	if err != nil {
		return "", err
	}
	line := layout.FormatLine(windows, p.cfg)
	pslog.Ctx(ctx).Trace("formatted line", "windows", len(windows), "text", line)
	return line, nil
}

// Line is Refresh with failures rendered as an "ERROR: ..." line.
func (p *Pipeline) Line(ctx context.Context) string {
	line, err := p.Refresh(ctx)
	if err != nil {
		pslog.Ctx(ctx).Warn("refresh failed", "err", err)
		return ErrorLine(err.Error())
	}
	return line
}

// ErrorLine formats msg as a status line.
func ErrorLine(msg string) string {
	return ErrorPrefix + msg
}
