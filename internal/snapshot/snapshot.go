// Package snapshot builds the ordered window list of the active workspace.
package snapshot

import (
	"context"

	"github.com/mj1618/groupie/internal/model"
	"github.com/mj1618/groupie/internal/platform"
	"pkt.systems/pslog"
)

// Fetch queries the active workspace and the client list, joins them on the
// workspace id and returns the workspace's windows sorted by group rank.
//
// The two queries are not atomic. A window that closes in between is simply
// missing from the result, and no window is active if the focused one was
// not returned.
func Fetch(ctx context.Context, q platform.Querier) ([]model.Window, error) {
	wsData, err := q.ActiveWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	ws, err := model.ParseWorkspace(wsData)
	if err != nil {
		return nil, err
	}

	clientsData, err := q.Clients(ctx)
	if err != nil {
		return nil, err
	}
	windows, err := model.ParseClients(ws, clientsData)
	if err != nil {
		return nil, err
	}

	model.SortByGroupRank(windows)
	pslog.Ctx(ctx).Debug("snapshot", "workspace", ws.ID, "windows", len(windows), "active", ws.ActiveWindow)
	return windows, nil
}
