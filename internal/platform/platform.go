package platform

import (
	"context"
	"io"
)

// Querier runs window manager queries. Each call returns one JSON document.
type Querier interface {
	// ActiveWorkspace describes the focused workspace.
	ActiveWorkspace(ctx context.Context) ([]byte, error)

	// Clients lists every open window across all workspaces.
	Clients(ctx context.Context) ([]byte, error)
}

// EventDialer opens the window manager's event stream. Every line read from
// the returned stream is one event notification.
type EventDialer interface {
	DialEvents(ctx context.Context) (io.ReadCloser, error)
}
