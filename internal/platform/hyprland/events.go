package hyprland

import (
	"context"
	"io"
	"net"
)

// EventSocket implements platform.EventDialer over Hyprland's socket2.
type EventSocket struct {
	address string
	dialer  net.Dialer
}

// NewEventSocket returns a dialer for the Unix socket at address.
func NewEventSocket(address string) *EventSocket {
	return &EventSocket{address: address}
}

// Address returns the socket path this dialer connects to.
func (s *EventSocket) Address() string {
	return s.address
}

func (s *EventSocket) DialEvents(ctx context.Context) (io.ReadCloser, error) {
	return s.dialer.DialContext(ctx, "unix", s.address)
}
