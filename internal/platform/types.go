package platform

// Options configures backend construction.
type Options struct {
	Hyprctl       string // Query binary, resolved through PATH
	SocketAddress string // Event socket address; may be empty for query-only use
}
