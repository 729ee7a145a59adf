package hyprland

import "github.com/mj1618/groupie/internal/platform"

func init() {
	platform.NewProviderFunc = func(opts platform.Options) (*platform.Provider, error) {
		return &platform.Provider{
			Querier: NewHyprctl(opts.Hyprctl),
			Events:  NewEventSocket(opts.SocketAddress),
		}, nil
	}
}
