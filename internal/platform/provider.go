package platform

import (
	"errors"
)

// Provider bundles the window manager backends.
type Provider struct {
	Querier Querier
	Events  EventDialer
}

// ErrUnsupported is returned when no window manager backend is registered.
var ErrUnsupported = errors.New("no window manager backend registered; supported: hyprland")

// NewProviderFunc is set by backend packages via init().
// See internal/platform/hyprland/init.go for the Hyprland registration.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns a Provider for the registered backend.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}
