// Package hyprland provides Hyprland support: window queries through the
// hyprctl command and events from the socket2 Unix socket.
package hyprland
