package model

import (
	"math"
	"sort"
)

// Unranked is the group rank of a window that does not list itself in its
// own group membership. Unranked windows sort after every ranked one.
const Unranked = math.MaxInt

// Window is one window of the active workspace, rebuilt on every refresh.
type Window struct {
	Address   string `yaml:"address"   json:"address"`
	Title     string `yaml:"title"     json:"title"`
	AppName   string `yaml:"app"       json:"app"`
	Active    bool   `yaml:"active"    json:"active"`
	GroupRank int    `yaml:"rank"      json:"rank"`
}

// Ranked reports whether the window found itself in its group membership list.
func (w Window) Ranked() bool {
	return w.GroupRank != Unranked
}

// Workspace is the subset of the active workspace description used to join
// the client list.
type Workspace struct {
	ID           int64  `yaml:"id"            json:"id"`
	ActiveWindow string `yaml:"active_window" json:"active_window"`
}

// SortByGroupRank orders windows by group rank in place. Ties keep fetch order.
func SortByGroupRank(windows []Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].GroupRank < windows[j].GroupRank
	})
}
