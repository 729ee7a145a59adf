package model

import (
	"github.com/buger/jsonparser"
)

// ParseWorkspace extracts the workspace id and the focused window address
// from an active workspace description.
func ParseWorkspace(data []byte) (Workspace, error) {
	id, err := jsonparser.GetInt(data, "id")
	if err != nil {
		return Workspace{}, DataFetchError("Cannot get id from workspace data")
	}
	active, err := jsonparser.GetString(data, "lastwindow")
	if err != nil {
		return Workspace{}, DataFetchError("Cannot get active window address from workspace data")
	}
	return Workspace{ID: id, ActiveWindow: active}, nil
}

// ParseClients builds the windows of ws from a client list document, in
// the order the document lists them. Clients on other workspaces, or
// without an integer workspace id, are skipped. A single malformed client
// on ws fails the whole batch.
func ParseClients(ws Workspace, data []byte) ([]Window, error) {
	if _, typ, _, err := jsonparser.Get(data); err != nil || typ != jsonparser.Array {
		return nil, DataFetchError("Cannot read client list as an array")
	}

	windows := []Window{}
	var parseErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if parseErr != nil || dataType != jsonparser.Object {
			return
		}
		id, err := jsonparser.GetInt(value, "workspace", "id")
		if err != nil || id != ws.ID {
			return
		}
		w, err := parseWindow(value, ws.ActiveWindow)
		if err != nil {
			parseErr = err
			return
		}
		windows = append(windows, w)
	})
	if err != nil {
		return nil, DataFetchError("Cannot read client list as an array")
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return windows, nil
}

func parseWindow(data []byte, activeAddress string) (Window, error) {
	address, err := jsonparser.GetString(data, "address")
	if err != nil {
		return Window{}, WindowDataError("Non-string window address")
	}
	title, err := jsonparser.GetString(data, "title")
	if err != nil {
		return Window{}, WindowDataError("Non-string window title")
	}
	appName, err := jsonparser.GetString(data, "initialTitle")
	if err != nil {
		return Window{}, WindowDataError("Non-string window initialTitle")
	}
	members, err := parseGroup(data)
	if err != nil {
		return Window{}, err
	}

	rank := Unranked
	for i, member := range members {
		if member == address {
			rank = i
			break
		}
	}

	return Window{
		Address:   address,
		Title:     title,
		AppName:   appName,
		Active:    address == activeAddress,
		GroupRank: rank,
	}, nil
}

// parseGroup returns the addresses listed in the window's "grouped" array.
func parseGroup(data []byte) ([]string, error) {
	if _, typ, _, err := jsonparser.Get(data, "grouped"); err != nil || typ != jsonparser.Array {
		return nil, WindowDataError("Non-array window group ids")
	}
	var members []string
	valid := true
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if !valid {
			return
		}
		if dataType != jsonparser.String {
			valid = false
			return
		}
		s, err := jsonparser.ParseString(value)
		if err != nil {
			valid = false
			return
		}
		members = append(members, s)
	}, "grouped")
	if err != nil || !valid {
		return nil, WindowDataError("Non-string window group id")
	}
	return members, nil
}
