package status

import (
	"context"
	"strings"
	"testing"

	"github.com/mj1618/groupie/internal/config"
)

type stubQuerier struct {
	workspace, clients string
}

func (s stubQuerier) ActiveWorkspace(context.Context) ([]byte, error) {
	return []byte(s.workspace), nil
}

func (s stubQuerier) Clients(context.Context) ([]byte, error) {
	return []byte(s.clients), nil
}

func testConfig() config.Config {
	return config.Config{
		Separator:             " | ",
		EmptyText:             "empty",
		Width:                 30,
		LineHeight:            1.0,
		BackgroundColor:       "#000",
		ActiveBackgroundColor: "#fff",
	}
}

func TestLine_Success(t *testing.T) {
	p := NewPipeline(stubQuerier{
		workspace: `{"id": 1, "lastwindow": "0x1"}`,
		clients:   `[{"address": "0x1", "title": "~", "initialTitle": "foot", "workspace": {"id": 1}, "grouped": ["0x1"]}]`,
	}, testConfig())
	got := p.Line(context.Background())
	if !strings.Contains(got, "<b>") || !strings.Contains(got, "foot: ~") {
		t.Errorf("unexpected line: %q", got)
	}
}

func TestLine_EmptyWorkspace(t *testing.T) {
	p := NewPipeline(stubQuerier{
		workspace: `{"id": 2, "lastwindow": "0x0"}`,
		clients:   `[{"address": "0x1", "title": "~", "initialTitle": "foot", "workspace": {"id": 1}, "grouped": []}]`,
	}, testConfig())
	if got := p.Line(context.Background()); got != "empty" {
		t.Errorf("got %q, want empty text", got)
	}
}

func TestLine_ErrorBecomesText(t *testing.T) {
	p := NewPipeline(stubQuerier{
		workspace: `{"id": 1, "lastwindow": "0x1"}`,
		clients:   `{"not": "a list"}`,
	}, testConfig())
	got := p.Line(context.Background())
	want := "ERROR: Data fetching error: Cannot read client list as an array"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := p.Refresh(context.Background()); err == nil {
		t.Error("Refresh should return the error")
	}
}
