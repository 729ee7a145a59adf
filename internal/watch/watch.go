// Package watch keeps a connection to the window manager's event stream
// and emits one status line per event.
package watch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mj1618/groupie/internal/platform"
	"github.com/mj1618/groupie/internal/status"
	"pkt.systems/pslog"
)

// DefaultRetryInterval is the fixed delay between connection attempts.
const DefaultRetryInterval = time.Second

// State is the connection state of a Watcher.
type State int

const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Refresher produces the current status line. Failures are part of the
// line, never returned.
type Refresher interface {
	Line(ctx context.Context) string
}

// Emitter receives each status line.
type Emitter interface {
	Emit(text string) error
}

// Watcher drives refreshes from the event stream.
type Watcher struct {
	dialer    platform.EventDialer
	refresher Refresher
	emitter   Emitter
	retry     time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithRetryInterval overrides DefaultRetryInterval.
func WithRetryInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.retry = d
	}
}

// New returns a Watcher that starts Disconnected.
func New(dialer platform.EventDialer, refresher Refresher, emitter Emitter, opts ...Option) *Watcher {
	w := &Watcher{
		dialer:    dialer,
		refresher: refresher,
		emitter:   emitter,
		retry:     DefaultRetryInterval,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run connects, refreshes once per connection and once per event line, and
// reconnects whenever the stream fails or ends. Connection attempts are
// retried without limit. Run only returns when ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	log := pslog.Ctx(ctx)
	state := Disconnected
	var stream io.ReadCloser

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch state {
		case Disconnected:
			s, err := w.dialer.DialEvents(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Warn("event socket connect failed", "err", err, "retry_in", w.retry)
				w.emit(ctx, status.ErrorLine(fmt.Sprintf("Couldn't connect to event socket: %v, retrying in %s", err, w.retry)))
				if err := w.sleep(ctx, w.retry); err != nil {
					return err
				}
				continue
			}
			stream = s
			state = w.transition(ctx, state, Connected)

		case Connected:
			w.emit(ctx, w.refresher.Line(ctx))
			err := w.consume(ctx, stream)
			stream.Close()
			stream = nil
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				log.Warn("event stream failed", "err", err)
			} else {
				log.Info("event stream closed")
			}
			state = w.transition(ctx, state, Disconnected)
		}
	}
}

// consume refreshes once per complete line until the stream ends. A
// trailing line without a newline is not an event. EOF returns nil.
func (w *Watcher) consume(ctx context.Context, stream io.ReadCloser) error {
	stop := context.AfterFunc(ctx, func() {
		stream.Close()
	})
	defer stop()

	log := pslog.Ctx(ctx)
	r := bufio.NewReader(stream)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		log.Trace("event", "line", strings.TrimSuffix(line, "\n"))
		w.emit(ctx, w.refresher.Line(ctx))
	}
}

func (w *Watcher) transition(ctx context.Context, from, to State) State {
	pslog.Ctx(ctx).Info("event socket", "from", from.String(), "to", to.String())
	return to
}

func (w *Watcher) emit(ctx context.Context, text string) {
	if err := w.emitter.Emit(text); err != nil {
		pslog.Ctx(ctx).Error("write status line", "err", err)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
