package adapter

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/kaldras/gcnput/internal/log"
	"github.com/kaldras/gcnput/report"
)

// ErrAlreadyStarted is returned by Start when the polling loop is
// already running.
var ErrAlreadyStarted = errors.New("adapter already started")

// Adapter is the top-level handle of the input subsystem. It owns the
// transport, the snapshot cell and the polling lifecycle; the host
// boundary gets this handle at initialization instead of reaching
// into package state.
type Adapter struct {
	transport Transport
	cell      *Cell
	logger    *slog.Logger
	raw       log.RawLogger

	interval    time.Duration
	readTimeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option adjusts an Adapter at construction.
type Option func(*Adapter)

// WithInterval overrides the polling interval.
func WithInterval(d time.Duration) Option {
	return func(a *Adapter) { a.interval = d }
}

// WithReadTimeout overrides the transport read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(a *Adapter) { a.readTimeout = d }
}

// WithRawLogger installs a raw report logger.
func WithRawLogger(raw log.RawLogger) Option {
	return func(a *Adapter) { a.raw = raw }
}

// New builds an Adapter on the given transport. The transport is
// owned by the Adapter from here on and closed by Close.
func New(t Transport, logger *slog.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		transport:   t,
		cell:        NewCell(),
		logger:      logger,
		raw:         log.NewRaw(nil),
		interval:    DefaultInterval,
		readTimeout: DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Open discovers the USB adapter and builds an Adapter on it.
func Open(logger *slog.Logger, opts ...Option) (*Adapter, error) {
	t, err := OpenUSB()
	if err != nil {
		return nil, err
	}
	return New(t, logger, opts...), nil
}

// Start launches the background polling loop. The loop stops when ctx
// is cancelled, Stop is called, or the transport fails fatally; after
// that, snapshot reads keep returning the last published state.
func (a *Adapter) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})

	p := &poller{
		transport:   a.transport,
		cell:        a.cell,
		logger:      a.logger,
		raw:         a.raw,
		interval:    a.interval,
		readTimeout: a.readTimeout,
	}

	done := a.done
	go func() {
		defer close(done)
		_ = p.run(ctx)
	}()

	return nil
}

// Stop cancels the polling loop and waits for it to exit. The current
// transport read is not interrupted; the loop stops re-issuing reads.
func (a *Adapter) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Close stops polling and releases the transport.
func (a *Adapter) Close() error {
	a.Stop()
	return a.transport.Close()
}

// Snapshot returns the most recent adapter state.
func (a *Adapter) Snapshot() report.AdapterState {
	return a.cell.Snapshot()
}

// Controller returns the most recent state of one channel.
func (a *Adapter) Controller(ch report.Channel) report.ControllerState {
	return a.cell.Controller(ch)
}

// AnyConnected reports whether any channel currently has a controller.
func (a *Adapter) AnyConnected() bool {
	return a.cell.Snapshot().AnyConnected()
}

// Rumble sets the rumble motor of each channel with a single command.
func (a *Adapter) Rumble(motors [4]bool) error {
	return a.transport.WriteCommand(RumbleCommand(motors), a.readTimeout)
}
