package adapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/kaldras/gcnput/internal/log"
	"github.com/kaldras/gcnput/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTransport pops one scripted result per Read; once the
// script is exhausted every further read times out.
type scriptedTransport struct {
	mu     sync.Mutex
	script []scriptStep
	writes [][]byte
	closed bool
}

type scriptStep struct {
	data []byte
	err  error
}

func (f *scriptedTransport) Read(p []byte, _ time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.script) == 0 {
		return 0, ErrTimeout
	}
	step := f.script[0]
	f.script = f.script[1:]
	if step.err != nil {
		return 0, step.err
	}
	return copy(p, step.data), nil
}

func (f *scriptedTransport) WriteCommand(cmd []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, append([]byte(nil), cmd...))
	return nil
}

func (f *scriptedTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPoller(t Transport, cell *Cell) *poller {
	return &poller{
		transport:   t,
		cell:        cell,
		logger:      quietLogger(),
		raw:         log.NewRaw(nil),
		interval:    100 * time.Microsecond,
		readTimeout: time.Millisecond,
	}
}

// reportWithStickX builds a full-length report with channel 1 wired
// and its stick X byte set.
func reportWithStickX(x uint8) []byte {
	raw := make([]byte, report.Length)
	raw[1] = 0x10
	raw[4] = x
	return raw
}

func TestPollerPublishesDecodedReports(t *testing.T) {
	ft := &scriptedTransport{script: []scriptStep{
		{data: reportWithStickX(40)},
		{data: reportWithStickX(200)},
	}}
	cell := NewCell()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestPoller(ft, cell).run(ctx) }()

	require.Eventually(t, func() bool {
		return cell.Controller(report.ChannelOne).StickX == 200
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	// Timeouts after the script kept the last snapshot intact.
	c := cell.Controller(report.ChannelOne)
	assert.Equal(t, report.ConnectionWired, c.Connection)
	assert.Equal(t, uint8(200), c.StickX)
}

func TestPollerTimeoutRetainsSnapshot(t *testing.T) {
	ft := &scriptedTransport{script: []scriptStep{
		{data: reportWithStickX(99)},
		// Script exhausted: every following read times out.
	}}
	cell := NewCell()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestPoller(ft, cell).run(ctx) }()

	require.Eventually(t, func() bool {
		return cell.Controller(report.ChannelOne).StickX == 99
	}, time.Second, time.Millisecond)

	// Give the loop time to churn through timeout cycles.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, uint8(99), cell.Controller(report.ChannelOne).StickX)

	cancel()
	require.NoError(t, <-done)
}

func TestPollerFatalErrorStopsLoop(t *testing.T) {
	readErr := errors.New("device unplugged")
	ft := &scriptedTransport{script: []scriptStep{
		{data: reportWithStickX(7)},
		{err: readErr},
	}}
	cell := NewCell()

	done := make(chan error, 1)
	go func() { done <- newTestPoller(ft, cell).run(context.Background()) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, readErr)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on fatal transport error")
	}

	// The last good snapshot stays frozen.
	assert.Equal(t, uint8(7), cell.Controller(report.ChannelOne).StickX)
}

func TestPollerStopsPromptlyOnCancel(t *testing.T) {
	cell := NewCell()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- newTestPoller(&scriptedTransport{}, cell).run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancellation")
	}
}
