// Package adapter owns the USB transport to the GameCube controller
// adapter, the background polling loop, and the shared snapshot cell
// the host boundary reads from.
package adapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/kaldras/gcnput/report"
	"github.com/karalabe/hid"
)

// USB identity of the Wii U / Switch GameCube controller adapter.
const (
	VendorID  = 0x057E
	ProductID = 0x0337
)

var (
	// ErrTimeout is returned by Transport.Read when no report arrived
	// within the timeout. Benign; the poller retains the previous
	// snapshot for the cycle.
	ErrTimeout = errors.New("adapter read timed out")

	// ErrNoAdapter is returned by OpenUSB when no adapter is present.
	// Discovery is not retried; the host treats "no controllers" as
	// the steady state from then on.
	ErrNoAdapter = errors.New("no GameCube adapter found")
)

// startPayload switches the adapter into input-report streaming mode.
var startPayload = []byte{0x13}

// rumbleCommand precedes the four per-channel motor bytes.
const rumbleCommand = 0x11

// Transport moves raw report bytes to and from the adapter hardware.
// Exactly one goroutine (the polling loop) may call Read.
type Transport interface {
	// Read fills p with one input report and returns the number of
	// bytes read, or ErrTimeout if none arrived in time. Any other
	// error means the hardware path is gone.
	Read(p []byte, timeout time.Duration) (int, error)

	// WriteCommand sends one command to the adapter.
	WriteCommand(cmd []byte, timeout time.Duration) error

	Close() error
}

type readResult struct {
	n   int
	err error
}

// usbTransport is the production Transport on top of the HID layer.
//
// hidapi reads block until an interrupt transfer completes, so the
// timeout is applied around a pending read: a read that outlives its
// timeout keeps running and its report is consumed by the next call.
type usbTransport struct {
	dev     *hid.Device
	buf     []byte
	results chan readResult
	pending bool
}

// OpenUSB finds the first attached adapter, switches it into report
// streaming mode and returns a Transport for it.
func OpenUSB() (Transport, error) {
	if !hid.Supported() {
		return nil, errors.New("HID is not supported on this platform")
	}

	infos := hid.Enumerate(VendorID, ProductID)
	if len(infos) == 0 {
		return nil, ErrNoAdapter
	}

	dev, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open adapter: %w", err)
	}

	if _, err := dev.Write(startPayload); err != nil {
		dev.Close()
		return nil, fmt.Errorf("start adapter streaming: %w", err)
	}

	return &usbTransport{
		dev:     dev,
		buf:     make([]byte, report.Length),
		results: make(chan readResult, 1),
	}, nil
}

func (t *usbTransport) Read(p []byte, timeout time.Duration) (int, error) {
	if !t.pending {
		t.pending = true
		go func() {
			n, err := t.dev.Read(t.buf)
			t.results <- readResult{n: n, err: err}
		}()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-t.results:
		t.pending = false
		if r.err != nil {
			return 0, fmt.Errorf("adapter read: %w", r.err)
		}
		return copy(p, t.buf[:r.n]), nil
	case <-timer.C:
		return 0, ErrTimeout
	}
}

func (t *usbTransport) WriteCommand(cmd []byte, _ time.Duration) error {
	// Interrupt OUT transfers on the adapter complete within one
	// frame; hidapi offers no write timeout and none is needed.
	if _, err := t.dev.Write(cmd); err != nil {
		return fmt.Errorf("adapter write: %w", err)
	}
	return nil
}

func (t *usbTransport) Close() error {
	return t.dev.Close()
}

// RumbleCommand builds the wire command setting the rumble motor of
// each channel.
func RumbleCommand(motors [4]bool) []byte {
	cmd := make([]byte, 5)
	cmd[0] = rumbleCommand
	for i, on := range motors {
		if on {
			cmd[i+1] = 1
		}
	}
	return cmd
}
