package adapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kaldras/gcnput/internal/log"
	"github.com/kaldras/gcnput/report"
)

const (
	// DefaultInterval between reads gives a polling rate of approx.
	// 1000 Hz. Best effort; timing is not a correctness invariant.
	DefaultInterval = time.Millisecond

	// DefaultReadTimeout bounds snapshot staleness when the adapter
	// hiccups. A timed-out cycle keeps the previous snapshot.
	DefaultReadTimeout = 16 * time.Millisecond
)

// poller runs the read/decode/publish loop. It is the only component
// issuing transport reads.
type poller struct {
	transport Transport
	cell      *Cell
	logger    *slog.Logger
	raw       log.RawLogger

	interval    time.Duration
	readTimeout time.Duration
}

// run loops until ctx is cancelled or the transport fails with
// something other than a timeout. On a fatal error the loop ends and
// the cell keeps serving the last published snapshot.
func (p *poller) run(ctx context.Context) error {
	p.logger.Info("adapter polling started",
		"interval", p.interval, "read_timeout", p.readTimeout)

	buf := make([]byte, report.Length)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		n, err := p.transport.Read(buf, p.readTimeout)
		switch {
		case err == nil:
			p.raw.Report("in", buf[:n])
			p.cell.Publish(report.Decode(buf[:n]))
		case errors.Is(err, ErrTimeout):
			// Benign. Keep the previous snapshot for this cycle.
		default:
			p.logger.Error("adapter read failed, polling stopped", "error", err)
			return err
		}

		select {
		case <-ctx.Done():
			p.logger.Info("adapter polling stopped")
			return nil
		case <-ticker.C:
		}
	}
}
