package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kaldras/gcnput/adapter"
	"github.com/kaldras/gcnput/internal/log"
	"github.com/kaldras/gcnput/report"
)

// Probe opens the adapter, reads briefly and reports what is plugged
// into each channel.
type Probe struct {
	Wait time.Duration `help:"How long to poll before reporting" default:"250ms"`
}

func (p *Probe) Run(logger *slog.Logger, raw log.RawLogger) error {
	a, err := adapter.Open(logger, adapter.WithRawLogger(raw))
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), p.Wait)
	defer cancel()
	if err := a.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	a.Stop()

	snapshot := a.Snapshot()
	for ch := report.ChannelOne; ch <= report.ChannelFour; ch++ {
		fmt.Printf("%s: %s\n", ch, snapshot.Controller(ch).Connection)
	}
	if !snapshot.AnyConnected() {
		logger.Warn("no controllers connected")
	}
	return nil
}
