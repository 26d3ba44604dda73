// Package cmd holds the gcnput CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaldras/gcnput/adapter"
	"github.com/kaldras/gcnput/internal/log"
	"github.com/kaldras/gcnput/report"

	"gopkg.in/yaml.v3"
)

// Watch polls the adapter and prints channel activity until
// interrupted or the duration elapses.
type Watch struct {
	Duration time.Duration `help:"Stop after this long (0: until interrupted)" default:"0"`
	Channel  int           `help:"Watch a single channel 0-3 (-1: all)" default:"-1"`
	Format   string        `help:"Output format: text, yaml" enum:"text,yaml" default:"text"`

	Deadzone    uint8 `help:"Main stick deadzone radius" default:"15"`
	Sensitivity uint8 `help:"Main stick sensitivity" default:"100"`
	CDeadzone   uint8 `help:"C-stick per-axis deadzone" default:"15" name:"c-deadzone"`
}

type channelView struct {
	Channel    int    `yaml:"channel"`
	Connection string `yaml:"connection"`
	Buttons    string `yaml:"buttons"`
	StickX     int8   `yaml:"stick_x"`
	StickY     int8   `yaml:"stick_y"`
	SubstickX  int8   `yaml:"substick_x"`
	SubstickY  int8   `yaml:"substick_y"`
	TriggerL   uint8  `yaml:"trigger_l"`
	TriggerR   uint8  `yaml:"trigger_r"`
}

func (w *Watch) Run(logger *slog.Logger, raw log.RawLogger) error {
	channels, err := w.channels()
	if err != nil {
		return err
	}

	a, err := adapter.Open(logger, adapter.WithRawLogger(raw))
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if w.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Duration)
		defer cancel()
	}

	if err := a.Start(ctx); err != nil {
		return err
	}
	defer a.Stop()

	logger.Info("watching adapter", "channels", len(channels))
	if !a.AnyConnected() {
		logger.Warn("no controllers connected yet, hotplugging is supported")
	}

	// The UI refresh is much slower than the 1 kHz poll; each tick
	// shows the freshest snapshot.
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snapshot := a.Snapshot()
			for _, ch := range channels {
				s := snapshot.Controller(ch)
				if !s.Connected() || !s.Any() {
					continue
				}
				if err := w.print(ch, s); err != nil {
					return err
				}
			}
		}
	}
}

func (w *Watch) channels() ([]report.Channel, error) {
	if w.Channel < 0 {
		return []report.Channel{
			report.ChannelOne, report.ChannelTwo,
			report.ChannelThree, report.ChannelFour,
		}, nil
	}
	ch, err := report.ResolveChannel(w.Channel)
	if err != nil {
		return nil, err
	}
	return []report.Channel{ch}, nil
}

func (w *Watch) print(ch report.Channel, s report.ControllerState) error {
	stickX, stickY := s.StickWithDeadzone(w.Deadzone, w.Sensitivity)
	substickX, substickY := s.SubstickWithDeadzone(w.CDeadzone)

	if w.Format == "yaml" {
		out, err := yaml.Marshal(channelView{
			Channel:    int(ch),
			Connection: s.Connection.String(),
			Buttons:    s.Buttons.String(),
			StickX:     stickX,
			StickY:     stickY,
			SubstickX:  substickX,
			SubstickY:  substickY,
			TriggerL:   s.TriggerLeft,
			TriggerR:   s.TriggerRight,
		})
		if err != nil {
			return err
		}
		fmt.Printf("---\n%s", out)
		return nil
	}

	fmt.Printf("%s [%s] buttons=%s stick=(%d,%d) c=(%d,%d) triggers=(%d,%d)\n",
		ch, s.Connection, s.Buttons,
		stickX, stickY, substickX, substickY,
		s.TriggerLeft, s.TriggerRight)
	return nil
}
