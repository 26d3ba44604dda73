package adapter

import (
	"sync/atomic"

	"github.com/kaldras/gcnput/report"
)

// Cell holds the most recently decoded adapter snapshot. One producer
// publishes whole snapshots; any number of readers take consistent
// copies without blocking the producer.
//
// Publish swaps a pointer to an immutable snapshot, so a reader can
// never observe a state mixing bytes from two reads. Readers get the
// latest published snapshot at the time of the call; intermediate
// publishes between two reads are lost by design.
type Cell struct {
	cur atomic.Pointer[report.AdapterState]
}

// NewCell returns a Cell primed with the all-disconnected zero state,
// so reads before the first publish are well defined.
func NewCell() *Cell {
	c := &Cell{}
	c.cur.Store(&report.AdapterState{})
	return c
}

// Publish replaces the current snapshot. Producer-only.
func (c *Cell) Publish(state report.AdapterState) {
	c.cur.Store(&state)
}

// Snapshot returns a copy of the current snapshot.
func (c *Cell) Snapshot() report.AdapterState {
	return *c.cur.Load()
}

// Controller returns the current state of one channel.
func (c *Cell) Controller(ch report.Channel) report.ControllerState {
	return c.cur.Load().Controller(ch)
}
