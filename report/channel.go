package report

import "fmt"

// Channel identifies one of the four controller slots on the adapter.
type Channel uint8

const (
	ChannelOne Channel = iota
	ChannelTwo
	ChannelThree
	ChannelFour
)

func (c Channel) String() string {
	return fmt.Sprintf("channel %d", c+1)
}

// ChannelError reports a channel index outside 0..3.
type ChannelError struct {
	Value int
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel index %d out of range 0..3", e.Value)
}

// ResolveChannel converts an integer index into a Channel. Indices
// outside 0..3 fail with a *ChannelError; callers at external
// boundaries must use this strict form.
func ResolveChannel(v int) (Channel, error) {
	if v < 0 || v > 3 {
		return ChannelOne, &ChannelError{Value: v}
	}
	return Channel(v), nil
}

// SaturatingChannel converts an integer index into a Channel by
// clamping out-of-range values to the nearest channel. Only intended
// for legacy host call sites that rely on lenient conversion; new
// code should use ResolveChannel.
func SaturatingChannel(v int) Channel {
	switch {
	case v <= 0:
		return ChannelOne
	case v >= 3:
		return ChannelFour
	default:
		return Channel(v)
	}
}
