package midi

import (
	"sync/atomic"
	"time"

	"github.com/leandrodaf/lilymidi/sdk/contracts"
)

// Capture forwards messages from a platform callback to the channel
// registered with Start. Sends never block: a full channel drops the message.
type Capture struct {
	Gate

	logger       contracts.Logger
	filter       *contracts.MIDIEventFilter
	eventChannel atomic.Value // chan contracts.MIDI
	dropped      atomic.Uint64
}

// NewCapture creates an idle capture.
func NewCapture(logger contracts.Logger, filter *contracts.MIDIEventFilter) *Capture {
	c := &Capture{logger: logger, filter: filter}
	c.eventChannel.Store((chan contracts.MIDI)(nil))
	return c
}

// Start registers the destination channel.
func (c *Capture) Start(eventChannel chan contracts.MIDI) {
	c.eventChannel.Store(eventChannel)
}

// Stop unregisters the destination; later messages are discarded.
func (c *Capture) Stop() {
	c.eventChannel.Store((chan contracts.MIDI)(nil))
}

// Active reports whether a destination is registered.
func (c *Capture) Active() bool {
	return c.eventChannel.Load().(chan contracts.MIDI) != nil
}

// Dropped returns how many messages were lost to a full channel.
func (c *Capture) Dropped() uint64 {
	return c.dropped.Load()
}

// Deliver handles one raw message.
func (c *Capture) Deliver(status, data1, data2 byte) {
	if !c.Admit() {
		return
	}
	eventChannel := c.eventChannel.Load().(chan contracts.MIDI)
	if eventChannel == nil {
		return
	}
	if !Allowed(c.filter, status) {
		c.logger.Debug("MIDI command filtered out", c.logger.Field().Uint8("status", status))
		return
	}

	event := contracts.MIDI{
		Timestamp: uint64(time.Now().UTC().UnixNano()),
		Command:   status,
		Note:      data1,
		Velocity:  data2,
	}
	select {
	case eventChannel <- event:
	default:
		c.dropped.Add(1)
		c.logger.Warn("Event buffer full; dropping MIDI event", c.logger.Field().Uint8("status", status))
	}
}
