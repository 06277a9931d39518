package midi

import (
	"testing"

	"github.com/leandrodaf/lilymidi/internal/logger"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_Deliver(t *testing.T) {
	filter := contracts.NotationFilter()
	c := NewCapture(logger.NewNop(), &filter)
	ch := make(chan contracts.MIDI, 4)

	c.Deliver(0x90, 60, 100)
	assert.Empty(t, ch, "nothing is forwarded before Start")
	assert.False(t, c.Active())

	c.Start(ch)
	assert.True(t, c.Active())
	c.Deliver(0x91, 60, 100)
	c.Deliver(0xE0, 0, 64)
	c.Deliver(0xB0, 64, 127)

	require.Len(t, ch, 2)
	first := <-ch
	assert.Equal(t, byte(0x91), first.Command)
	assert.Equal(t, byte(60), first.Note)
	assert.Equal(t, byte(100), first.Velocity)
	assert.NotZero(t, first.Timestamp)
	assert.Equal(t, byte(0xB0), (<-ch).Command)

	c.Stop()
	c.Deliver(0x90, 61, 1)
	assert.Empty(t, ch)
}

func TestCapture_FullChannelDrops(t *testing.T) {
	c := NewCapture(logger.NewNop(), nil)
	ch := make(chan contracts.MIDI, 1)
	c.Start(ch)

	c.Deliver(0x90, 60, 1)
	c.Deliver(0x90, 61, 1)
	c.Deliver(0x90, 62, 1)

	assert.Len(t, ch, 1)
	assert.EqualValues(t, 2, c.Dropped())
}

func TestCapture_DrainingDiscards(t *testing.T) {
	c := NewCapture(logger.NewNop(), nil)
	ch := make(chan contracts.MIDI, 1)
	c.Start(ch)

	c.draining.Store(true)
	c.Deliver(0x90, 60, 1)
	assert.Empty(t, ch)

	c.draining.Store(false)
	c.Deliver(0x90, 60, 1)
	assert.Len(t, ch, 1)
}
