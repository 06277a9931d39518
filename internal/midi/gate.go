package midi

import (
	"sync/atomic"
	"time"
)

// Gate drops incoming messages while a port is being drained.
type Gate struct {
	last     atomic.Int64
	draining atomic.Bool
}

// Admit records message arrival and reports whether the message should be
// forwarded.
func (g *Gate) Admit() bool {
	g.last.Store(time.Now().UnixNano())
	return !g.draining.Load()
}

// Drain discards messages until quiet has passed without any arriving.
func (g *Gate) Drain(quiet time.Duration) {
	g.draining.Store(true)
	defer g.draining.Store(false)

	g.last.Store(time.Now().UnixNano())
	for {
		time.Sleep(quiet)
		if time.Since(time.Unix(0, g.last.Load())) >= quiet {
			return
		}
	}
}
