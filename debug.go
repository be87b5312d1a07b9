package ballpit

import (
	"fmt"
	"io"
	"os"
	"time"
)

// TickStats holds per-tick counters. Stage timings are only populated when
// debug mode is on.
type TickStats struct {
	Tick       int
	Collisions int
	Pushes     int

	integrateTime time.Duration
	detectTime    time.Duration
	resolveTime   time.Duration
}

// debugOut is where debug stats are written.
var debugOut io.Writer = os.Stderr

// debugLog prints timing and collision stats.
func (s *Simulation) debugLog(stats TickStats) {
	if !s.debug {
		return
	}
	total := stats.integrateTime + stats.detectTime + stats.resolveTime
	_, _ = fmt.Fprintf(debugOut,
		"[ballpit] tick %d | integrate: %v | detect: %v | resolve: %v | total: %v\n",
		stats.Tick, stats.integrateTime, stats.detectTime, stats.resolveTime, total)
	_, _ = fmt.Fprintf(debugOut,
		"[ballpit] balls: %d | collisions: %d | pushes: %d\n",
		s.reg.Len(), stats.Collisions, stats.Pushes)
}
