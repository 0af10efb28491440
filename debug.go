package rowan

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug stats go. Swapped in tests.
var debugOut io.Writer = os.Stderr

// debugStats holds per-frame timing metrics for the update phase.
// Only populated when the engine's debug mode is on.
type debugStats struct {
	captureTime   time.Duration
	reconcileTime time.Duration
	dispatchTime  time.Duration
	sceneTime     time.Duration
}

// debugLog prints per-frame timings to stderr.
func (e *Engine) debugLog(dt float64, stats debugStats) {
	if !e.debug {
		return
	}
	total := stats.captureTime + stats.reconcileTime + stats.dispatchTime + stats.sceneTime
	_, _ = fmt.Fprintf(debugOut,
		"[rowan] capture: %v | reconcile: %v | subscribers: %v | scene: %v | total: %v\n",
		stats.captureTime, stats.reconcileTime, stats.dispatchTime, stats.sceneTime, total)
	_, _ = fmt.Fprintf(debugOut,
		"[rowan] dt: %.4fs | fps: %d | update subs: %d\n",
		dt, e.sched.FPS(), len(e.sched.update))
}

// debugMaxSubscribers warns when the per-frame subscriber list grows past the
// threshold. Leaked Player or FPSMeter handles show up here first.
const debugMaxSubscribers = 1000

func (e *Engine) debugCheckSubscribers() {
	if !e.debug {
		return
	}
	n := len(e.sched.update) + len(e.sched.preRender) + len(e.sched.postRender)
	if n > debugMaxSubscribers {
		_, _ = fmt.Fprintf(debugOut, "[rowan] warning: %d frame subscribers (threshold %d)\n",
			n, debugMaxSubscribers)
	}
}
