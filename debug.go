package tempo

import (
	"fmt"
	"os"
	"time"
)

// stepStats holds per-step timing and list metrics.
// Only populated when the runner is in debug mode.
type stepStats struct {
	stepTime time.Duration
	advanced int
	reaped   int
	active   int
}

// debugLog prints step stats to stderr.
func (r *Runner) debugLog(stats stepStats) {
	if !r.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tempo] step: %v | advanced: %d | reaped: %d | active: %d\n",
		stats.stepTime, stats.advanced, stats.reaped, stats.active)
}

// debugCheckDisposed panics with a descriptive message when an action is
// attached to a runner whose target has been disposed. Only called in debug
// mode; in release mode the next Step silently drops the action.
func debugCheckDisposed(r *Runner, op string) {
	if d, ok := r.target.(disposable); ok && d.IsDisposed() {
		name := "target"
		if n, ok := r.target.(*Node); ok {
			name = fmt.Sprintf("node %q", n.Name)
		}
		panic(fmt.Sprintf("tempo debug: %s on disposed %s", op, name))
	}
}

// debugMaxActive is the active-list size above which a warning is printed.
const debugMaxActive = 1000

func debugCheckActiveCount(r *Runner) {
	if len(r.handles) > debugMaxActive {
		_, _ = fmt.Fprintf(os.Stderr, "[tempo] warning: runner has %d active actions (threshold %d)\n",
			len(r.handles), debugMaxActive)
	}
}

// debugReentrantStep panics when Step is called from inside an action of the
// runner being stepped.
func debugReentrantStep(r *Runner) {
	name := "runner"
	if n, ok := r.target.(*Node); ok {
		name = fmt.Sprintf("runner of node %q", n.Name)
	}
	panic(fmt.Sprintf("tempo debug: Step called during Step on %s", name))
}
