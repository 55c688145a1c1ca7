package tempo

import (
	"errors"
	"log"
	"time"
)

// ErrorPolicy decides what a step pass does when an action returns an error.
type ErrorPolicy uint8

const (
	// FailFast stops the advance pass at the first error and returns it.
	// Instances already advanced this frame are still reaped; the rest are
	// left untouched until the next Step.
	FailFast ErrorPolicy = iota
	// Isolate logs each error, keeps advancing the remaining instances and
	// returns all errors joined after the pass.
	Isolate
)

// RunnerConfig holds optional Runner settings. The zero value is FailFast
// with no hooks.
type RunnerConfig struct {
	ErrorPolicy ErrorPolicy
	// OnReap is called for every instance removed because it finished.
	// Detached instances never reach it.
	OnReap func(h *Handle)
	// Debug prints per-step stats to stderr.
	Debug bool
}

// Handle identifies one attached action instance.
type Handle struct {
	action    Action
	runner    *Runner
	reaped    bool
	cancelled bool
}

// Action returns the live instance.
func (h *Handle) Action() Action { return h.action }

// Done reports whether the instance has finished.
func (h *Handle) Done() bool { return h.action.Done() }

// Active reports whether the instance is still on its runner's list.
func (h *Handle) Active() bool { return !h.reaped && !h.cancelled }

// disposable is implemented by targets that can be torn down under a runner,
// such as *Node.
type disposable interface {
	IsDisposed() bool
}

// Runner owns the ordered list of active actions of one target. Attach order
// is preserved and is the order actions are advanced in.
//
// Runner is not safe for concurrent use; call it from the update loop.
type Runner struct {
	target  Animatable
	handles []*Handle
	cfg     RunnerConfig

	// Per-pass buffers, reused across frames.
	snapshot []*Handle
	reap     []*Handle

	removed  bool // set by Director.Remove
	stepping bool
}

// NewRunner creates a runner for target with the default configuration.
func NewRunner(target Animatable) *Runner {
	return NewRunnerWithConfig(target, RunnerConfig{})
}

// NewRunnerWithConfig creates a runner for target.
func NewRunnerWithConfig(target Animatable, cfg RunnerConfig) *Runner {
	return &Runner{target: target, cfg: cfg}
}

// Target returns the animatable object the runner drives.
func (r *Runner) Target() Animatable {
	return r.target
}

// SetDebugMode toggles per-step stats on stderr.
func (r *Runner) SetDebugMode(enabled bool) {
	r.cfg.Debug = enabled
}

// Do clones t, binds the clone to this runner, starts it and appends it to
// the active list. When called during Step the new instance is not advanced
// until the next frame. If starting fails the instance is not attached.
func (r *Runner) Do(t Template) (*Handle, error) {
	if t == nil {
		return nil, configError("do: nil template")
	}
	if r.cfg.Debug {
		debugCheckDisposed(r, "Do")
	}
	h := &Handle{action: t.NewAction(), runner: r}
	if err := h.action.Start(r); err != nil {
		return nil, err
	}
	r.handles = append(r.handles, h)
	if r.cfg.Debug {
		debugCheckActiveCount(r)
	}
	return h, nil
}

// Detach cancels h. Combinators holding h get no completion callbacks and
// OnReap is not called. Detaching a handle that was reaped, already
// detached, or belongs to another runner returns ErrNotFound.
func (r *Runner) Detach(h *Handle) error {
	if h == nil || h.runner != r || !h.Active() {
		return ErrNotFound
	}
	h.cancelled = true
	r.compact()
	return nil
}

// Clear detaches every active instance.
func (r *Runner) Clear() {
	for _, h := range r.handles {
		h.cancelled = true
	}
	clear(r.handles)
	r.handles = r.handles[:0]
}

// Handles returns the active instances in attach order. The slice is owned
// by the runner and only valid until the next Do, Detach or Step.
func (r *Runner) Handles() []*Handle {
	return r.handles
}

// Len returns the number of active instances.
func (r *Runner) Len() int {
	return len(r.handles)
}

// Step advances every instance that was active when the call began, then
// removes the ones that are done. Instances attached during the pass are
// appended but not advanced; detached ones are skipped.
//
// Step must not be called from inside an action of the same runner; such a
// call returns ErrConfiguration without advancing anything.
func (r *Runner) Step(dt float64) error {
	if r.stepping {
		if r.cfg.Debug {
			debugReentrantStep(r)
		}
		return configError("step: runner is already stepping")
	}
	r.stepping = true
	defer func() { r.stepping = false }()

	if d, ok := r.target.(disposable); ok && d.IsDisposed() {
		r.Clear()
		return nil
	}

	var t0 time.Time
	if r.cfg.Debug {
		t0 = time.Now()
	}

	r.snapshot = append(r.snapshot[:0], r.handles...)
	advanced := r.snapshot
	var failed error
	var errs []error

	for i, h := range r.snapshot {
		if h.cancelled {
			continue
		}
		if err := h.action.Step(dt); err != nil {
			if r.cfg.ErrorPolicy == FailFast {
				failed = err
				advanced = r.snapshot[:i+1]
				break
			}
			log.Printf("tempo: action %d failed, continuing: %v", i, err)
			errs = append(errs, err)
		}
	}

	for _, h := range advanced {
		if h.Active() && h.action.Done() {
			h.reaped = true
			r.reap = append(r.reap, h)
		}
	}
	if len(r.reap) > 0 {
		r.compact()
	}

	if r.cfg.Debug {
		r.debugLog(stepStats{
			stepTime: time.Since(t0),
			advanced: len(advanced),
			reaped:   len(r.reap),
			active:   len(r.handles),
		})
	}

	if r.cfg.OnReap != nil {
		for _, h := range r.reap {
			r.cfg.OnReap(h)
		}
	}
	clear(r.reap)
	r.reap = r.reap[:0]
	clear(r.snapshot)
	r.snapshot = r.snapshot[:0]

	if failed != nil {
		return failed
	}
	return errors.Join(errs...)
}

// compact drops reaped and cancelled handles, keeping order.
func (r *Runner) compact() {
	n := 0
	for _, h := range r.handles {
		if h.Active() {
			r.handles[n] = h
			n++
		}
	}
	clear(r.handles[n:])
	r.handles = r.handles[:n]
}
