package tempo

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Director owns the runners of many targets and steps them together, once
// per frame, in the order they were added.
type Director struct {
	runners  []*Runner
	snapshot []*Runner
	cfg      RunnerConfig
	paused   bool
	stepping bool

	// TimeScale multiplies every dt passed to runners. 1 is real time.
	TimeScale float64
}

// NewDirector creates a director whose runners use the default config.
func NewDirector() *Director {
	return NewDirectorWithConfig(RunnerConfig{})
}

// NewDirectorWithConfig creates a director whose runners share cfg.
func NewDirectorWithConfig(cfg RunnerConfig) *Director {
	return &Director{cfg: cfg, TimeScale: 1}
}

// Add creates a runner for target and schedules it.
func (d *Director) Add(target Animatable) *Runner {
	r := NewRunnerWithConfig(target, d.cfg)
	d.runners = append(d.runners, r)
	return r
}

// Remove unschedules r. Its actions are left as they are.
func (d *Director) Remove(r *Runner) error {
	for i, c := range d.runners {
		if c == r {
			r.removed = true
			next := make([]*Runner, 0, len(d.runners)-1)
			next = append(next, d.runners[:i]...)
			d.runners = append(next, d.runners[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Runners returns the scheduled runners in insertion order. The slice is
// owned by the director and must not be modified. Remove never rewrites a
// slice returned earlier; it only stops the director from stepping the
// removed runner.
func (d *Director) Runners() []*Runner {
	return d.runners
}

// Pause stops Step and Update from advancing any runner.
func (d *Director) Pause() { d.paused = true }

// Resume undoes Pause.
func (d *Director) Resume() { d.paused = false }

// Paused reports whether the director is paused.
func (d *Director) Paused() bool { return d.paused }

// SetDebugMode toggles per-step stats for every current and future runner.
func (d *Director) SetDebugMode(enabled bool) {
	d.cfg.Debug = enabled
	for _, r := range d.runners {
		r.SetDebugMode(enabled)
	}
}

// Step advances every runner scheduled when the call began by dt seconds,
// scaled by TimeScale. Runners added during the pass wait for the next frame.
// Under FailFast the first error stops the pass. Calling Step from inside an
// action returns ErrConfiguration.
func (d *Director) Step(dt float64) error {
	if d.paused {
		return nil
	}
	if d.stepping {
		return configError("director: step called during step")
	}
	d.stepping = true
	defer func() { d.stepping = false }()
	dt *= d.TimeScale

	d.snapshot = append(d.snapshot[:0], d.runners...)
	defer func() {
		clear(d.snapshot)
		d.snapshot = d.snapshot[:0]
	}()

	var errs []error
	for _, r := range d.snapshot {
		if r.removed {
			continue
		}
		if err := r.Step(dt); err != nil {
			if d.cfg.ErrorPolicy == FailFast {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Update steps one tick of the ebiten game loop. Call it from
// ebiten.Game.Update.
func (d *Director) Update() error {
	return d.Step(1.0 / float64(ebiten.TPS()))
}
