package tempo

// Template is an immutable description of an action. NewAction clones it
// into a fresh instance; the runner calls it once per Do, so one template can
// drive any number of targets without sharing state.
type Template interface {
	NewAction() Action
}

// Action is a live instance bound to one runner for its whole life.
//
// Start is called once, when the instance is attached or first reached by a
// combinator. Restart re-initializes it for looped reuse. Step advances the
// runtime by dt and then applies the kind-specific update. Done must not have
// side effects.
type Action interface {
	Start(r *Runner) error
	Step(dt float64) error
	Done() bool
	Restart() error

	// Runtime is the time accumulated since the last start or restart.
	Runtime() float64
	// Starts counts Start plus Restart calls.
	Starts() int
}

// Base carries the bookkeeping every action shares. Embed it in custom
// actions and call Init from Start, Reinit from Restart and Advance from Step.
type Base struct {
	runtime float64
	starts  int
	runner  *Runner
}

// Init binds the action to r and resets the runtime. The runner is bound
// once; later calls keep the original binding.
func (b *Base) Init(r *Runner) {
	if b.runner == nil {
		b.runner = r
	}
	b.runtime = 0
	b.starts = 1
}

// Reinit resets the runtime for a restart.
func (b *Base) Reinit() {
	b.runtime = 0
	b.starts++
}

// Advance adds dt to the runtime.
func (b *Base) Advance(dt float64) {
	b.runtime += dt
}

// Runtime returns the seconds accumulated since the last start or restart.
func (b *Base) Runtime() float64 {
	return b.runtime
}

// Starts returns how many times the action has been started or restarted.
func (b *Base) Starts() int {
	return b.starts
}

// Runner returns the runner the action is bound to, or nil before Start.
func (b *Base) Runner() *Runner {
	return b.runner
}

// Target returns the animatable object of the bound runner.
func (b *Base) Target() Animatable {
	if b.runner == nil {
		return nil
	}
	return b.runner.target
}
