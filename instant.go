package tempo

import "math/rand/v2"

// --- CallFunc / CallFuncS ---

type callTemplate struct {
	fn  func() error
	fnS func(Animatable) error
}

// CallFunc calls fn once every time the action starts or restarts, then is
// done. Bind arguments by closing over them. A non-nil error is returned as
// a *CallbackError from whatever started the action.
func CallFunc(fn func() error) (Template, error) {
	if fn == nil {
		return nil, configError("callfunc: nil function")
	}
	return callTemplate{fn: fn}, nil
}

// CallFuncS is CallFunc with the runner's target passed to fn.
func CallFuncS(fn func(target Animatable) error) (Template, error) {
	if fn == nil {
		return nil, configError("callfuncs: nil function")
	}
	return callTemplate{fnS: fn}, nil
}

func (t callTemplate) NewAction() Action {
	return &callAction{fn: t.fn, fnS: t.fnS}
}

type callAction struct {
	Base
	fn  func() error
	fnS func(Animatable) error
}

func (a *callAction) fire() error {
	if a.fnS != nil {
		if err := a.fnS(a.Target()); err != nil {
			return &CallbackError{Action: "CallFuncS", Err: err}
		}
		return nil
	}
	if err := a.fn(); err != nil {
		return &CallbackError{Action: "CallFunc", Err: err}
	}
	return nil
}

func (a *callAction) Start(r *Runner) error {
	a.Init(r)
	return a.fire()
}

func (a *callAction) Restart() error {
	a.Reinit()
	return a.fire()
}

func (a *callAction) Step(dt float64) error {
	a.Advance(dt)
	return nil
}

func (a *callAction) Done() bool { return true }

// --- Delay / RandomDelay ---

type delayTemplate struct {
	seconds float64
}

// Delay is a pure time gate. It is done on the first step after more than
// seconds have elapsed: stepping exactly seconds is not enough, so a
// Delay(1) stepped once by 1.0 needs one more step before a following
// action in a Sequence starts. Delay(0) is done after any positive step.
func Delay(seconds float64) (Template, error) {
	if !(seconds >= 0) {
		return nil, configError("delay: seconds must not be negative, got %v", seconds)
	}
	return delayTemplate{seconds: seconds}, nil
}

// RandomDelay is a Delay whose length is drawn uniformly from [low, high]
// once, when the template is built. Every instance cloned from the template
// waits the same time.
func RandomDelay(low, high float64) (Template, error) {
	if !(low >= 0) || !(high >= low) {
		return nil, configError("randomdelay: want 0 <= low <= high, got [%v, %v]", low, high)
	}
	return delayTemplate{seconds: low + rand.Float64()*(high-low)}, nil
}

func (t delayTemplate) NewAction() Action {
	return &delayAction{seconds: t.seconds}
}

type delayAction struct {
	Base
	seconds float64
}

// Seconds returns the length of the delay.
func (a *delayAction) Seconds() float64 { return a.seconds }

func (a *delayAction) Start(r *Runner) error {
	a.Init(r)
	return nil
}

func (a *delayAction) Restart() error {
	a.Reinit()
	return nil
}

func (a *delayAction) Step(dt float64) error {
	a.Advance(dt)
	return nil
}

func (a *delayAction) Done() bool {
	return a.runtime > a.seconds+durationEpsilon
}
