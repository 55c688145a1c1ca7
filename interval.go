package tempo

import "github.com/tanema/gween/ease"

// Option configures the timing of an interval action or a sequence.
type Option func(*timing)

// WithDirection sets the initial traversal direction (default Forward).
func WithDirection(d Direction) Option {
	return func(t *timing) { t.direction = d }
}

// WithMode sets the restart behaviour (default OneShot).
func WithMode(m Mode) Option {
	return func(t *timing) { t.mode = m }
}

// WithEase shapes the normalized progress with an easing function, e.g.
// ease.OutCubic. Sequences ignore it.
func WithEase(fn ease.TweenFunc) Option {
	return func(t *timing) { t.ease = fn }
}

type timing struct {
	direction Direction
	mode      Mode
	ease      ease.TweenFunc
}

func newTiming(kind string, opts []Option) (timing, error) {
	var t timing
	for _, opt := range opts {
		opt(&t)
	}
	if !t.direction.valid() {
		return t, configError("%s: unknown direction %v", kind, t.direction)
	}
	if !t.mode.valid() {
		return t, configError("%s: unknown mode %v", kind, t.mode)
	}
	return t, nil
}

// intervalSpec is the template half of an interval action.
type intervalSpec struct {
	duration float64
	timing
}

func newIntervalSpec(kind string, duration float64, opts []Option) (intervalSpec, error) {
	if !(duration > 0) {
		return intervalSpec{}, configError("%s: duration must be positive, got %v", kind, duration)
	}
	t, err := newTiming(kind, opts)
	if err != nil {
		return intervalSpec{}, err
	}
	return intervalSpec{duration: duration, timing: t}, nil
}

func (s intervalSpec) instance() interval {
	return interval{
		duration:  s.duration,
		direction: s.direction,
		mode:      s.mode,
		ease:      s.ease,
	}
}

// interval is embedded by every duration-bound action. It maps runtime to a
// progress fraction according to direction and easing.
type interval struct {
	Base
	duration  float64
	direction Direction
	mode      Mode
	ease      ease.TweenFunc
}

// Done reports whether the runtime has reached the duration.
func (iv *interval) Done() bool {
	return iv.runtime >= iv.duration-durationEpsilon
}

// Direction returns the current traversal direction.
func (iv *interval) Direction() Direction {
	return iv.direction
}

// effectiveRuntime is the runtime as seen by the time function: mirrored
// when travelling backward, pinned to the end once done.
func (iv *interval) effectiveRuntime() float64 {
	rt := iv.runtime
	if iv.Done() {
		rt = iv.duration
	}
	if iv.direction == Backward {
		rt = iv.duration - rt
	}
	return rt
}

func (iv *interval) progress() float64 {
	p := clamp01(iv.effectiveRuntime() / iv.duration)
	if iv.ease != nil {
		p = float64(iv.ease(float32(p), 0, 1, 1))
	}
	return p
}

// restart resets the runtime and applies the mode. It reports whether the
// caller has to re-capture its start state from the target.
func (iv *interval) restart() (recapture bool) {
	iv.Reinit()
	switch iv.mode {
	case PingPong:
		iv.direction = iv.direction.flip()
	case Repeat:
		return true
	}
	return false
}
