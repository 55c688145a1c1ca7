package tempo

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FloatField selects a scalar on the target for Tween to drive. It returns
// nil when the target has no such field.
type FloatField func(target Animatable) *float64

// NodeAlpha selects Node.Alpha.
func NodeAlpha(target Animatable) *float64 {
	if n, ok := target.(*Node); ok {
		return &n.Alpha
	}
	return nil
}

type tweenTemplate struct {
	spec  intervalSpec
	field FloatField
	to    float64
}

// Tween animates a scalar outside the Animatable capability (alpha, a colour
// channel, a volume) from its value at start to `to` over duration seconds.
// WithEase picks the curve; the default is linear.
func Tween(field FloatField, to, duration float64, opts ...Option) (Template, error) {
	if field == nil {
		return nil, configError("tween: nil field")
	}
	spec, err := newIntervalSpec("tween", duration, opts)
	if err != nil {
		return nil, err
	}
	return tweenTemplate{spec: spec, field: field, to: to}, nil
}

func (t tweenTemplate) NewAction() Action {
	return &tweenAction{interval: t.spec.instance(), field: t.field, to: t.to}
}

type tweenAction struct {
	interval
	field FloatField
	to    float64
	ptr   *float64
	tw    *gween.Tween
}

func (a *tweenAction) capture() error {
	a.ptr = a.field(a.Target())
	if a.ptr == nil {
		return configError("tween: target %T has no such field", a.Target())
	}
	fn := a.ease
	if fn == nil {
		fn = ease.Linear
	}
	a.tw = gween.New(float32(*a.ptr), float32(a.to), float32(a.duration), fn)
	return nil
}

func (a *tweenAction) Start(r *Runner) error {
	a.Init(r)
	return a.capture()
}

func (a *tweenAction) Restart() error {
	if a.restart() {
		return a.capture()
	}
	return nil
}

// Step seeks the gween tween to the effective runtime, so backward and
// ping-pong playback reuse the same tween.
func (a *tweenAction) Step(dt float64) error {
	a.Advance(dt)
	val, _ := a.tw.Set(float32(a.effectiveRuntime()))
	*a.ptr = float64(val)
	if m, ok := a.Target().(interface{ MarkDirty() }); ok {
		m.MarkDirty()
	}
	return nil
}
