package tempo

import "math"

// --- Place ---

type placeTemplate struct {
	position Vec3
}

// Place sets the target position immediately on start and is done at once.
func Place(position Vec3) Template {
	return placeTemplate{position: position}
}

func (t placeTemplate) NewAction() Action {
	return &placeAction{position: t.position}
}

type placeAction struct {
	Base
	position Vec3
}

func (a *placeAction) Start(r *Runner) error {
	a.Init(r)
	a.Target().SetPosition(a.position)
	return nil
}

func (a *placeAction) Restart() error {
	a.Reinit()
	a.Target().SetPosition(a.position)
	return nil
}

func (a *placeAction) Step(dt float64) error {
	a.Advance(dt)
	return nil
}

func (a *placeAction) Done() bool { return true }

// --- Goto / Move ---

type gotoTemplate struct {
	spec     intervalSpec
	end      Vec3
	relative bool
}

// Goto moves the target to the absolute position end over duration seconds.
func Goto(end Vec3, duration float64, opts ...Option) (Template, error) {
	spec, err := newIntervalSpec("goto", duration, opts)
	if err != nil {
		return nil, err
	}
	return gotoTemplate{spec: spec, end: end}, nil
}

// Move moves the target by delta over duration seconds. The end position is
// computed from the target position captured at start.
func Move(delta Vec3, duration float64, opts ...Option) (Template, error) {
	spec, err := newIntervalSpec("move", duration, opts)
	if err != nil {
		return nil, err
	}
	return gotoTemplate{spec: spec, end: delta, relative: true}, nil
}

func (t gotoTemplate) NewAction() Action {
	return &gotoAction{interval: t.spec.instance(), param: t.end, relative: t.relative}
}

type gotoAction struct {
	interval
	param    Vec3
	relative bool
	start    Vec3
	end      Vec3
}

func (a *gotoAction) capture() {
	a.start = a.Target().Position()
	if a.relative {
		a.end = a.start.Add(a.param)
	} else {
		a.end = a.param
	}
}

func (a *gotoAction) Start(r *Runner) error {
	a.Init(r)
	a.capture()
	return nil
}

func (a *gotoAction) Restart() error {
	if a.restart() {
		a.capture()
	}
	return nil
}

func (a *gotoAction) Step(dt float64) error {
	a.Advance(dt)
	a.Target().SetPosition(a.start.Lerp(a.end, a.progress()))
	return nil
}

// --- Rotate ---

type rotateTemplate struct {
	spec  intervalSpec
	angle float64
}

// Rotate turns the target by angle degrees over duration seconds. The
// resulting angle is kept in [0, 360).
func Rotate(angle, duration float64, opts ...Option) (Template, error) {
	spec, err := newIntervalSpec("rotate", duration, opts)
	if err != nil {
		return nil, err
	}
	return rotateTemplate{spec: spec, angle: angle}, nil
}

func (t rotateTemplate) NewAction() Action {
	return &rotateAction{interval: t.spec.instance(), angle: t.angle}
}

type rotateAction struct {
	interval
	angle      float64
	startAngle float64
}

func (a *rotateAction) Start(r *Runner) error {
	a.Init(r)
	a.startAngle = a.Target().Angle()
	return nil
}

func (a *rotateAction) Restart() error {
	if a.restart() {
		a.startAngle = a.Target().Angle()
	}
	return nil
}

func (a *rotateAction) Step(dt float64) error {
	a.Advance(dt)
	a.Target().SetAngle(normalizeAngle(a.startAngle + a.angle*a.progress()))
	return nil
}

// --- Scale ---

type scaleTemplate struct {
	spec intervalSpec
	end  float64
}

// Scale changes the target scale to end over duration seconds.
func Scale(end, duration float64, opts ...Option) (Template, error) {
	spec, err := newIntervalSpec("scale", duration, opts)
	if err != nil {
		return nil, err
	}
	return scaleTemplate{spec: spec, end: end}, nil
}

func (t scaleTemplate) NewAction() Action {
	return &scaleAction{interval: t.spec.instance(), end: t.end}
}

type scaleAction struct {
	interval
	start float64
	end   float64
}

func (a *scaleAction) Start(r *Runner) error {
	a.Init(r)
	a.start = a.Target().Scale()
	return nil
}

func (a *scaleAction) Restart() error {
	if a.restart() {
		a.start = a.Target().Scale()
	}
	return nil
}

func (a *scaleAction) Step(dt float64) error {
	a.Advance(dt)
	a.Target().SetScale(a.start + (a.end-a.start)*a.progress())
	return nil
}

// --- Jump ---

type jumpTemplate struct {
	spec          intervalSpec
	height, width float64
	jumps         int
}

// Jump hops the target width units to the right in the given number of
// jumps, each height units tall, over duration seconds.
func Jump(height, width float64, jumps int, duration float64, opts ...Option) (Template, error) {
	if jumps < 1 {
		return nil, configError("jump: jumps must be at least 1, got %d", jumps)
	}
	spec, err := newIntervalSpec("jump", duration, opts)
	if err != nil {
		return nil, err
	}
	return jumpTemplate{spec: spec, height: height, width: width, jumps: jumps}, nil
}

func (t jumpTemplate) NewAction() Action {
	return &jumpAction{interval: t.spec.instance(), height: t.height, width: t.width, jumps: t.jumps}
}

type jumpAction struct {
	interval
	height, width float64
	jumps         int
	start         Vec3
}

func (a *jumpAction) Start(r *Runner) error {
	a.Init(r)
	a.start = a.Target().Position()
	return nil
}

func (a *jumpAction) Restart() error {
	if a.restart() {
		a.start = a.Target().Position()
	}
	return nil
}

func (a *jumpAction) Step(dt float64) error {
	a.Advance(dt)
	p := a.progress()
	y := math.Abs(a.height * math.Sin(p*math.Pi*float64(a.jumps)))
	x := a.width * p
	a.Target().SetPosition(a.start.Add(Vec3{X: x, Y: y}))
	return nil
}

// --- Bezier ---

type bezierTemplate struct {
	spec  intervalSpec
	curve Curve
}

// Bezier moves the target along curve, offset from the position captured at
// start, over duration seconds.
func Bezier(curve Curve, duration float64, opts ...Option) (Template, error) {
	if curve == nil {
		return nil, configError("bezier: nil curve")
	}
	spec, err := newIntervalSpec("bezier", duration, opts)
	if err != nil {
		return nil, err
	}
	return bezierTemplate{spec: spec, curve: curve}, nil
}

func (t bezierTemplate) NewAction() Action {
	return &bezierAction{interval: t.spec.instance(), curve: t.curve}
}

type bezierAction struct {
	interval
	curve Curve
	start Vec3
}

func (a *bezierAction) Start(r *Runner) error {
	a.Init(r)
	a.start = a.Target().Position()
	return nil
}

func (a *bezierAction) Restart() error {
	if a.restart() {
		a.start = a.Target().Position()
	}
	return nil
}

func (a *bezierAction) Step(dt float64) error {
	a.Advance(dt)
	p := a.curve.At(a.progress())
	a.Target().SetPosition(a.start.Add(Vec3{X: p.X, Y: p.Y}))
	return nil
}
