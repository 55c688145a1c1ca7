package tempo

// --- Sequence ---

type sequenceTemplate struct {
	actions []Template
	timing  timing
}

// Sequence chains actions: each starts once the previous one is done.
func Sequence(actions ...Template) (Template, error) {
	return SequenceWith(nil, actions...)
}

// SequenceWith is Sequence with direction and mode options. A backward
// sequence visits its children last to first; a ping-pong sequence reverses
// the visiting order on every restart.
func SequenceWith(opts []Option, actions ...Template) (Template, error) {
	if len(actions) == 0 {
		return nil, configError("sequence: no actions")
	}
	for i, a := range actions {
		if a == nil {
			return nil, configError("sequence: action %d is nil", i)
		}
	}
	t, err := newTiming("sequence", opts)
	if err != nil {
		return nil, err
	}
	return sequenceTemplate{actions: append([]Template(nil), actions...), timing: t}, nil
}

func (t sequenceTemplate) NewAction() Action {
	children := make([]Action, len(t.actions))
	for i, a := range t.actions {
		children[i] = a.NewAction()
	}
	return &sequenceAction{children: children, direction: t.timing.direction, mode: t.timing.mode}
}

// sequenceAction runs at most one child at a time. Children are cloned with
// the sequence and reused across restarts.
type sequenceAction struct {
	Base
	children  []Action
	direction Direction
	mode      Mode
	count     int
	current   Action
}

// Current returns the child being run, or nil before Start.
func (s *sequenceAction) Current() Action { return s.current }

func (s *sequenceAction) Start(r *Runner) error {
	s.Init(r)
	return s.begin()
}

func (s *sequenceAction) Restart() error {
	s.Reinit()
	if s.mode == PingPong {
		s.direction = s.direction.flip()
	}
	return s.begin()
}

func (s *sequenceAction) begin() error {
	s.count = 0
	return s.instantiate()
}

// instantiate selects the child for the current count. The first pass
// starts children, later passes restart them.
func (s *sequenceAction) instantiate() error {
	idx := s.count
	if s.direction == Backward {
		idx = len(s.children) - 1 - s.count
	}
	s.current = s.children[idx]
	if s.starts == 1 {
		return s.current.Start(s.runner)
	}
	return s.current.Restart()
}

func (s *sequenceAction) Step(dt float64) error {
	if s.Done() {
		return nil
	}
	s.Advance(dt)
	if err := s.current.Step(dt); err != nil {
		return err
	}
	if s.current.Done() {
		s.count++
		if !s.Done() {
			return s.instantiate()
		}
	}
	return nil
}

func (s *sequenceAction) Done() bool {
	return s.count >= len(s.children)
}

// --- Spawn ---

type spawnTemplate struct {
	actions []Template
}

// Spawn attaches every action to the runner, in order, when it starts. The
// children then live independently; the spawn itself is done at once.
func Spawn(actions ...Template) (Template, error) {
	if len(actions) == 0 {
		return nil, configError("spawn: no actions")
	}
	for i, a := range actions {
		if a == nil {
			return nil, configError("spawn: action %d is nil", i)
		}
	}
	return spawnTemplate{actions: append([]Template(nil), actions...)}, nil
}

func (t spawnTemplate) NewAction() Action {
	return &spawnAction{actions: t.actions}
}

type spawnAction struct {
	Base
	actions  []Template
	launched []*Handle
}

// launch attaches every child. If one fails to start, the children attached
// before it are detached again, so a failed spawn leaves nothing behind.
func (a *spawnAction) launch() error {
	clear(a.launched)
	a.launched = a.launched[:0]
	for _, t := range a.actions {
		h, err := a.runner.Do(t)
		if err != nil {
			a.rollback()
			return err
		}
		a.launched = append(a.launched, h)
	}
	return nil
}

// rollback detaches what the last launch attached, including the children
// of nested spawns.
func (a *spawnAction) rollback() {
	for _, h := range a.launched {
		if s, ok := h.action.(*spawnAction); ok {
			s.rollback()
		}
		_ = a.runner.Detach(h)
	}
	clear(a.launched)
	a.launched = a.launched[:0]
}

func (a *spawnAction) Start(r *Runner) error {
	a.Init(r)
	return a.launch()
}

func (a *spawnAction) Restart() error {
	a.Reinit()
	return a.launch()
}

func (a *spawnAction) Step(dt float64) error {
	a.Advance(dt)
	return nil
}

func (a *spawnAction) Done() bool { return true }

// --- Repeat ---

type repeatTemplate struct {
	action Template
	times  int
}

// RepeatN runs action times times, restarting it after each completion.
// Pass Forever for an action that never finishes.
func RepeatN(action Template, times int) (Template, error) {
	if action == nil {
		return nil, configError("repeat: nil action")
	}
	if times != Forever && times < 1 {
		return nil, configError("repeat: times must be at least 1 or Forever, got %d", times)
	}
	return repeatTemplate{action: action, times: times}, nil
}

// RepeatForever is RepeatN(action, Forever).
func RepeatForever(action Template) (Template, error) {
	return RepeatN(action, Forever)
}

func (t repeatTemplate) NewAction() Action {
	return &repeatAction{child: t.action.NewAction(), times: t.times}
}

type repeatAction struct {
	Base
	child Action
	times int
	count int
}

// Count returns the number of completed cycles since the last start.
func (a *repeatAction) Count() int { return a.count }

func (a *repeatAction) Start(r *Runner) error {
	a.Init(r)
	a.count = 0
	return a.child.Start(r)
}

func (a *repeatAction) Restart() error {
	a.Reinit()
	a.count = 0
	return a.child.Restart()
}

func (a *repeatAction) Step(dt float64) error {
	if a.Done() {
		return nil
	}
	a.Advance(dt)
	if err := a.child.Step(dt); err != nil {
		return err
	}
	if a.child.Done() {
		a.count++
		if !a.Done() {
			return a.child.Restart()
		}
	}
	return nil
}

func (a *repeatAction) Done() bool {
	return a.times != Forever && a.count >= a.times
}
