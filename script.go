package tempo

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// FuncMap resolves the names used by `call` entries in a script.
type FuncMap map[string]func(target Animatable) error

// scriptNode is one entry of a script. Exactly one field must be set.
type scriptNode struct {
	Place       []float64     `yaml:"place"`
	Goto        *scriptMotion `yaml:"goto"`
	Move        *scriptMotion `yaml:"move"`
	Rotate      *scriptRotate `yaml:"rotate"`
	Scale       *scriptScale  `yaml:"scale"`
	Jump        *scriptJump   `yaml:"jump"`
	Bezier      *scriptBezier `yaml:"bezier"`
	Delay       *float64      `yaml:"delay"`
	RandomDelay []float64     `yaml:"randomDelay"`
	Call        string        `yaml:"call"`
	Sequence    *scriptGroup  `yaml:"sequence"`
	Spawn       *scriptGroup  `yaml:"spawn"`
	Repeat      *scriptRepeat `yaml:"repeat"`
}

type scriptTiming struct {
	Duration  float64 `yaml:"duration"`
	Direction string  `yaml:"direction"`
	Mode      string  `yaml:"mode"`
	Ease      string  `yaml:"ease"`
}

type scriptMotion struct {
	To           []float64 `yaml:"to"`
	By           []float64 `yaml:"by"`
	scriptTiming `yaml:",inline"`
}

type scriptRotate struct {
	Angle        float64 `yaml:"angle"`
	scriptTiming `yaml:",inline"`
}

type scriptScale struct {
	To           float64 `yaml:"to"`
	scriptTiming `yaml:",inline"`
}

type scriptJump struct {
	Height       float64 `yaml:"height"`
	Width        float64 `yaml:"width"`
	Jumps        int     `yaml:"jumps"`
	scriptTiming `yaml:",inline"`
}

type scriptBezier struct {
	Points       [][]float64 `yaml:"points"`
	scriptTiming `yaml:",inline"`
}

type scriptGroup struct {
	Direction string       `yaml:"direction"`
	Mode      string       `yaml:"mode"`
	Actions   []scriptNode `yaml:"actions"`
}

type scriptRepeat struct {
	// Times omitted or zero means forever.
	Times  int         `yaml:"times"`
	Action *scriptNode `yaml:"action"`
}

var scriptEases = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

// LoadScript parses a YAML action script into a template. Each entry is a
// map with a single key naming the action:
//
//	sequence:
//	  mode: pingpong
//	  actions:
//	    - goto: {to: [100, 0], duration: 2, ease: outCubic}
//	    - delay: 0.5
//	    - call: blink
//	    - repeat:
//	        times: 3
//	        action: {rotate: {angle: 90, duration: 1, mode: repeat}}
//
// Names used by `call` are looked up in funcs.
func LoadScript(data []byte, funcs FuncMap) (Template, error) {
	var root scriptNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("tempo: parse script: %w", err)
	}
	t, err := root.build(funcs, "script")
	if err != nil {
		return nil, fmt.Errorf("tempo: parse script: %w", err)
	}
	return t, nil
}

func (n *scriptNode) build(funcs FuncMap, path string) (Template, error) {
	var (
		t     Template
		err   error
		kinds int
	)
	set := func(build func() (Template, error)) {
		kinds++
		if kinds == 1 {
			t, err = build()
		}
	}

	if n.Place != nil {
		set(func() (Template, error) {
			v, err := scriptVec(n.Place)
			if err != nil {
				return nil, err
			}
			return Place(v), nil
		})
	}
	if n.Goto != nil {
		set(func() (Template, error) {
			v, err := scriptVec(n.Goto.To)
			if err != nil {
				return nil, err
			}
			opts, err := n.Goto.options()
			if err != nil {
				return nil, err
			}
			return Goto(v, n.Goto.Duration, opts...)
		})
	}
	if n.Move != nil {
		set(func() (Template, error) {
			v, err := scriptVec(n.Move.By)
			if err != nil {
				return nil, err
			}
			opts, err := n.Move.options()
			if err != nil {
				return nil, err
			}
			return Move(v, n.Move.Duration, opts...)
		})
	}
	if n.Rotate != nil {
		set(func() (Template, error) {
			opts, err := n.Rotate.options()
			if err != nil {
				return nil, err
			}
			return Rotate(n.Rotate.Angle, n.Rotate.Duration, opts...)
		})
	}
	if n.Scale != nil {
		set(func() (Template, error) {
			opts, err := n.Scale.options()
			if err != nil {
				return nil, err
			}
			return Scale(n.Scale.To, n.Scale.Duration, opts...)
		})
	}
	if n.Jump != nil {
		set(func() (Template, error) {
			opts, err := n.Jump.options()
			if err != nil {
				return nil, err
			}
			return Jump(n.Jump.Height, n.Jump.Width, n.Jump.Jumps, n.Jump.Duration, opts...)
		})
	}
	if n.Bezier != nil {
		set(func() (Template, error) {
			if len(n.Bezier.Points) != 4 {
				return nil, configError("bezier: want 4 points, got %d", len(n.Bezier.Points))
			}
			var pts [4]Vec2
			for i, p := range n.Bezier.Points {
				v, err := scriptVec(p)
				if err != nil {
					return nil, err
				}
				pts[i] = Vec2{v.X, v.Y}
			}
			opts, err := n.Bezier.options()
			if err != nil {
				return nil, err
			}
			return Bezier(CubicCurve{pts[0], pts[1], pts[2], pts[3]}, n.Bezier.Duration, opts...)
		})
	}
	if n.Delay != nil {
		set(func() (Template, error) { return Delay(*n.Delay) })
	}
	if n.RandomDelay != nil {
		set(func() (Template, error) {
			if len(n.RandomDelay) != 2 {
				return nil, configError("randomDelay: want [low, high]")
			}
			return RandomDelay(n.RandomDelay[0], n.RandomDelay[1])
		})
	}
	if n.Call != "" {
		set(func() (Template, error) {
			fn, ok := funcs[n.Call]
			if !ok {
				return nil, fmt.Errorf("call: unknown function %q: %w", n.Call, ErrNotFound)
			}
			return CallFuncS(fn)
		})
	}
	if n.Sequence != nil {
		set(func() (Template, error) {
			children, err := n.Sequence.build(funcs, path+".sequence")
			if err != nil {
				return nil, err
			}
			opts, err := parseTiming(scriptTiming{Direction: n.Sequence.Direction, Mode: n.Sequence.Mode})
			if err != nil {
				return nil, err
			}
			return SequenceWith(opts, children...)
		})
	}
	if n.Spawn != nil {
		set(func() (Template, error) {
			children, err := n.Spawn.build(funcs, path+".spawn")
			if err != nil {
				return nil, err
			}
			return Spawn(children...)
		})
	}
	if n.Repeat != nil {
		set(func() (Template, error) {
			if n.Repeat.Action == nil {
				return nil, configError("repeat: missing action")
			}
			child, err := n.Repeat.Action.build(funcs, path+".repeat")
			if err != nil {
				return nil, err
			}
			times := n.Repeat.Times
			if times == 0 {
				times = Forever
			}
			return RepeatN(child, times)
		})
	}

	switch {
	case kinds == 0:
		return nil, fmt.Errorf("%s: %w", path, configError("entry names no action"))
	case kinds > 1:
		return nil, fmt.Errorf("%s: %w", path, configError("entry names %d actions, want 1", kinds))
	case err != nil:
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (g *scriptGroup) build(funcs FuncMap, path string) ([]Template, error) {
	out := make([]Template, 0, len(g.Actions))
	for i := range g.Actions {
		t, err := g.Actions[i].build(funcs, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s scriptTiming) options() ([]Option, error) {
	return parseTiming(s)
}

func parseTiming(s scriptTiming) ([]Option, error) {
	var opts []Option
	switch strings.ToLower(s.Direction) {
	case "", "forward":
	case "backward":
		opts = append(opts, WithDirection(Backward))
	default:
		return nil, configError("unknown direction %q", s.Direction)
	}
	switch strings.ToLower(s.Mode) {
	case "", "oneshot", "one-shot":
	case "pingpong", "ping-pong":
		opts = append(opts, WithMode(PingPong))
	case "repeat":
		opts = append(opts, WithMode(Repeat))
	default:
		return nil, configError("unknown mode %q", s.Mode)
	}
	if s.Ease != "" {
		fn, ok := scriptEases[s.Ease]
		if !ok {
			return nil, configError("unknown ease %q", s.Ease)
		}
		opts = append(opts, WithEase(fn))
	}
	return opts, nil
}

func scriptVec(v []float64) (Vec3, error) {
	switch len(v) {
	case 2:
		return Vec3{X: v[0], Y: v[1]}, nil
	case 3:
		return Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
	default:
		return Vec3{}, configError("want a vector of 2 or 3 numbers, got %d", len(v))
	}
}
