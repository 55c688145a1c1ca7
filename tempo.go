package tempo

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. Curves evaluate to Vec2 offsets.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for target positions and movement deltas.
// Z is carried through untouched by the planar actions (Jump, Bezier).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp returns the point at fraction t between v and o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Animatable is the capability a target exposes to leaf actions. The
// scheduler never touches a target through anything else.
type Animatable interface {
	Position() Vec3
	SetPosition(p Vec3)
	// Angle is in degrees, normalized to [0, 360) by Rotate.
	Angle() float64
	SetAngle(deg float64)
	Scale() float64
	SetScale(s float64)
}

// Direction selects which way an action traverses its time function.
type Direction uint8

const (
	Forward  Direction = iota // runtime maps to progress 0 → 1 (default)
	Backward                  // runtime maps to progress 1 → 0
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

func (d Direction) valid() bool {
	return d == Forward || d == Backward
}

func (d Direction) flip() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Mode controls what an action does when it is restarted by a Sequence or
// Repeat.
type Mode uint8

const (
	OneShot  Mode = iota // replay the captured segment in the same direction (default)
	PingPong             // flip direction on every restart, keeping captured state
	Repeat               // re-capture start state from the target, so repeats accumulate
)

func (m Mode) String() string {
	switch m {
	case OneShot:
		return "one-shot"
	case PingPong:
		return "ping-pong"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func (m Mode) valid() bool {
	return m <= Repeat
}

// Forever is the repeat count for an action that never finishes.
const Forever = -1

// durationEpsilon absorbs float drift when summing frame deltas, so that
// ten steps of 0.1 complete a 1 second action.
const durationEpsilon = 1e-9

// Must returns v, panicking if err is non-nil. It is meant for templates
// built from literal parameters:
//
//	bounce := tempo.Must(tempo.Jump(50, 200, 4, 2))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// clamp01 clamps f to the unit interval.
func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// normalizeAngle maps deg into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
