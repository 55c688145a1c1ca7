package tempo

import (
	"math"
	"testing"
)

func TestGotoReachesTarget(t *testing.T) {
	n := NewNode("hero")
	r := NewRunner(n)
	h := mustDo(t, r, Must(Goto(Vec3{X: 100}, 2)))

	stepN(t, r, 1, 1)
	assertVec(t, n.Position(), Vec3{X: 50})
	if h.Done() {
		t.Fatal("should not be done halfway")
	}

	stepN(t, r, 1, 1)
	assertVec(t, n.Position(), Vec3{X: 100})
	if !h.Done() {
		t.Fatal("expected done after full duration")
	}
}

func TestGotoEndsExactlyForAnyStepping(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		dt       float64
		steps    int
	}{
		{"two whole seconds", 2, 1, 2},
		{"tenths", 1, 0.1, 10},
		{"quarters", 0.75, 0.25, 3},
		{"halves", 3, 0.5, 6},
		{"single step", 0.4, 0.4, 1},
	}
	start := Vec3{5, -3, 2}
	end := Vec3{100, 0, 0}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode("n")
			n.SetPosition(start)
			r := NewRunner(n)
			h := mustDo(t, r, Must(Goto(end, tt.duration)))

			stepN(t, r, tt.steps-1, tt.dt)
			if h.Done() {
				t.Fatalf("done after %d of %d steps", tt.steps-1, tt.steps)
			}
			stepN(t, r, 1, tt.dt)
			if !h.Done() {
				t.Fatal("expected done after cumulative dt == duration")
			}
			assertVec(t, n.Position(), end)
		})
	}
}

func TestMoveIsRelativeToStart(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(Vec3{10, 10, 0})
	r := NewRunner(n)
	mustDo(t, r, Must(Move(Vec3{X: 20, Y: -10}, 1)))

	stepN(t, r, 1, 0.5)
	assertVec(t, n.Position(), Vec3{20, 5, 0})
	stepN(t, r, 1, 0.5)
	assertVec(t, n.Position(), Vec3{30, 0, 0})
}

func TestMoveSharedTemplateIndependentTargets(t *testing.T) {
	tpl := Must(Move(Vec3{X: 10}, 1))
	a := NewNode("a")
	b := NewNode("b")
	b.SetPosition(Vec3{X: 100})
	ra := NewRunner(a)
	rb := NewRunner(b)
	mustDo(t, ra, tpl)
	mustDo(t, rb, tpl)

	stepN(t, ra, 1, 1)
	stepN(t, rb, 1, 0.5)
	assertVec(t, a.Position(), Vec3{X: 10})
	assertVec(t, b.Position(), Vec3{X: 105})
}

func TestRotateWrapsAngle(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{"plain", 0, 90, 90},
		{"wraps past 360", 350, 20, 10},
		{"wraps below 0", 10, -20, 350},
		{"full turn", 45, 360, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode("n")
			n.SetAngle(tt.start)
			r := NewRunner(n)
			mustDo(t, r, Must(Rotate(tt.delta, 1)))
			stepN(t, r, 1, 1)
			assertFloat(t, "angle", n.Angle(), tt.want)
		})
	}
}

func TestScaleInterpolates(t *testing.T) {
	n := NewNode("n")
	r := NewRunner(n)
	mustDo(t, r, Must(Scale(3, 2)))

	stepN(t, r, 1, 1)
	assertFloat(t, "scale", n.Scale(), 2)
	if n.ScaleX != n.ScaleY {
		t.Errorf("non-uniform scale: (%v, %v)", n.ScaleX, n.ScaleY)
	}
	stepN(t, r, 1, 1)
	assertFloat(t, "scale", n.Scale(), 3)
}

func TestJumpArc(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(Vec3{10, 20, 0})
	r := NewRunner(n)
	mustDo(t, r, Must(Jump(50, 200, 2, 1)))

	// Quarter way through two jumps is the top of the first arc.
	stepN(t, r, 1, 0.25)
	assertVec(t, n.Position(), Vec3{60, 70, 0})

	stepN(t, r, 1, 0.25)
	assertVec(t, n.Position(), Vec3{110, 20, 0})

	stepN(t, r, 2, 0.25)
	assertVec(t, n.Position(), Vec3{210, 20, 0})
	if r.Len() != 0 {
		t.Error("jump should be reaped")
	}
}

func TestJumpHeightIsNeverNegative(t *testing.T) {
	n := NewNode("n")
	r := NewRunner(n)
	mustDo(t, r, Must(Jump(30, 0, 3, 1)))
	for i := 0; i < 20; i++ {
		stepN(t, r, 1, 0.05)
		if n.Y < -tolerance {
			t.Fatalf("step %d: Y = %v below the start line", i, n.Y)
		}
	}
}

func TestBezierFollowsCurve(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(Vec3{1, 1, 5})
	r := NewRunner(n)
	curve := CubicCurve{
		P0: Vec2{0, 0},
		P1: Vec2{0, 10},
		P2: Vec2{10, 10},
		P3: Vec2{10, 0},
	}
	mustDo(t, r, Must(Bezier(curve, 2)))

	stepN(t, r, 1, 1)
	assertVec(t, n.Position(), Vec3{6, 8.5, 5})
	stepN(t, r, 1, 1)
	assertVec(t, n.Position(), Vec3{11, 1, 5})
}

func TestBezierCurveFunc(t *testing.T) {
	n := NewNode("n")
	r := NewRunner(n)
	circle := CurveFunc(func(t float64) Vec2 {
		a := t * 2 * math.Pi
		return Vec2{math.Cos(a) - 1, math.Sin(a)}
	})
	mustDo(t, r, Must(Bezier(circle, 1)))

	stepN(t, r, 1, 0.25)
	assertVec(t, n.Position(), Vec3{-1, 1, 0})
	stepN(t, r, 3, 0.25)
	assertVec(t, n.Position(), Vec3{0, 0, 0})
}

func TestPlaceIsImmediate(t *testing.T) {
	n := NewNode("n")
	r := NewRunner(n)
	h := mustDo(t, r, Place(Vec3{320, 240, 0}))

	assertVec(t, n.Position(), Vec3{320, 240, 0})
	if !h.Done() {
		t.Error("Place should be done on start")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1 until the next step", r.Len())
	}
	stepN(t, r, 1, 0.016)
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0 after step", r.Len())
	}
}

func TestLeafActionsWorkOnAnyAnimatable(t *testing.T) {
	tt := &testTarget{scale: 1}
	r := NewRunner(tt)
	mustDo(t, r, Must(Spawn(
		Must(Goto(Vec3{X: 4}, 1)),
		Must(Rotate(30, 1)),
		Must(Scale(2, 1)),
	)))
	stepN(t, r, 1, 1)
	assertVec(t, tt.pos, Vec3{X: 4})
	assertFloat(t, "angle", tt.angle, 30)
	assertFloat(t, "scale", tt.scale, 2)
}
