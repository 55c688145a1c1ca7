package tempo

// Curve is a parametric 2D path evaluated at t in [0, 1]. Bezier offsets the
// target from its start position by At(progress).
type Curve interface {
	At(t float64) Vec2
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) Vec2

// At calls f(t).
func (f CurveFunc) At(t float64) Vec2 { return f(t) }

// CubicCurve is a cubic Bezier curve. Points are relative to the target's
// start position, so P0 is usually the zero vector.
type CubicCurve struct {
	P0, P1, P2, P3 Vec2
}

// At evaluates the curve with the Bernstein form.
func (c CubicCurve) At(t float64) Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}
