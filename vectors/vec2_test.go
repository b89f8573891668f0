package vectors

import (
	"math"
	"testing"
)

func TestPolar(t *testing.T) {
	p := Polar(2, math.Pi/2)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-2) > 1e-12 {
		t.Errorf("Polar(2, pi/2) = %+v", p)
	}
	if got := p.Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Angle() = %v, want pi/2", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Norm(); got != 5 {
		t.Errorf("Norm = %v", got)
	}
	if got := a.Midpoint(b); got != (Vec2{2, 1}) {
		t.Errorf("Midpoint = %+v", got)
	}
	if got := Distance(a, Vec2{}); got != 5 {
		t.Errorf("Distance = %v", got)
	}
}
