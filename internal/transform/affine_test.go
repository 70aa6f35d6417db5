package transform

import (
	"testing"

	"github.com/twin-windows/twingo/internal/fixed"
)

func TestIdentityTransformsPointUnchanged(t *testing.T) {
	m := Identity()
	x := m.TransformX(fixed.FromInt(3), fixed.FromInt(4))
	y := m.TransformY(fixed.FromInt(3), fixed.FromInt(4))
	if got := x.ToFixed(); got != fixed.FromInt(3) {
		t.Errorf("x = %v, want %v", got, fixed.FromInt(3))
	}
	if got := y.ToFixed(); got != fixed.FromInt(4) {
		t.Errorf("y = %v, want %v", got, fixed.FromInt(4))
	}
}

func TestTranslateThenTransform(t *testing.T) {
	m := Identity()
	m.Translate(fixed.FromInt(10), fixed.FromInt(-5))
	x := m.TransformX(0, 0)
	y := m.TransformY(0, 0)
	if got := x.ToFixed(); got != fixed.FromInt(10) {
		t.Errorf("x = %v, want %v", got, fixed.FromInt(10))
	}
	if got := y.ToFixed(); got != fixed.FromInt(-5) {
		t.Errorf("y = %v, want %v", got, fixed.FromInt(-5))
	}
}

func TestScaleThenTransform(t *testing.T) {
	m := Identity()
	m.Scale(fixed.FromInt(2), fixed.FromInt(3))
	x := m.TransformX(fixed.FromInt(5), fixed.FromInt(5))
	y := m.TransformY(fixed.FromInt(5), fixed.FromInt(5))
	if got := x.ToFixed(); got != fixed.FromInt(10) {
		t.Errorf("x = %v, want %v", got, fixed.FromInt(10))
	}
	if got := y.ToFixed(); got != fixed.FromInt(15) {
		t.Errorf("y = %v, want %v", got, fixed.FromInt(15))
	}
}

func TestRotate90MapsUnitXToUnitY(t *testing.T) {
	m := Identity()
	m.Rotate(fixed.Angle90)
	x := m.TransformX(fixed.One, 0)
	y := m.TransformY(fixed.One, 0)
	if d := (x.ToFixed()).Abs(); d > fixed.Fixed(4) {
		t.Errorf("x = %v, want ~0", x)
	}
	if d := (y.ToFixed() - fixed.One).Abs(); d > fixed.Fixed(4) {
		t.Errorf("y = %v, want ~ONE", y)
	}
}

func TestMaxRadiusOfScaledIdentity(t *testing.T) {
	m := Identity()
	m.Scale(fixed.FromInt(3), fixed.FromInt(4))
	if got := m.MaxRadius(); got != fixed.FromInt(7) {
		t.Errorf("MaxRadius() = %v, want %v", got, fixed.FromInt(7))
	}
}
