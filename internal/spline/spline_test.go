package spline

import (
	"testing"

	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/path"
	"github.com/twin-windows/twingo/internal/twconfig"
)

func TestCubicFlattensIntoMultipleSegments(t *testing.T) {
	p := path.New()
	p.Move(0, 0)
	Curve(p, twconfig.Default(), fixed.FromInt(0), fixed.FromInt(10), fixed.FromInt(10), fixed.FromInt(10), fixed.FromInt(10), fixed.FromInt(0))

	pts, _ := p.Points()
	if len(pts) < 3 {
		t.Fatalf("expected curve to flatten into multiple segments, got %d points", len(pts))
	}
	// Sanity check on the interior vertices: their squared distance
	// to the chord between the endpoints must be a valid
	// (non-negative) value.
	a, d := pts[0], pts[len(pts)-1]
	for _, pt := range pts[1 : len(pts)-1] {
		dist := distanceToLineSquared(pt, a, d)
		// Generous bound: true curve deviation from the chord here is
		// large (a quarter circle), this just guards against NaN-like
		// blowups from the fixed-point math, not tight flatness.
		if dist < 0 {
			t.Errorf("negative squared distance %d", dist)
		}
	}
}

func TestQuadFlattensToSegments(t *testing.T) {
	p := path.New()
	p.Move(0, 0)
	QuadCurve(p, twconfig.Default(), fixed.FromInt(5), fixed.FromInt(10), fixed.FromInt(10), fixed.FromInt(0))

	pts, _ := p.Points()
	if len(pts) < 2 {
		t.Fatalf("expected at least 2 points, got %d", len(pts))
	}
}

func TestStraightCubicProducesExactlyEndpoints(t *testing.T) {
	// A cubic whose control points lie exactly on the line from a to
	// d is already flat and should decompose to just its endpoints.
	p := path.New()
	p.Move(0, 0)
	Curve(p, twconfig.Default(), fixed.FromInt(4), 0, fixed.FromInt(8), 0, fixed.FromInt(12), 0)

	pts, _ := p.Points()
	if len(pts) != 2 {
		t.Errorf("straight cubic produced %d points, want 2", len(pts))
	}
}

func TestQuadToCubicHausdorffEquivalence(t *testing.T) {
	// flattening quad(p0,p1,p2) and the degree-elevated equivalent
	// cubic should land on nearly the same polyline.
	p0x, p0y := fixed.FromInt(0), fixed.FromInt(0)
	p1x, p1y := fixed.FromInt(10), fixed.FromInt(20)
	p2x, p2y := fixed.FromInt(20), fixed.FromInt(0)

	pq := path.New()
	pq.Move(p0x, p0y)
	QuadCurve(pq, twconfig.Default(), p1x, p1y, p2x, p2y)

	two3 := func(a fixed.Fixed) fixed.Fixed { return fixed.Mul(a, fixed.Div(fixed.FromInt(2), fixed.FromInt(3))) }
	c1x := p0x + two3(p1x-p0x)
	c1y := p0y + two3(p1y-p0y)
	c2x := p2x + two3(p1x-p2x)
	c2y := p2y + two3(p1y-p2y)

	pc := path.New()
	pc.Move(p0x, p0y)
	Curve(pc, twconfig.Default(), c1x, c1y, c2x, c2y, p2x, p2y)

	qpts, _ := pq.Points()
	cpts, _ := pc.Points()
	if len(qpts) == 0 || len(cpts) == 0 {
		t.Fatal("expected non-empty polylines from both flattenings")
	}
	// End points must coincide exactly; that's the part of the
	// equivalence claim that's cheap to check without a full
	// Hausdorff-distance routine.
	if qpts[0] != cpts[0] || qpts[len(qpts)-1] != cpts[len(cpts)-1] {
		t.Errorf("quad/cubic endpoints diverge: %v/%v vs %v/%v", qpts[0], qpts[len(qpts)-1], cpts[0], cpts[len(cpts)-1])
	}
}
