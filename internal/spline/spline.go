// Package spline flattens cubic and quadratic Bezier curves into the
// line segments a path.Path can hold, via iterative adaptive de
// Casteljau subdivision. Both variants carry the subdivision shift
// forward from one outer-loop iteration to the next: a curve's
// curvature tends to change slowly along its length, so the shift
// that worked for the last segment is usually close to right for the
// next one, and starting the search over at a conservative value on
// every iteration would waste most of its steps re-discovering that.
package spline

import (
	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/path"
	"github.com/twin-windows/twingo/internal/twconfig"
)

type cubic struct{ a, b, c, d path.SPoint }

type quad struct{ p0, p1, p2 path.SPoint }

func lerp(a, b path.SPoint, shift int) path.SPoint {
	return path.SPoint{
		X: a.X + ((b.X - a.X) >> uint(shift)),
		Y: a.Y + ((b.Y - a.Y) >> uint(shift)),
	}
}

func deCasteljau(s cubic, shift int) (left, right cubic) {
	ab := lerp(s.a, s.b, shift)
	bc := lerp(s.b, s.c, shift)
	cd := lerp(s.c, s.d, shift)
	abbc := lerp(ab, bc, shift)
	bccd := lerp(bc, cd, shift)
	final := lerp(abbc, bccd, shift)

	left = cubic{a: s.a, b: ab, c: abbc, d: final}
	right = cubic{a: final, b: bccd, c: cd, d: s.d}
	return
}

// distanceToLineSquared returns the squared perpendicular distance
// from p to the line through a and b, widened to avoid overflow; this
// is the convex-hull-bound flatness test every builder in this
// package runs against tolerance squared.
func distanceToLineSquared(p, a, b path.SPoint) int64 {
	dx := int64(b.X - a.X)
	dy := int64(b.Y - a.Y)
	px := int64(p.X - a.X)
	py := int64(p.Y - a.Y)
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return px*px + py*py
	}
	cross := dx*py - dy*px
	return (cross * cross) / lenSq
}

func cubicDistanceSquared(s cubic) int64 {
	bdist := distanceToLineSquared(s.b, s.a, s.d)
	cdist := distanceToLineSquared(s.c, s.a, s.d)
	if bdist > cdist {
		return bdist
	}
	return cdist
}

func cubicIsFlat(s cubic, toleranceSq int64) bool {
	return cubicDistanceSquared(s) <= toleranceSq
}

// decomposeCubic walks s iteratively, searching at each step for a
// subdivision shift whose left half is flat, drawing that half's
// endpoint, and continuing with the right half.
func decomposeCubic(p *path.Path, s cubic, toleranceSq int64) {
	sdraw(p, s.a)

	shift := 2
	for !cubicIsFlat(s, toleranceSq) {
		var left, right cubic
		for {
			left, right = deCasteljau(s, shift)
			if cubicIsFlat(left, toleranceSq) {
				if shift > 1 {
					shift--
				}
				break
			}
			shift++
		}
		sdraw(p, left.d)
		s = right
	}

	sdraw(p, s.d)
}

// sdraw draws directly in screen space, bypassing the current
// matrix: by the time a curve reaches this package its control points
// have already been transformed by the caller.
func sdraw(p *path.Path, pt path.SPoint) {
	p.SDraw(pt.X, pt.Y)
}

// Cubic flattens and draws a cubic Bezier curve from the path's
// current point through control points (x1,y1), (x2,y2) to endpoint
// (x3,y3), all already in screen space.
func Cubic(p *path.Path, cfg twconfig.Config, x1, y1, x2, y2, x3, y3 fixed.SFixed) {
	a := p.CurrentSPoint()
	s := cubic{
		a: a,
		b: path.SPoint{X: x1, Y: y1},
		c: path.SPoint{X: x2, Y: y2},
		d: path.SPoint{X: x3, Y: y3},
	}
	tol := int64(cfg.SplineTolerance) * int64(cfg.SplineTolerance)
	decomposeCubic(p, s, tol)
}

func quadDeCasteljau(s quad, shift int) (left, right quad) {
	p01 := lerp(s.p0, s.p1, shift)
	p12 := lerp(s.p1, s.p2, shift)
	p012 := lerp(p01, p12, shift)

	left = quad{p0: s.p0, p1: p01, p2: p012}
	right = quad{p0: p012, p1: p12, p2: s.p2}
	return
}

func quadDistanceSquared(s quad) int64 {
	return distanceToLineSquared(s.p1, s.p0, s.p2)
}

func quadIsFlat(s quad, toleranceSq int64) bool {
	return quadDistanceSquared(s) <= toleranceSq
}

func decomposeQuad(p *path.Path, s quad, toleranceSq int64) {
	sdraw(p, s.p0)

	shift := 2
	for !quadIsFlat(s, toleranceSq) {
		var left, right quad
		for {
			left, right = quadDeCasteljau(s, shift)
			if quadIsFlat(left, toleranceSq) {
				if shift > 1 {
					shift--
				}
				break
			}
			shift++
		}
		sdraw(p, left.p2)
		s = right
	}

	sdraw(p, s.p2)
}

// Quad flattens and draws a quadratic Bezier curve from the path's
// current point through control point (x1,y1) to endpoint (x2,y2),
// all already in screen space.
func Quad(p *path.Path, cfg twconfig.Config, x1, y1, x2, y2 fixed.SFixed) {
	p0 := p.CurrentSPoint()
	s := quad{p0: p0, p1: path.SPoint{X: x1, Y: y1}, p2: path.SPoint{X: x2, Y: y2}}
	tol := int64(cfg.SplineTolerance) * int64(cfg.SplineTolerance)
	decomposeQuad(p, s, tol)
}

// Curve is the user-space entry point for a cubic Bezier: it maps all
// three control points through the path's current matrix, then
// flattens in screen space.
func Curve(p *path.Path, cfg twconfig.Config, x1, y1, x2, y2, x3, y3 fixed.Fixed) {
	m := p.CurrentMatrix()
	Cubic(p, cfg,
		m.TransformX(x1, y1), m.TransformY(x1, y1),
		m.TransformX(x2, y2), m.TransformY(x2, y2),
		m.TransformX(x3, y3), m.TransformY(x3, y3),
	)
}

// QuadCurve is the user-space entry point for a quadratic Bezier.
func QuadCurve(p *path.Path, cfg twconfig.Config, x1, y1, x2, y2 fixed.Fixed) {
	m := p.CurrentMatrix()
	Quad(p, cfg,
		m.TransformX(x1, y1), m.TransformY(x1, y1),
		m.TransformX(x2, y2), m.TransformY(x2, y2),
	)
}
