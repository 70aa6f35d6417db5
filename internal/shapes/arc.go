// Package shapes builds geometric primitives directly onto a
// path.Path under its current transform: rectangles, rounded
// rectangles, lozenges, tabs, circles, ellipses, and SVG-style
// endpoint arcs. Every builder is a push, not a vertex generator —
// it draws straight into the path the way the window system's own
// path builders do, rather than handing back an iterator.
package shapes

import (
	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/path"
	"github.com/twin-windows/twingo/internal/twconfig"
)

// Arc draws a polygonal approximation of the unit arc centered at
// (x, y) with radii (rx, ry), from angle start through extent, onto
// p under a local translate+scale that is restored on return.
//
// The number of sides is derived from the current matrix's maximum
// radius divided by cfg's subpixel tolerance, clamped to
// cfg.MaxArcSides and rounded up to a power of two, so the step angle
// divides evenly into the 4096-unit angle scale. Boundary samples are
// drawn explicitly at start and start+extent even when they fall off
// the step grid, so adjoining arcs never show a seam.
func Arc(p *path.Path, cfg twconfig.Config, x, y, rx, ry fixed.Fixed, start, extent fixed.Angle) {
	save := p.CurrentMatrix()
	p.Translate(x, y)
	p.Scale(rx, ry)

	m := p.CurrentMatrix()
	maxRadius := m.MaxRadius()
	sides := int32(maxRadius / cfg.SplineTolerance.ToFixed())
	if maxSides := int32(cfg.MaxArcSides); sides > maxSides {
		sides = maxSides
	}

	var n uint
	if sides > 4 {
		n = uint(bitLen32(uint32(sides - 1)))
	} else {
		n = 2
	}

	step := fixed.Angle(int32(fixed.Angle360) >> n)
	inc := step
	epsilon := fixed.Angle(1)
	if extent < 0 {
		inc = -inc
		epsilon = -1
	}

	first := (start + inc - epsilon) &^ (step - 1)
	last := (start + extent - inc + epsilon) &^ (step - 1)

	if first != start {
		p.DrawPolar(start)
	}
	for a := first; a != last; a += inc {
		p.DrawPolar(a)
	}
	// The loop never draws last itself, so the end sample is drawn
	// here unconditionally; Draw drops it if it repeats the last point.
	p.DrawPolar(start + extent)

	p.SetMatrix(save)
}

// bitLen32 returns the position (1-based) of the highest set bit of
// v, matching 31-clz(v)+1 for v > 0.
func bitLen32(v uint32) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}
