// Package path implements the window system's path model: a flat
// array of screen-space points with subpath boundary markers, built
// up by move/draw/close calls under a current affine transform. It
// has no vertex-command tags and no generalized storage backends —
// every point it holds has already been mapped into SFixed space by
// the matrix in effect when it was drawn.
package path

import (
	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/transform"
)

// SPoint is a point in screen space, after transformation.
type SPoint struct {
	X, Y fixed.SFixed
}

// CapStyle controls how stroke endpoints are rendered.
type CapStyle int

const (
	CapRound CapStyle = iota
	CapProjecting
)

// FontStyle names the style a path's font state carries; font
// rendering itself lives outside this module's scope, but the path
// state still carries the selection the way the original carries it
// across save/restore.
type FontStyle int

const (
	StyleRoman FontStyle = iota
	StyleBold
	StyleOblique
	StyleBoldOblique
)

// State is the portion of a Path's state that save/restore swaps as
// a unit: the current transform plus the current font and cap
// selections.
type State struct {
	Matrix    transform.Matrix
	FontSize  fixed.Fixed
	FontStyle FontStyle
	CapStyle  CapStyle
}

// DefaultState returns the state a freshly created Path starts with.
func DefaultState() State {
	return State{
		Matrix:    transform.Identity(),
		FontSize:  fixed.FromInt(15),
		FontStyle: StyleRoman,
		CapStyle:  CapRound,
	}
}

// Path accumulates a sequence of subpaths as SFixed points. Points
// are pushed by Move/Draw under the current matrix; consecutive
// duplicate points are dropped, and a subpath that never grows past
// its initial point is discarded when the next Move replaces it;
// Close leaves such a subpath as it is.
type Path struct {
	points []SPoint
	sublen []int

	state State

	// CurX, CurY are the last user-space coordinates passed to Move
	// or Draw, kept independent of the matrix so callers (e.g. the
	// TinyVG decoder) can do relative math without inverting it.
	CurX, CurY fixed.Fixed
}

// New creates an empty path with the default state.
func New() *Path {
	return &Path{state: DefaultState()}
}

func (p *Path) currentSubpathLen() int {
	start := 0
	if len(p.sublen) > 0 {
		start = p.sublen[len(p.sublen)-1]
	}
	return len(p.points) - start
}

// sfinish closes out the current subpath: a subpath of length 0 does
// nothing, a subpath of length exactly 1 is dropped entirely (a lone
// moveto with no draws contributes nothing fillable), anything longer
// records a new boundary.
func (p *Path) sfinish() {
	switch p.currentSubpathLen() {
	case 1:
		p.points = p.points[:len(p.points)-1]
		fallthrough
	case 0:
		return
	}
	p.sublen = append(p.sublen, len(p.points))
}

func (p *Path) sdraw(x, y fixed.SFixed) {
	if p.currentSubpathLen() > 0 {
		last := p.points[len(p.points)-1]
		if last.X == x && last.Y == y {
			return
		}
	}
	p.points = append(p.points, SPoint{X: x, Y: y})
}

func (p *Path) smove(x, y fixed.SFixed) {
	switch p.currentSubpathLen() {
	case 0:
		p.sdraw(x, y)
	case 1:
		p.points[len(p.points)-1] = SPoint{X: x, Y: y}
	default:
		p.sfinish()
		p.sdraw(x, y)
	}
}

// CurrentSPoint returns the last screen-space point drawn, moving to
// the origin first if the path is empty.
func (p *Path) CurrentSPoint() SPoint {
	if len(p.points) == 0 {
		p.Move(0, 0)
	}
	return p.points[len(p.points)-1]
}

func (p *Path) subpathFirstSPoint() SPoint {
	if len(p.points) == 0 {
		p.Move(0, 0)
	}
	start := 0
	if len(p.sublen) > 0 {
		start = p.sublen[len(p.sublen)-1]
	}
	return p.points[start]
}

// Move starts a new subpath at user-space (x, y).
func (p *Path) Move(x, y fixed.Fixed) {
	p.CurX, p.CurY = x, y
	p.smove(p.state.Matrix.TransformX(x, y), p.state.Matrix.TransformY(x, y))
}

// RMove starts a new subpath at a displacement from the current point.
func (p *Path) RMove(dx, dy fixed.Fixed) {
	here := p.CurrentSPoint()
	p.smove(here.X+p.state.Matrix.TransformDX(dx, dy), here.Y+p.state.Matrix.TransformDY(dx, dy))
}

// Draw appends a line to user-space (x, y).
func (p *Path) Draw(x, y fixed.Fixed) {
	p.CurX, p.CurY = x, y
	p.sdraw(p.state.Matrix.TransformX(x, y), p.state.Matrix.TransformY(x, y))
}

// SDraw appends a line directly in screen space, bypassing the
// current matrix. Used by curve flattening, whose control points are
// transformed once up front rather than per sample.
func (p *Path) SDraw(x, y fixed.SFixed) {
	p.sdraw(x, y)
}

// RDraw appends a line to a displacement from the current point.
func (p *Path) RDraw(dx, dy fixed.Fixed) {
	here := p.CurrentSPoint()
	p.sdraw(here.X+p.state.Matrix.TransformDX(dx, dy), here.Y+p.state.Matrix.TransformDY(dx, dy))
}

// DrawPolar draws a line to the unit circle point at angle deg, used
// by arc subdivision under a matrix already scaled/translated to the
// arc's ellipse.
func (p *Path) DrawPolar(deg fixed.Angle) {
	s, c := fixed.Sincos(deg)
	p.Draw(c, s)
}

// Close draws back to the first point of the current subpath, if it
// has at least two points.
func (p *Path) Close() {
	switch p.currentSubpathLen() {
	case 0, 1:
		return
	default:
		f := p.subpathFirstSPoint()
		p.sdraw(f.X, f.Y)
	}
}

// Empty discards all points and subpath boundaries, keeping state.
func (p *Path) Empty() {
	p.points = p.points[:0]
	p.sublen = p.sublen[:0]
}

// Bounds computes the path's bounding box in integer device space,
// rounding the right/bottom edges up so the box fully covers every
// point.
func (p *Path) Bounds() (left, top, right, bottom int) {
	l, t := fixed.SFixed(1<<30 - 1), fixed.SFixed(1<<30-1)
	r, b := fixed.SFixed(-(1 << 30)), fixed.SFixed(-(1 << 30))
	for _, pt := range p.points {
		if pt.X < l {
			l = pt.X
		}
		if pt.X > r {
			r = pt.X
		}
		if pt.Y < t {
			t = pt.Y
		}
		if pt.Y > b {
			b = pt.Y
		}
	}
	if l >= r || t >= b {
		return 0, 0, 0, 0
	}
	return l.Trunc(), t.Trunc(), r.Ceil().Trunc(), b.Ceil().Trunc()
}

// Append copies src's points into dst, preserving src's subpath
// boundaries as fresh boundaries in dst (so appending a multi-subpath
// source keeps each subpath distinct rather than merging them).
func (dst *Path) Append(src *Path) {
	s := 0
	for pidx, pt := range src.points {
		if s < len(src.sublen) && pidx == src.sublen[s] {
			dst.sfinish()
			s++
		}
		dst.sdraw(pt.X, pt.Y)
	}
}

// Save returns a copy of the path's current state, for later Restore.
func (p *Path) Save() State { return p.state }

// Restore replaces the path's state (matrix, font, cap) wholesale.
func (p *Path) Restore(s State) { p.state = s }

// CurrentMatrix returns the path's active transform.
func (p *Path) CurrentMatrix() transform.Matrix { return p.state.Matrix }

// SetMatrix replaces the path's active transform wholesale.
func (p *Path) SetMatrix(m transform.Matrix) { p.state.Matrix = m }

// Identity resets the path's transform to identity.
func (p *Path) Identity() { p.state.Matrix.SetIdentity() }

// Translate pre-composes a translation onto the path's transform.
func (p *Path) Translate(tx, ty fixed.Fixed) { p.state.Matrix.Translate(tx, ty) }

// Scale pre-composes a scale onto the path's transform.
func (p *Path) Scale(sx, sy fixed.Fixed) { p.state.Matrix.Scale(sx, sy) }

// Rotate pre-composes a rotation onto the path's transform.
func (p *Path) Rotate(a fixed.Angle) { p.state.Matrix.Rotate(a) }

func (p *Path) SetFontSize(sz fixed.Fixed)    { p.state.FontSize = sz }
func (p *Path) CurrentFontSize() fixed.Fixed  { return p.state.FontSize }
func (p *Path) SetFontStyle(s FontStyle)      { p.state.FontStyle = s }
func (p *Path) CurrentFontStyle() FontStyle   { return p.state.FontStyle }
func (p *Path) SetCapStyle(c CapStyle)        { p.state.CapStyle = c }
func (p *Path) CurrentCapStyle() CapStyle     { return p.state.CapStyle }

// Points exposes the path's point array and subpath boundary list for
// callers (strokers, rasterizer bridges) that need to walk it
// directly without copying. The returned slices alias the path's
// internal storage and must be treated as read-only.
func (p *Path) Points() ([]SPoint, []int) { return p.points, p.sublen }
