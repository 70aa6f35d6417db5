// Package refsink is a minimal sink.Sink built on golang.org/x/image,
// grounded on the scan-conversion pattern shiny/iconvg's Rasterizer
// uses (golang.org/x/image/vector for path-to-mask conversion,
// image/draw to composite). It exists only so this module's own
// integration tests have a real Pixmap/Sink pair to render into and
// assert non-trivial output from; it is not part of the TinyVG/path
// core and carries the one third-party dependency that core has none
// of.
package refsink

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/path"
	"github.com/twin-windows/twingo/internal/sink"
	"github.com/twin-windows/twingo/internal/twconfig"
)

// Pixmap wraps a standard image.RGBA to satisfy sink.Pixmap.
type Pixmap struct {
	Img *image.RGBA
}

// NewPixmap creates a transparent w x h Pixmap.
func NewPixmap(w, h int) *Pixmap {
	return &Pixmap{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (p *Pixmap) Width() int  { return p.Img.Bounds().Dx() }
func (p *Pixmap) Height() int { return p.Img.Bounds().Dy() }

// Sink rasterizes fills with golang.org/x/image/vector and
// approximates strokes as a chain of per-segment rectangles, then
// composites either result onto the destination with image/draw. Cfg
// governs whether the rasterized mask is kept antialiased or
// thresholded to hard edges before compositing.
type Sink struct {
	Cfg twconfig.Config
}

// New returns a Sink configured with twconfig.Default, which
// antialiases.
func New() *Sink { return &Sink{Cfg: twconfig.Default()} }

// NewWithConfig returns a Sink honoring cfg's Antialias setting.
func NewWithConfig(cfg twconfig.Config) *Sink { return &Sink{Cfg: cfg} }

func toVec(pt path.SPoint) (float32, float32) {
	// path.SPoint carries SFixedShift=8 fractional bits.
	return float32(pt.X) / float32(fixed.SFixedOne), float32(pt.Y) / float32(fixed.SFixedOne)
}

// subpathEnds returns sublens with one more boundary appended for the
// trailing subpath: Path.Points's sublen only records boundaries a
// later Move or Append has finalized, so the subpath still being built
// when Points is called is never in it and would otherwise be dropped
// silently.
func subpathEnds(pts []path.SPoint, sublens []int) []int {
	if len(sublens) > 0 && sublens[len(sublens)-1] == len(pts) {
		return sublens
	}
	return append(append([]int{}, sublens...), len(pts))
}

func (s *Sink) PaintPath(dst sink.Pixmap, argb sink.ARGB32, p *path.Path) {
	pm, ok := dst.(*Pixmap)
	if !ok {
		return
	}
	w, h := pm.Width(), pm.Height()
	var rz vector.Rasterizer
	rz.Reset(w, h)

	pts, sublens := p.Points()
	start := 0
	for _, end := range subpathEnds(pts, sublens) {
		sub := pts[start:end]
		start = end
		if len(sub) == 0 {
			continue
		}
		x0, y0 := toVec(sub[0])
		rz.MoveTo(x0, y0)
		for _, pt := range sub[1:] {
			x, y := toVec(pt)
			rz.LineTo(x, y)
		}
		rz.ClosePath()
	}
	composite(pm.Img, &rz, argb, s.Cfg.Antialias)
}

func (s *Sink) PaintStroke(dst sink.Pixmap, argb sink.ARGB32, p *path.Path, penWidth fixed.Fixed) {
	pm, ok := dst.(*Pixmap)
	if !ok {
		return
	}
	w, h := pm.Width(), pm.Height()
	half := float32(penWidth) / float32(fixed.One) / 2
	if half <= 0 {
		half = 0.5
	}
	var rz vector.Rasterizer
	rz.Reset(w, h)

	pts, sublens := p.Points()
	start := 0
	for _, end := range subpathEnds(pts, sublens) {
		sub := pts[start:end]
		start = end
		for i := 0; i+1 < len(sub); i++ {
			ax, ay := toVec(sub[i])
			bx, by := toVec(sub[i+1])
			dx, dy := bx-ax, by-ay
			length := float32(1)
			if d := dx*dx + dy*dy; d > 0 {
				length = sqrt32(d)
			}
			nx, ny := -dy/length*half, dx/length*half
			rz.MoveTo(ax+nx, ay+ny)
			rz.LineTo(bx+nx, by+ny)
			rz.LineTo(bx-nx, by-ny)
			rz.LineTo(ax-nx, ay-ny)
			rz.ClosePath()
		}
	}
	composite(pm.Img, &rz, argb, s.Cfg.Antialias)
}

func sqrt32(v float32) float32 {
	// Small fixed-iteration Newton sqrt: avoids pulling in math.Sqrt's
	// float64 round trip for what is already an approximate stroke.
	if v == 0 {
		return 0
	}
	x := v
	for i := 0; i < 6; i++ {
		x = 0.5 * (x + v/x)
	}
	return x
}

// composite draws rz's coverage onto dst in argb. When antialias is
// false the mask is thresholded to fully opaque or fully transparent
// per pixel first, giving hard edges instead of the rasterizer's
// native coverage-based antialiasing.
func composite(dst *image.RGBA, rz *vector.Rasterizer, argb sink.ARGB32, antialias bool) {
	b := dst.Bounds()
	mask := image.NewAlpha(b)
	rz.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	if !antialias {
		for i, v := range mask.Pix {
			if v >= 128 {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	src := &image.Uniform{C: color.NRGBA{R: argb.R(), G: argb.G(), B: argb.B(), A: argb.A()}}
	draw.DrawMask(dst, b, src, image.Point{}, mask, image.Point{}, draw.Over)
}
