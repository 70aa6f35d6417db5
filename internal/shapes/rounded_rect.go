package shapes

import (
	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/path"
	"github.com/twin-windows/twingo/internal/twconfig"
)

// Rectangle draws an axis-aligned rectangle with corner (x, y) and
// size (w, h), closed.
func Rectangle(p *path.Path, x, y, w, h fixed.Fixed) {
	p.Move(x, y)
	p.Draw(x+w, y)
	p.Draw(x+w, y+h)
	p.Draw(x, y+h)
	p.Close()
}

// RoundedRectangle draws a rectangle with quarter-circle corners of
// radius (xRadius, yRadius), starting on the left edge at the foot of
// the top-left corner and walking the corners in increasing angle:
// top-left, top-right, bottom-right, bottom-left (clockwise on a
// y-down screen).
func RoundedRectangle(p *path.Path, cfg twconfig.Config, x, y, w, h, xRadius, yRadius fixed.Fixed) {
	save := p.CurrentMatrix()
	p.Translate(x, y)

	p.Move(0, yRadius)
	Arc(p, cfg, xRadius, yRadius, xRadius, yRadius, fixed.Angle180, fixed.Angle90)
	p.Draw(w-xRadius, 0)
	Arc(p, cfg, w-xRadius, yRadius, xRadius, yRadius, fixed.Angle270, fixed.Angle90)
	p.Draw(w, h-yRadius)
	Arc(p, cfg, w-xRadius, h-yRadius, xRadius, yRadius, fixed.Angle0, fixed.Angle90)
	p.Draw(xRadius, h)
	Arc(p, cfg, xRadius, h-yRadius, xRadius, yRadius, fixed.Angle90, fixed.Angle90)
	p.Close()

	p.SetMatrix(save)
}

// Lozenge draws a rounded rectangle whose corner radius is half the
// shorter side, so the shorter pair of edges becomes a semicircle.
func Lozenge(p *path.Path, cfg twconfig.Config, x, y, w, h fixed.Fixed) {
	var radius fixed.Fixed
	if w > h {
		radius = h / 2
	} else {
		radius = w / 2
	}
	RoundedRectangle(p, cfg, x, y, w, h, radius, radius)
}

// Tab draws a rectangle with rounded top corners and square bottom
// corners, the shape used for window/notebook tab decorations.
func Tab(p *path.Path, cfg twconfig.Config, x, y, w, h, xRadius, yRadius fixed.Fixed) {
	save := p.CurrentMatrix()
	p.Translate(x, y)

	p.Move(0, yRadius)
	Arc(p, cfg, xRadius, yRadius, xRadius, yRadius, fixed.Angle180, fixed.Angle90)
	p.Draw(w-xRadius, 0)
	Arc(p, cfg, w-xRadius, yRadius, xRadius, yRadius, fixed.Angle270, fixed.Angle90)
	p.Draw(w, h)
	p.Draw(0, h)
	p.Close()

	p.SetMatrix(save)
}
