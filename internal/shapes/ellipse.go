package shapes

import "github.com/twin-windows/twingo/internal/fixed"
import "github.com/twin-windows/twingo/internal/path"
import "github.com/twin-windows/twingo/internal/twconfig"

// Ellipse draws a full ellipse centered at (x, y).
func Ellipse(p *path.Path, cfg twconfig.Config, x, y, rx, ry fixed.Fixed) {
	p.Move(x+rx, y)
	Arc(p, cfg, x, y, rx, ry, 0, fixed.Angle360)
	p.Close()
}

// Circle draws a full circle centered at (x, y).
func Circle(p *path.Path, cfg twconfig.Config, x, y, radius fixed.Fixed) {
	Ellipse(p, cfg, x, y, radius, radius)
}

// VectorAngle returns the signed angle from vector (ux,uy) to vector
// (vx,vy): the magnitude comes from Acos of the normalized dot
// product, the sign from the cross product.
func VectorAngle(ux, uy, vx, vy fixed.Fixed) fixed.Angle {
	dot := fixed.Mul(ux, vx) + fixed.Mul(uy, vy)
	ua := fixed.Sqrt(fixed.Mul(ux, ux) + fixed.Mul(uy, uy))
	va := fixed.Sqrt(fixed.Mul(vx, vx) + fixed.Mul(vy, vy))
	cosTheta := fixed.Div(dot, fixed.Mul(ua, va))
	cross := fixed.Mul(ux, vy) - fixed.Mul(uy, vx)
	angle := fixed.Acos(cosTheta)
	if cross < 0 {
		return -angle
	}
	return angle
}

// EllipseArcParams is the recovered center-parameterization of an SVG
// endpoint elliptical arc: the ellipse's center plus the start angle
// and signed angular extent to sweep from it.
type EllipseArcParams struct {
	CX, CY       fixed.Fixed
	Start, Extent fixed.Angle
}

// GetCenterParameters implements the SVG "Implementation Notes"
// endpoint-to-center conversion for an elliptical arc from (x1,y1) to
// (x2,y2) with radii (rx,ry) rotated by phi, selecting between the
// four solutions via the large-arc and sweep flags.
//
// The sweep flag is inverted on entry (fs = !fs) before anything else
// runs. That inversion is kept deliberately: it is what makes this
// arc's sweep direction agree with the ARC_CIRCLE command's sweep bit
// elsewhere in this module, and removing it would flip every arc this
// function draws relative to the convention the rest of the decoder
// assumes.
func GetCenterParameters(x1, y1, x2, y2 fixed.Fixed, largeArc, sweep bool, rx, ry fixed.Fixed, phi fixed.Angle) EllipseArcParams {
	fs := !sweep

	sinPhi, cosPhi := fixed.Sincos(phi)

	x := fixed.Mul(cosPhi, fixed.Mul(x1-x2, fixed.Half)) +
		fixed.Mul(sinPhi, fixed.Mul(y1-y2, fixed.Half))
	y := fixed.Mul(-sinPhi, fixed.Mul(x1-x2, fixed.Half)) +
		fixed.Mul(cosPhi, fixed.Mul(y1-y2, fixed.Half))

	px := fixed.Mul(x, x)
	py := fixed.Mul(y, y)
	prx := fixed.Mul(rx, rx)
	pry := fixed.Mul(ry, ry)

	l := fixed.Div(px, prx) + fixed.Div(py, pry)
	if l > fixed.One {
		sqrtL := fixed.Sqrt(l)
		rx = fixed.Mul(sqrtL, rx.Abs())
		ry = fixed.Mul(sqrtL, ry.Abs())
		prx = fixed.Mul(rx, rx)
		pry = fixed.Mul(ry, ry)
	} else {
		rx = rx.Abs()
		ry = ry.Abs()
	}

	sign := fixed.Fixed(1)
	if largeArc == fs {
		sign = -1
	}

	numerator := fixed.Mul(prx, pry) - fixed.Mul(prx, py) - fixed.Mul(pry, px)
	denominator := fixed.Mul(prx, py) + fixed.Mul(pry, px)
	// sign is a plain +-1 scalar, not a Q16.16 operand, so it is
	// applied with ordinary multiplication rather than Mul.
	m := sign * fixed.Sqrt(fixed.Div(numerator, denominator))

	ccx := fixed.Mul(m, fixed.Div(fixed.Mul(rx, y), ry))
	ccy := fixed.Mul(m, fixed.Div(fixed.Mul(-ry, x), rx))

	var ret EllipseArcParams
	ret.CX = fixed.Mul(cosPhi, ccx) - fixed.Mul(sinPhi, ccy) + fixed.Mul(x1+x2, fixed.Half)
	ret.CY = fixed.Mul(sinPhi, ccx) + fixed.Mul(cosPhi, ccy) + fixed.Mul(y1+y2, fixed.Half)

	ret.Start = VectorAngle(fixed.One, 0, fixed.Div(x-ccx, rx), fixed.Div(y-ccy, ry))

	dTheta := VectorAngle(
		fixed.Div(x-ccx, rx), fixed.Div(y-ccy, ry),
		fixed.Div(-x-ccx, rx), fixed.Div(-y-ccy, ry),
	)

	if !fs && dTheta > fixed.Angle0 {
		dTheta -= fixed.Angle360
	}
	if fs && dTheta < fixed.Angle0 {
		dTheta += fixed.Angle360
	}

	ret.Start %= fixed.Angle360
	dTheta %= fixed.Angle360
	ret.Extent = dTheta
	return ret
}

// ArcEllipse draws an SVG-style endpoint elliptical arc from
// (curX,curY) to (targetX,targetY), rotated by rotation, selecting
// one of the four candidate arcs via largeArc/sweep. It recovers the
// arc's center and angular extent via GetCenterParameters, then draws
// it as a rotated Arc wrapped in a local translate-rotate-translate
// so the arc sweeps about the ellipse's own center rather than the
// path's origin.
func ArcEllipse(p *path.Path, cfg twconfig.Config, largeArc, sweep bool, rx, ry, curX, curY, targetX, targetY fixed.Fixed, rotation fixed.Angle) {
	para := GetCenterParameters(curX, curY, targetX, targetY, largeArc, sweep, rx, ry, rotation)

	save := p.CurrentMatrix()
	p.Translate(para.CX, para.CY)
	p.Rotate(rotation)
	p.Translate(-para.CX, -para.CY)
	Arc(p, cfg, para.CX, para.CY, rx, ry, para.Start, para.Extent)
	p.SetMatrix(save)
}

// ArcCircle draws an SVG-style endpoint circular arc. It delegates to
// ArcEllipse with rx=ry=radius and no rotation: the ellipse path is
// the reference implementation, and the circle case is just its
// rotation-free specialization.
func ArcCircle(p *path.Path, cfg twconfig.Config, largeArc, sweep bool, radius, curX, curY, targetX, targetY fixed.Fixed) {
	ArcEllipse(p, cfg, largeArc, sweep, radius, radius, curX, curY, targetX, targetY, 0)
}
