package tinyvg

import (
	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/shapes"
	"github.com/twin-windows/twingo/internal/spline"
)

// degreesToAngle converts a degree value, read the same way spatial
// units are, onto the 4096-unit angle scale: rotation * 4096 / 360,
// matching `rotation * TWIN_ANGLE_360 / 360` in the original, truncated
// toward zero the way the C assignment to an integer angle field does.
func degreesToAngle(deg fixed.Fixed) fixed.Angle {
	scaled := fixed.Fixed(int64(deg) * int64(fixed.Angle360) / 360)
	return fixed.Angle(scaled.Int())
}

// parsePath reads one path's sub-command tape of the given segment
// count onto c.path, starting with a move to the path's own leading
// point. Mirrors tvg_parse_path: cur and st are tracked independently
// of the path's own current-point bookkeeping, exactly as the
// original's local cur/st tvg_point_t variables are.
func (c *ctx) parsePath(size int) error {
	start, err := c.readPoint()
	if err != nil {
		return newErr("parsePath", ErrIO, err)
	}
	c.path.Move(start.x, start.y)
	cur := start

	for j := 0; j < size; j++ {
		d, err := c.readByte()
		if err != nil {
			return newErr("parsePath", ErrIO, err)
		}
		// TVG_PATH_CMD_HAS_LINE: a per-segment line-width override
		// bit. The value is read so the tape stays aligned for the
		// following fields, but nothing in this decoder acts on it:
		// the original reads it into a local that is never
		// subsequently used either.
		if (d>>4)&1 != 0 {
			if _, err := c.readUnit(); err != nil {
				return newErr("parsePath", ErrIO, err)
			}
		}

		switch d & 0x7 {
		case pathLine:
			pt, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			c.path.Draw(pt.x, pt.y)
			cur = pt
		case pathHLine:
			x, err := c.readUnit()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			cur = point{x: x, y: cur.y}
			c.path.Draw(cur.x, cur.y)
		case pathVLine:
			y, err := c.readUnit()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			cur = point{x: cur.x, y: y}
			c.path.Draw(cur.x, cur.y)
		case pathCubic:
			ctrl1, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			ctrl2, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			end, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			spline.Curve(c.path, c.effectiveConfig(), ctrl1.x, ctrl1.y, ctrl2.x, ctrl2.y, end.x, end.y)
			cur = end
		case pathArcCircle:
			flags, err := c.readByte()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			radius, err := c.readUnit()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			end, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			shapes.ArcCircle(c.path, c.effectiveConfig(), flags&1 != 0, (flags>>1)&1 != 0, radius, cur.x, cur.y, end.x, end.y)
			cur = end
		case pathArcEllipse:
			flags, err := c.readByte()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			rx, err := c.readUnit()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			ry, err := c.readUnit()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			rotation, err := c.readUnit()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			end, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			shapes.ArcEllipse(c.path, c.effectiveConfig(), flags&1 != 0, (flags>>1)&1 != 0, rx, ry, cur.x, cur.y, end.x, end.y, degreesToAngle(rotation))
			cur = end
		case pathClose:
			c.path.Draw(start.x, start.y)
			cur = start
		case pathQuad:
			ctrl, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			end, err := c.readPoint()
			if err != nil {
				return newErr("parsePath", ErrIO, err)
			}
			spline.QuadCurve(c.path, c.effectiveConfig(), ctrl.x, ctrl.y, end.x, end.y)
			cur = end
		default:
			return newErr("parsePath", ErrInvalidFormat, nil)
		}
	}
	return nil
}
