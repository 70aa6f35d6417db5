package tinyvg

import (
	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/shapes"
)

// defaultLineWidthFill and defaultLineWidthThin are the fallback pen
// widths the original substitutes when a command's encoded line width
// is exactly zero: OUTLINE_FILL_PATH falls back to a visible 0.1 unit
// pen; OUTLINE_FILL_POLYGON, OUTLINE_FILL_RECTANGLES, DRAW_LINES,
// DRAW_LINE_LOOP and DRAW_LINE_STRIP fall back to a nearly-invisible
// 0.01 unit pen. DRAW_LINE_PATH passes a zero width through unchanged.
var (
	defaultLineWidthFill = fixed.Div(fixed.One, fixed.FromInt(10))
	defaultLineWidthThin = fixed.Div(fixed.One, fixed.FromInt(100))
)

func (c *ctx) fillPathWithStyle(s Style) {
	c.sinkImpl.PaintPath(c.pix, c.styleColor(s), c.path)
}

func (c *ctx) strokePathWithStyle(s Style, penWidth fixed.Fixed) {
	c.sinkImpl.PaintStroke(c.pix, c.styleColor(s), c.path, penWidth)
}

type rect struct{ x, y, w, h fixed.Fixed }

func (c *ctx) parseRect() (rect, error) {
	p, err := c.readPoint()
	if err != nil {
		return rect{}, err
	}
	w, err := c.readUnit()
	if err != nil {
		return rect{}, err
	}
	h, err := c.readUnit()
	if err != nil {
		return rect{}, err
	}
	return rect{p.x, p.y, w, h}, nil
}

func (c *ctx) parseFillPolygon(size int, style Style) error {
	first, err := c.readPoint()
	if err != nil {
		return wrapIO("parseFillPolygon", err)
	}
	c.path.Move(first.x, first.y)
	for i := 1; i < size; i++ {
		pt, err := c.readPoint()
		if err != nil {
			return wrapIO("parseFillPolygon", err)
		}
		c.path.Draw(pt.x, pt.y)
	}
	c.path.Close()
	c.fillPathWithStyle(style)
	c.path.Empty()
	return nil
}

func (c *ctx) parseFillRectangles(size int, style Style) error {
	for i := 0; i < size; i++ {
		r, err := c.parseRect()
		if err != nil {
			return wrapIO("parseFillRectangles", err)
		}
		shapes.Rectangle(c.path, r.x, r.y, r.w, r.h)
		c.fillPathWithStyle(style)
		c.path.Empty()
	}
	return nil
}

func (c *ctx) parseLineFillRectangles(size int, fillStyle, lineStyle Style, lineWidth fixed.Fixed) error {
	if lineWidth == 0 {
		lineWidth = defaultLineWidthThin
	}
	for i := 0; i < size; i++ {
		r, err := c.parseRect()
		if err != nil {
			return wrapIO("parseLineFillRectangles", err)
		}
		shapes.Rectangle(c.path, r.x, r.y, r.w, r.h)
		c.fillPathWithStyle(fillStyle)
		c.strokePathWithStyle(lineStyle, lineWidth)
		c.path.Empty()
	}
	return nil
}

func (c *ctx) readPathSizes(count int) ([]int, error) {
	if count > c.maxTapeCount() {
		return nil, newErr("readPathSizes", ErrOutOfMemory, nil)
	}
	sizes := make([]int, count)
	for i := range sizes {
		u, err := c.readVarUint()
		if err != nil {
			return nil, err
		}
		sizes[i] = int(u) + 1
	}
	return sizes, nil
}

func (c *ctx) parseFillPaths(size int, style Style) error {
	sizes, err := c.readPathSizes(size)
	if err != nil {
		return wrapIO("parseFillPaths", err)
	}
	for _, n := range sizes {
		if err := c.parsePath(n); err != nil {
			return err
		}
	}
	c.fillPathWithStyle(style)
	c.path.Empty()
	return nil
}

func (c *ctx) parseLinePaths(size int, lineStyle Style, lineWidth fixed.Fixed) error {
	sizes, err := c.readPathSizes(size)
	if err != nil {
		return wrapIO("parseLinePaths", err)
	}
	for _, n := range sizes {
		if err := c.parsePath(n); err != nil {
			return err
		}
	}
	c.strokePathWithStyle(lineStyle, lineWidth)
	c.path.Empty()
	return nil
}

func (c *ctx) parseLineFillPaths(size int, fillStyle, lineStyle Style, lineWidth fixed.Fixed) error {
	sizes, err := c.readPathSizes(size)
	if err != nil {
		return wrapIO("parseLineFillPaths", err)
	}
	for _, n := range sizes {
		if err := c.parsePath(n); err != nil {
			return err
		}
	}
	if lineWidth == 0 {
		lineWidth = defaultLineWidthFill
	}
	c.fillPathWithStyle(fillStyle)
	c.strokePathWithStyle(lineStyle, lineWidth)
	c.path.Empty()
	return nil
}

func (c *ctx) parsePolyline(size int, lineStyle Style, lineWidth fixed.Fixed, closed bool) error {
	first, err := c.readPoint()
	if err != nil {
		return wrapIO("parsePolyline", err)
	}
	c.path.Move(first.x, first.y)
	for i := 1; i < size; i++ {
		pt, err := c.readPoint()
		if err != nil {
			return wrapIO("parsePolyline", err)
		}
		c.path.Draw(pt.x, pt.y)
	}
	if closed {
		c.path.Close()
	}
	if lineWidth == 0 {
		lineWidth = defaultLineWidthThin
	}
	c.strokePathWithStyle(lineStyle, lineWidth)
	c.path.Empty()
	return nil
}

// parseLineFillPolyline draws an outline-filled polygon. The original
// reads every point past the first into a loop-local variable without
// ever calling twin_path_draw on it, so only the first point ever
// reaches the path before it is filled and stroked -- a bug that would
// make every OUTLINE_FILL_POLYGON render as a single degenerate point.
// This port draws each point as it is read, the way every sibling
// parser (parsePolyline, parseFillPolygon) already does, since
// reproducing that bug would make the one command meant to showcase
// fill+stroke together render nothing.
func (c *ctx) parseLineFillPolyline(size int, fillStyle, lineStyle Style, lineWidth fixed.Fixed, closed bool) error {
	first, err := c.readPoint()
	if err != nil {
		return wrapIO("parseLineFillPolyline", err)
	}
	c.path.Move(first.x, first.y)
	for i := 1; i < size; i++ {
		pt, err := c.readPoint()
		if err != nil {
			return wrapIO("parseLineFillPolyline", err)
		}
		c.path.Draw(pt.x, pt.y)
	}
	if closed {
		c.path.Close()
	}
	c.fillPathWithStyle(fillStyle)
	if lineWidth == 0 {
		lineWidth = defaultLineWidthThin
	}
	c.strokePathWithStyle(lineStyle, lineWidth)
	c.path.Empty()
	return nil
}

func (c *ctx) parseLines(size int, lineStyle Style, lineWidth fixed.Fixed) error {
	for i := 0; i < size; i++ {
		a, err := c.readPoint()
		if err != nil {
			return wrapIO("parseLines", err)
		}
		c.path.Move(a.x, a.y)
		b, err := c.readPoint()
		if err != nil {
			return wrapIO("parseLines", err)
		}
		c.path.Draw(b.x, b.y)
	}
	if lineWidth == 0 {
		lineWidth = defaultLineWidthThin
	}
	c.strokePathWithStyle(lineStyle, lineWidth)
	c.path.Empty()
	return nil
}

// parseCommands dispatches the command tape until TVG_CMD_END_DOCUMENT,
// matching tvg_parse_commands one-for-one across all ten commands.
func (c *ctx) parseCommands() error {
	for {
		cmd, err := c.readByte()
		if err != nil {
			return wrapIO("parseCommands", err)
		}
		index := cmd & 0x3F
		styleKind := StyleKind((cmd >> 6) & 0x3)

		switch index {
		case cmdEndDocument:
			return nil
		case cmdFillPolygon:
			h, err := c.parseFillHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseFillPolygon(h.size, h.style); err != nil {
				return err
			}
		case cmdFillRectangles:
			h, err := c.parseFillHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseFillRectangles(h.size, h.style); err != nil {
				return err
			}
		case cmdFillPath:
			h, err := c.parseFillHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseFillPaths(h.size, h.style); err != nil {
				return err
			}
		case cmdDrawLines:
			h, err := c.parseLineHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseLines(h.size, h.style, h.lineWidth); err != nil {
				return err
			}
		case cmdDrawLineLoop:
			h, err := c.parseLineHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parsePolyline(h.size, h.style, h.lineWidth, true); err != nil {
				return err
			}
		case cmdDrawLineStrip:
			h, err := c.parseLineHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parsePolyline(h.size, h.style, h.lineWidth, false); err != nil {
				return err
			}
		case cmdDrawLinePath:
			h, err := c.parseLineHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseLinePaths(h.size, h.style, h.lineWidth); err != nil {
				return err
			}
		case cmdOutlineFillPolygon:
			h, err := c.parseLineFillHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseLineFillPolyline(h.size, h.fillStyle, h.lineStyle, h.lineWidth, true); err != nil {
				return err
			}
		case cmdOutlineFillRectangles:
			h, err := c.parseLineFillHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseLineFillRectangles(h.size, h.fillStyle, h.lineStyle, h.lineWidth); err != nil {
				return err
			}
		case cmdOutlineFillPath:
			h, err := c.parseLineFillHeader(styleKind)
			if err != nil {
				return wrapIO("parseCommands", err)
			}
			if err := c.parseLineFillPaths(h.size, h.fillStyle, h.lineStyle, h.lineWidth); err != nil {
				return err
			}
		default:
			return newErr("parseCommands", ErrInvalidFormat, nil)
		}
	}
}
