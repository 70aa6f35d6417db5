package tinyvg

import (
	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/sink"
)

// fillHeader is the (style, count) pair every FILL_* command starts
// with.
type fillHeader struct {
	style Style
	size  int
}

// lineHeader is the (style, line width, count) triple every
// DRAW_LINE_* command starts with.
type lineHeader struct {
	style     Style
	lineWidth fixed.Fixed
	size      int
}

// lineFillHeader is the (fill style, line style, line width, count)
// quadruple the OUTLINE_FILL_* commands start with: the count and the
// line style kind are packed into a single leading byte rather than
// read as a separate VarUInt, unlike fillHeader/lineHeader; the fill
// style kind comes from the command byte.
type lineFillHeader struct {
	fillStyle Style
	lineStyle Style
	lineWidth fixed.Fixed
	size      int
}

func (c *ctx) parseGradient() (Gradient, error) {
	var g Gradient
	p0, err := c.readPoint()
	if err != nil {
		return g, err
	}
	g.X0, g.Y0 = p0.x, p0.y
	p1, err := c.readPoint()
	if err != nil {
		return g, err
	}
	g.X1, g.Y1 = p1.x, p1.y

	c0, err := c.readVarUint()
	if err != nil {
		return g, err
	}
	if int(c0) > len(c.colors) {
		return g, newErr("parseGradient", ErrInvalidFormat, nil)
	}
	g.Color0 = c0

	c1, err := c.readVarUint()
	if err != nil {
		return g, err
	}
	if int(c1) > len(c.colors) {
		return g, newErr("parseGradient", ErrInvalidFormat, nil)
	}
	g.Color1 = c1
	return g, nil
}

func (c *ctx) parseStyle(kind StyleKind) (Style, error) {
	s := Style{Kind: kind}
	switch kind {
	case StyleFlat:
		flat, err := c.readVarUint()
		if err != nil {
			return s, err
		}
		s.Flat = flat
	case StyleLinear, StyleRadial:
		g, err := c.parseGradient()
		if err != nil {
			return s, err
		}
		s.Gradient = g
	default:
		return s, newErr("parseStyle", ErrInvalidFormat, nil)
	}
	return s, nil
}

func (c *ctx) parseFillHeader(kind StyleKind) (fillHeader, error) {
	var h fillHeader
	u, err := c.readVarUint()
	if err != nil {
		return h, err
	}
	h.size = int(u) + 1
	style, err := c.parseStyle(kind)
	if err != nil {
		return h, err
	}
	h.style = style
	return h, nil
}

func (c *ctx) parseLineHeader(kind StyleKind) (lineHeader, error) {
	var h lineHeader
	u, err := c.readVarUint()
	if err != nil {
		return h, err
	}
	h.size = int(u) + 1
	style, err := c.parseStyle(kind)
	if err != nil {
		return h, err
	}
	h.style = style
	lw, err := c.readUnit()
	if err != nil {
		return h, err
	}
	h.lineWidth = lw
	return h, nil
}

func (c *ctx) parseLineFillHeader(kind StyleKind) (lineFillHeader, error) {
	var h lineFillHeader
	d, err := c.readByte()
	if err != nil {
		return h, err
	}
	h.size = int(d&0x3F) + 1
	fillStyle, err := c.parseStyle(kind)
	if err != nil {
		return h, err
	}
	h.fillStyle = fillStyle
	lineStyle, err := c.parseStyle(StyleKind((d >> 6) & 0x3))
	if err != nil {
		return h, err
	}
	h.lineStyle = lineStyle
	lw, err := c.readUnit()
	if err != nil {
		return h, err
	}
	h.lineWidth = lw
	return h, nil
}

// styleColor resolves a style to the single color it ultimately
// paints with: its flat index, or its gradient's first stop. Only
// Color0 of a gradient is ever honored, matching the TODO markers on
// _fill_path_with_style/_stroke_path_with_style in the original.
func (c *ctx) styleColor(s Style) sink.ARGB32 {
	switch s.Kind {
	case StyleLinear, StyleRadial:
		return c.color(s.Gradient.Color0)
	default:
		return c.color(s.Flat)
	}
}
