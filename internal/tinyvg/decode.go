package tinyvg

import (
	"io"

	"github.com/twin-windows/twingo/internal/path"
	"github.com/twin-windows/twingo/internal/sink"
	"github.com/twin-windows/twingo/internal/twconfig"
)

// DocumentDimensions reads just enough of r's header to report the
// document's width and height, without touching the color table or
// any command. Mirrors tvg_document_dimensions, which calls
// tvg_parse_header(&ctx, 1) to stop before the color table.
func DocumentDimensions(r io.Reader) (width, height int, err error) {
	if r == nil {
		return 0, 0, newErr("DocumentDimensions", ErrInvalidArg, nil)
	}
	c := &ctx{r: r}
	if err := c.parseHeader(true); err != nil {
		return 0, 0, err
	}
	return int(c.width), int(c.height), nil
}

// Render decodes r's full document and paints every command onto dst
// through s, using cfg's tunables to bound untrusted allocations.
// Mirrors tvg_render_document.
func Render(r io.Reader, dst sink.Pixmap, s sink.Sink, cfg twconfig.Config) error {
	if r == nil || dst == nil || s == nil {
		return newErr("Render", ErrInvalidArg, nil)
	}
	c := &ctx{r: r, cfg: cfg, pix: dst, sinkImpl: s}
	if err := c.parseHeader(false); err != nil {
		return err
	}
	c.path = path.New()
	if err := c.parseCommands(); err != nil {
		return err
	}
	return nil
}
