// Package twingo decodes TinyVG vector graphics and paints them
// through a caller-supplied sink.Sink, the way the window system this
// module is drawn from links its own path/spline/tinyvg packages
// behind a small public surface rather than exposing them directly.
//
// Two entry points cover everything a caller needs:
//
//	w, h, err := twingo.DocumentDimensions(r)
//	err := twingo.Render(r, pixmap, mySink)
//
// Everything else -- the fixed-point substrate, the path model, the
// geometric builders, the spline flattener, the TinyVG decoder itself
// -- lives in internal/ and is reached only through these two calls
// and the sink.Sink/sink.Pixmap interfaces a caller implements.
package twingo

import (
	"io"

	"github.com/twin-windows/twingo/internal/sink"
	"github.com/twin-windows/twingo/internal/tinyvg"
	"github.com/twin-windows/twingo/internal/twconfig"
)

// Re-export the sink package's types at the root so a caller never
// needs to import internal/sink directly to implement one.
type (
	// ARGB32 is a premultiplied 8-bit-per-channel color.
	ARGB32 = sink.ARGB32
	// Pixmap is the destination surface a Sink paints onto.
	Pixmap = sink.Pixmap
	// Sink receives filled and stroked paths and turns them into
	// pixels; implement this to connect twingo to a raster backend.
	Sink = sink.Sink
)

// Re-export the error kinds so a caller can switch on them without
// importing internal/tinyvg.
type (
	ErrorKind = tinyvg.ErrorKind
	Error     = tinyvg.Error
)

const (
	ErrInvalidArg    = tinyvg.ErrInvalidArg
	ErrInvalidState  = tinyvg.ErrInvalidState
	ErrInvalidFormat = tinyvg.ErrInvalidFormat
	ErrIO            = tinyvg.ErrIO
	ErrOutOfMemory   = tinyvg.ErrOutOfMemory
	ErrNotSupported  = tinyvg.ErrNotSupported
)

// DocumentDimensions reads just enough of a TinyVG document's header
// to report its width and height, without decoding its color table or
// any drawing command.
func DocumentDimensions(r io.Reader) (width, height int, err error) {
	return tinyvg.DocumentDimensions(r)
}

// Render decodes a complete TinyVG document from r and paints every
// command it contains onto dst through s, using the default tunables
// (spline tolerance, arc side cap, allocation bounds). Use
// RenderWithConfig to override them.
func Render(r io.Reader, dst Pixmap, s Sink) error {
	return tinyvg.Render(r, dst, s, twconfig.Default())
}

// Config exposes the tunables Render/RenderWithConfig use: the
// spline flatness tolerance, the arc side-count cap, and the
// allocation-count bound untrusted VarUInt counts are validated
// against before sizing a slice from them.
type Config = twconfig.Config

// DefaultConfig returns the Config Render uses when none is given
// explicitly.
func DefaultConfig() Config { return twconfig.Default() }

// RenderWithConfig is Render with an explicit Config, for callers that
// need a different spline tolerance or a tighter allocation bound than
// the defaults.
func RenderWithConfig(r io.Reader, dst Pixmap, s Sink, cfg Config) error {
	return tinyvg.Render(r, dst, s, cfg)
}
