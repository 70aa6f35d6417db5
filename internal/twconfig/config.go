// Package twconfig carries the handful of tunables this module's
// algorithms would otherwise hardcode: spline flatness tolerance, the
// arc side-count cap, and whether a Sink is expected to antialias.
// Grounded on the teacher's internal/config package, which carries
// similar cross-cutting knobs (RenderingBufferType, integer overrides)
// as a Config struct with documented defaults rather than package-level
// constants sprinkled through the algorithms that use them.
package twconfig

import "github.com/twin-windows/twingo/internal/fixed"

// Config holds the tunables shared by the path, shapes, spline and
// tinyvg packages. Its zero value is not ready to use; call Default to
// get one with every field set to the value the original hardcodes.
type Config struct {
	// SplineTolerance bounds the perpendicular deviation a flattened
	// curve segment may have from its chord (the flattener compares
	// squared distances against its square). Matches
	// fixed.Tolerance by default.
	SplineTolerance fixed.SFixed

	// MaxArcSides caps the side count shapes.Arc will subdivide an arc
	// into, regardless of how large the matrix scales the radius.
	// Matches TWIN_ARC_SIDES_MAX in path.c.
	MaxArcSides int

	// Antialias documents whether the Sink a caller supplies is
	// expected to antialias fills/strokes. This module does not
	// enforce it; it is advisory metadata a Sink implementation may
	// read back out of the Config it was constructed with.
	Antialias bool

	// MaxTapeCount bounds every count a decoder reads off the wire as
	// a VarUInt before sizing an allocation from it (the color table,
	// a fill/line command's path-size scratch array): the wire count
	// is attacker-controlled and unbounded, Go has no synchronous
	// allocation-failure signal to intercept the way the original's
	// malloc return check does, so this is the validation that stands
	// in for it.
	MaxTapeCount int
}

// Default returns the Config the original hardcodes throughout path.c
// and spline.c.
func Default() Config {
	return Config{
		SplineTolerance: fixed.Tolerance,
		MaxArcSides:     1024,
		Antialias:       true,
		MaxTapeCount:    1 << 20,
	}
}
