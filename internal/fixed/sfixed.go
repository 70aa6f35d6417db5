package fixed

// Tolerance is the subpixel flatness budget the spline flattener and
// the arc side-count derivation are built against: one sample point
// may deviate from the true curve by at most this many SFixed units.
const Tolerance = SFixed(3)

// Trunc truncates an SFixed value toward negative infinity, by an
// arithmetic right shift of the underlying fractional bits.
func (f SFixed) Trunc() int {
	return int(f >> SFixedShift)
}

// Ceil rounds an SFixed value up to the next whole SFixed unit.
func (f SFixed) Ceil() SFixed {
	return (f + SFixedOne - 1) &^ (SFixedOne - 1)
}

// ToFixed widens an SFixed value back into Fixed's Q16.16 space.
func (f SFixed) ToFixed() Fixed {
	return Fixed(f) << (Shift - SFixedShift)
}

func (f SFixed) Abs() SFixed {
	if f < 0 {
		return -f
	}
	return f
}
