package fixed

// Angle is measured on a 4096-unit full turn, so a right angle is
// exactly 1024 and no degree/radian conversion is ever exact — callers
// compose angles as integers and let Sincos do the trigonometry.
type Angle int32

const (
	Angle0   Angle = 0
	Angle90  Angle = 1024
	Angle180 Angle = 2048
	Angle270 Angle = 3072
	Angle360 Angle = 4096
)

func (a Angle) Abs() Angle {
	if a < 0 {
		return -a
	}
	return a
}

// sinPoly evaluates a degree-5 odd minimax polynomial approximation
// of sin over a single quadrant, scaled for Q16.16 fixed-point. The
// magic constants come from a Taylor/minimax fit keyed to the
// particular scale factors (n, p, q, r) chosen below; they are not
// meant to be independently derived, only reproduced faithfully.
func sinPoly(x Angle) Fixed {
	const (
		shiftAmplitude = 16
		n              = 10
		p              = 32
		q              = 31
		r              = 3
		a1             = uint64(3370945099)
		b1             = uint64(2746362156)
		c1             = uint64(2339369)
	)
	xu := uint64(x)
	y := (c1 * xu) >> n
	y = b1 - ((xu * y) >> r)
	y = xu * (y >> n)
	y = xu * (y >> n)
	y = a1 - (y >> (p - q))
	y = xu * (y >> n)
	y = (y + (1 << (q - shiftAmplitude - 1))) >> (q - shiftAmplitude)
	return Fixed(y)
}

// Sincos computes sine and cosine of a in one pass, mirroring the
// quadrant the polynomial is fit to across the remaining three.
func Sincos(a Angle) (sin, cos Fixed) {
	a &= Angle360 - 1
	negCos := a > Angle90 && a < Angle270

	if (a & ^Angle180) == Angle90 {
		sin, cos = One, 0
	} else {
		if a&Angle90 != 0 {
			a = Angle180 - a
		}
		x := a & (Angle90 - 1)
		sin = sinPoly(x)
		cos = sinPoly(Angle90 - x)
	}

	if a&Angle180 != 0 {
		sin = -sin
	}
	if negCos {
		cos = -cos
	}
	return sin, cos
}

// Sin returns the sine of a as a Fixed.
func Sin(a Angle) Fixed { s, _ := Sincos(a); return s }

// Cos returns the cosine of a as a Fixed.
func Cos(a Angle) Fixed { _, c := Sincos(a); return c }

// Tan returns the tangent of a, saturating to Max/Min when cosine
// underflows to zero rather than dividing by it.
func Tan(a Angle) Fixed {
	s, c := Sincos(a)
	if c == 0 {
		if s > 0 {
			return Max
		}
		return Min
	}
	if s == 0 {
		return 0
	}
	return ((s << 15) / c) << 1
}

// atanTable holds arctan(2^-i) on the angle scale, for i = 0..11, the
// CORDIC vectoring-mode lookup table.
var atanTable = [12]Angle{
	0x0200, 0x012E, 0x00A0, 0x0051, 0x0029, 0x0014,
	0x000A, 0x0005, 0x0003, 0x0001, 0x0001, 0x0000,
}

// Atan2FirstQuadrant computes atan2(y, x) restricted to the first
// quadrant (x >= 0, y >= 0) via 12 CORDIC vectoring iterations.
func Atan2FirstQuadrant(y, x Fixed) Angle {
	if x == 0 && y == 0 {
		return 0
	}
	if x == 0 {
		return Angle90
	}
	if y == 0 {
		return 0
	}

	cx, cy := x, y
	var angle Angle
	for i := 0; i < 12; i++ {
		var nx, ny Fixed
		if cy > 0 {
			nx = cx + (cy >> uint(i))
			ny = cy - (cx >> uint(i))
			angle += atanTable[i]
		} else {
			nx = cx - (cy >> uint(i))
			ny = cy + (cx >> uint(i))
			angle -= atanTable[i]
		}
		cx, cy = nx, ny
	}
	return angle
}

// Atan2 computes the full four-quadrant arctangent of y/x on the
// angle scale, by folding into the first quadrant and reflecting the
// result back out.
func Atan2(y, x Fixed) Angle {
	if x == 0 && y == 0 {
		return 0
	}
	if x == 0 {
		if y > 0 {
			return Angle90
		}
		return Angle270
	}
	if y == 0 {
		if x > 0 {
			return Angle0
		}
		return Angle180
	}

	var quadrant int
	absX, absY := x, y
	switch {
	case x >= 0 && y >= 0:
		quadrant = 1
	case x < 0 && y >= 0:
		quadrant = 2
		absX = -x
	case x < 0 && y < 0:
		quadrant = 3
		absX, absY = -x, -y
	default:
		quadrant = 4
		absY = -y
	}

	angle := Atan2FirstQuadrant(absY, absX)
	switch quadrant {
	case 1:
		return angle
	case 2:
		return Angle180 - angle
	case 3:
		return Angle180 + angle
	default:
		return Angle360 - angle
	}
}

// Acos computes arccos(x) for x clamped to [-One, One], built from
// Sqrt and Atan2FirstQuadrant rather than a separate polynomial.
func Acos(x Fixed) Angle {
	if x <= -One {
		return Angle180
	}
	if x >= One {
		return Angle0
	}
	y := Sqrt(One - Mul(x, x))
	if x >= 0 {
		return Atan2FirstQuadrant(y, x)
	}
	return Angle180 - Atan2FirstQuadrant(y, -x)
}
