package fixed

import "testing"

func TestSinCosIdentity(t *testing.T) {
	for a := Angle(0); a < Angle360; a += 64 {
		s, c := Sincos(a)
		sq := Mul(s, s) + Mul(c, c)
		if d := (sq - One).Abs(); d > Fixed(64) {
			t.Errorf("angle %d: sin^2+cos^2 = %v, want ~ONE", a, sq)
		}
	}
}

func TestSincosAtCardinalAngles(t *testing.T) {
	tests := []struct {
		a        Angle
		sin, cos Fixed
	}{
		{Angle0, 0, One},
		{Angle90, One, 0},
		{Angle180, 0, -One},
		{Angle270, -One, 0},
	}
	for _, tt := range tests {
		s, c := Sincos(tt.a)
		if d := (s - tt.sin).Abs(); d > 8 {
			t.Errorf("sin(%d) = %v, want %v", tt.a, s, tt.sin)
		}
		if d := (c - tt.cos).Abs(); d > 8 {
			t.Errorf("cos(%d) = %v, want %v", tt.a, c, tt.cos)
		}
	}
}

func TestAtan2RoundTripsThroughSincos(t *testing.T) {
	for a := Angle(0); a < Angle360; a += 128 {
		s, c := Sincos(a)
		if s == 0 && c == 0 {
			continue
		}
		got := Atan2(s, c)
		diff := got - a
		if diff < 0 {
			diff = -diff
		}
		if diff > 8 && diff < Angle360-8 {
			t.Errorf("Atan2(sin(%d), cos(%d)) = %d, want ~%d", a, a, got, a)
		}
	}
}

func TestAcosBoundaries(t *testing.T) {
	if got := Acos(One); got != Angle0 {
		t.Errorf("Acos(ONE) = %d, want 0", got)
	}
	if got := Acos(-One); got != Angle180 {
		t.Errorf("Acos(-ONE) = %d, want 180", got)
	}
	if got := Acos(0); (got - Angle90).Abs() > 4 {
		t.Errorf("Acos(0) = %d, want ~90", got)
	}
}
