package fixed

import "testing"

func TestMulRoundTrip(t *testing.T) {
	tests := []struct{ a, b, want Fixed }{
		{One, One, One},
		{FromInt(3), FromInt(4), FromInt(12)},
		{FromInt(-2), FromInt(5), FromInt(-10)},
	}
	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%v,%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMulDoesNotOverflowOnLargeProducts(t *testing.T) {
	a := Fixed(1 << 20)
	b := Fixed(1 << 20)
	got := Mul(a, b)
	want := Fixed((int64(a) * int64(b)) >> Shift)
	if got != want {
		t.Errorf("Mul overflow: got %v want %v", got, want)
	}
}

func TestDivIsMulInverse(t *testing.T) {
	a := FromInt(17)
	b := FromInt(5)
	q := Div(a, b)
	back := Mul(q, b)
	if d := (back - a).Abs(); d > 2 {
		t.Errorf("Div/Mul round trip off by %v", d)
	}
}

func TestSqrtOfPerfectSquares(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{4, 2}, {9, 3}, {16, 4}, {100, 10},
	}
	for _, tt := range tests {
		got := Sqrt(FromInt(tt.in))
		want := FromInt(tt.want)
		if d := (got - want).Abs(); d > Fixed(2) {
			t.Errorf("Sqrt(%d) = %v, want %v", tt.in, got, want)
		}
	}
}

func TestSqrtOfZeroAndNegative(t *testing.T) {
	if Sqrt(0) != 0 {
		t.Errorf("Sqrt(0) != 0")
	}
	if Sqrt(-One) != 0 {
		t.Errorf("Sqrt(negative) should clamp to 0")
	}
}

func TestCeilFloorOnFractional(t *testing.T) {
	v := FromInt(3) + Half
	if got := v.Ceil(); got != 4 {
		t.Errorf("Ceil(3.5) = %d, want 4", got)
	}
	if got := v.Floor(); got != 3 {
		t.Errorf("Floor(3.5) = %d, want 3", got)
	}
}
