package texmath

import "testing"

func TestAlign(t *testing.T) {
	cases := []struct{ x, a, want uint32 }{
		{0, 32, 0},
		{1, 32, 32},
		{32, 32, 32},
		{45, 32, 64},
	}
	for _, c := range cases {
		if got := Align(c.x, c.a); got != c.want {
			t.Errorf("Align(%d, %d) = %d, want %d", c.x, c.a, got, c.want)
		}
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := []struct{ x, want uint32 }{
		{0, 32},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 3},
		{8, 3},
		{9, 4},
	}
	for _, c := range cases {
		if got := Log2Ceil(c.x); got != c.want {
			t.Errorf("Log2Ceil(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ x, want uint32 }{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{6, 8},
		{7, 8},
	}
	for _, c := range cases {
		if got := NextPow2(c.x); got != c.want {
			t.Errorf("NextPow2(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}
