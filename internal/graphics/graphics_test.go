package graphics

import "testing"

func TestToNDC(t *testing.T) {
	cases := []struct {
		px, py float32
		x, y   float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{200, 450, -0.5, -0.5},
	}
	for _, tc := range cases {
		x, y := ToNDC(tc.px, tc.py, 800, 600)
		if x != tc.x || y != tc.y {
			t.Errorf("ToNDC(%v, %v) = (%v, %v), want (%v, %v)", tc.px, tc.py, x, y, tc.x, tc.y)
		}
	}
	if x, y := ToNDC(10, 10, 0, 600); x != 0 || y != 0 {
		t.Fatal("an empty view should map to the center")
	}
}
