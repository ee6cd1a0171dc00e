package lane

import (
	"math"
	"testing"
)

func TestSegment_Length(t *testing.T) {
	tests := []struct {
		name   string
		seg    Segment
		expect float64
	}{
		{
			name:   "3-4-5 triangle",
			seg:    Seg(0, 0, 3, 4),
			expect: 5,
		},
		{
			name:   "horizontal",
			seg:    Seg(10, 20, 30, 20),
			expect: 20,
		},
		{
			name:   "vertical",
			seg:    Seg(5, 0, 5, 7),
			expect: 7,
		},
		{
			name:   "zero length",
			seg:    Seg(1, 1, 1, 1),
			expect: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.seg.Length()
			if math.Abs(got-tc.expect) > 1e-9 {
				t.Errorf("Length: got %.4f, want %.4f", got, tc.expect)
			}
		})
	}
}

func TestSegment_Fit(t *testing.T) {
	tests := []struct {
		name             string
		seg              Segment
		ok               bool
		slope, intercept float64
	}{
		{
			name:      "descending left lane",
			seg:       Seg(0, 100, 50, 0),
			ok:        true,
			slope:     -2,
			intercept: 100,
		},
		{
			name:      "ascending right lane",
			seg:       Seg(10, 20, 20, 40),
			ok:        true,
			slope:     2,
			intercept: 0,
		},
		{
			name: "vertical has no fit",
			seg:  Seg(5, 0, 5, 100),
			ok:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fit, ok := tc.seg.Fit()
			if ok != tc.ok {
				t.Fatalf("Fit ok: got %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if math.Abs(fit.Slope-tc.slope) > 1e-9 {
				t.Errorf("Slope: got %.4f, want %.4f", fit.Slope, tc.slope)
			}
			if math.Abs(fit.Intercept-tc.intercept) > 1e-9 {
				t.Errorf("Intercept: got %.4f, want %.4f", fit.Intercept, tc.intercept)
			}
		})
	}
}

func TestLine_Marking(t *testing.T) {
	// (slope=-2, intercept=300) between y=100 and y=60:
	// x = (100-300)/-2 = 100, x = (60-300)/-2 = 120
	l := Line{Slope: -2, Intercept: 300}
	m := l.Marking(100, 60)

	if m.P1.X != 100 || m.P1.Y != 100 {
		t.Errorf("near point: got (%d,%d), want (100,100)", m.P1.X, m.P1.Y)
	}
	if m.P2.X != 120 || m.P2.Y != 60 {
		t.Errorf("far point: got (%d,%d), want (120,60)", m.P2.X, m.P2.Y)
	}
}
