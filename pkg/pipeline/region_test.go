package pipeline

import (
	"testing"

	"gocv.io/x/gocv"
)

// newWhiteMat returns a mat filled with 255 in every channel.
func newWhiteMat(rows, cols int, mt gocv.MatType) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 255), rows, cols, mt)
}

func TestRegionOfInterest_Trapezoid(t *testing.T) {
	p, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Fully white 100x100 edge map. The default ROI trapezoid is
	// (10,95) (40,60) (60,60) (90,95).
	white := newWhiteMat(100, 100, gocv.MatTypeCV8UC1)
	defer white.Close()

	masked := p.RegionOfInterest(white)
	defer masked.Close()

	inside := []struct{ x, y int }{
		{50, 90}, // low center
		{30, 80}, // left of center, well inside the slanted edge
		{70, 80},
		{50, 62}, // just below the top edge
	}
	for _, pt := range inside {
		if v := masked.GetUCharAt(pt.y, pt.x); v != 255 {
			t.Errorf("pixel (%d,%d) inside ROI: got %d, want 255", pt.x, pt.y, v)
		}
	}

	outside := []struct{ x, y int }{
		{5, 94},  // left of the bottom-left corner
		{95, 94}, // right of the bottom-right corner
		{15, 80}, // outside the slanted left edge
		{85, 80}, // outside the slanted right edge
		{50, 50}, // above the top edge
		{50, 5},  // sky
		{2, 2},
	}
	for _, pt := range outside {
		if v := masked.GetUCharAt(pt.y, pt.x); v != 0 {
			t.Errorf("pixel (%d,%d) outside ROI: got %d, want 0", pt.x, pt.y, v)
		}
	}
}

func TestRegionOfInterest_MultiChannel(t *testing.T) {
	p, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	white := newWhiteMat(100, 100, gocv.MatTypeCV8UC3)
	defer white.Close()

	masked := p.RegionOfInterest(white)
	defer masked.Close()

	if masked.Channels() != 3 {
		t.Fatalf("channels: got %d, want 3", masked.Channels())
	}
	for ch := 0; ch < 3; ch++ {
		if v := masked.GetUCharAt3(90, 50, ch); v != 255 {
			t.Errorf("inside pixel channel %d: got %d, want 255", ch, v)
		}
		if v := masked.GetUCharAt3(5, 5, ch); v != 0 {
			t.Errorf("outside pixel channel %d: got %d, want 0", ch, v)
		}
	}
}
