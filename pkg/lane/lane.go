// Package lane reduces raw Hough line segments into at most two
// representative lane lines (left and right) using length-weighted
// slope/intercept averaging.
package lane

import (
	"image"
	"math"
)

// MinAbsSlope is the smallest |slope| a segment may have and still count
// as a lane candidate. Near-horizontal segments cannot be lane boundaries
// under a fixed forward-facing mount, and a zero slope would divide by
// zero when the lane model is converted back to pixel endpoints.
const MinAbsSlope = 1e-2

// Segment is a raw line segment in pixel coordinates, as produced by the
// probabilistic Hough transform.
type Segment struct {
	X1, Y1 int
	X2, Y2 int
}

// Seg is shorthand for constructing a Segment from two endpoints.
func Seg(x1, y1, x2, y2 int) Segment {
	return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Vertical reports whether the segment has undefined slope.
func (s Segment) Vertical() bool {
	return s.X1 == s.X2
}

// Length returns the Euclidean length of the segment in pixels.
func (s Segment) Length() float64 {
	dx := float64(s.X2 - s.X1)
	dy := float64(s.Y2 - s.Y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// Fit returns the slope/intercept line through the segment's endpoints.
// The second return value is false for vertical segments, which have no
// slope/intercept form.
func (s Segment) Fit() (Line, bool) {
	if s.Vertical() {
		return Line{}, false
	}
	slope := float64(s.Y2-s.Y1) / float64(s.X2-s.X1)
	return Line{
		Slope:     slope,
		Intercept: float64(s.Y1) - slope*float64(s.X1),
	}, true
}

// Line is an unbounded lane model in image space: y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// Marking converts the lane model into a drawable segment between two
// fixed vertical coordinates. x = (y - intercept) / slope at each y,
// truncated to integer pixels.
func (l Line) Marking(yNear, yFar int) Marking {
	return Marking{
		P1: image.Pt(int((float64(yNear)-l.Intercept)/l.Slope), yNear),
		P2: image.Pt(int((float64(yFar)-l.Intercept)/l.Slope), yFar),
	}
}

// Marking is a drawable lane segment in pixel coordinates.
type Marking struct {
	P1, P2 image.Point
}
