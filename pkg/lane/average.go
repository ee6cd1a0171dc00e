package lane

// Average reduces a set of raw segments to at most one lane line per side.
//
// Segments are partitioned by slope sign: negative slopes belong to the
// left lane, positive slopes to the right. This holds only for a fixed
// forward-facing camera mount; it is not a general rule. Vertical and
// near-horizontal segments (|slope| < MinAbsSlope) are excluded.
//
// Each side's line is the length-weighted mean of the candidate
// slope/intercept pairs. A side with no candidates returns nil: no lane
// was detected this frame, which is not an error.
func Average(segs []Segment) (left, right *Line) {
	var (
		leftSum, rightSum       Line
		leftWeight, rightWeight float64
	)

	for _, s := range segs {
		fit, ok := s.Fit()
		if !ok {
			continue
		}
		if fit.Slope > -MinAbsSlope && fit.Slope < MinAbsSlope {
			continue
		}
		w := s.Length()
		if fit.Slope < 0 {
			leftSum.Slope += w * fit.Slope
			leftSum.Intercept += w * fit.Intercept
			leftWeight += w
		} else {
			rightSum.Slope += w * fit.Slope
			rightSum.Intercept += w * fit.Intercept
			rightWeight += w
		}
	}

	if leftWeight > 0 {
		left = &Line{
			Slope:     leftSum.Slope / leftWeight,
			Intercept: leftSum.Intercept / leftWeight,
		}
	}
	if rightWeight > 0 {
		right = &Line{
			Slope:     rightSum.Slope / rightWeight,
			Intercept: rightSum.Intercept / rightWeight,
		}
	}
	return left, right
}

// Markings converts both lane models to drawable segments between yNear
// and yFar. A nil line yields a nil marking: nothing to draw for that side.
func Markings(left, right *Line, yNear, yFar int) (lm, rm *Marking) {
	if left != nil {
		m := left.Marking(yNear, yFar)
		lm = &m
	}
	if right != nil {
		m := right.Marking(yNear, yFar)
		rm = &m
	}
	return lm, rm
}
