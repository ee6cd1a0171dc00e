// Package pipeline runs the per-frame lane detection pipeline:
// grayscale, blur, edge detection, region-of-interest mask, Hough line
// transform, lane averaging, and overlay rendering.
package pipeline

import (
	"fmt"
	"image/color"
	"math"
)

// Config holds all tunable parameters for the per-frame pipeline.
// These can be inspected and modified via the dashboard config API.
type Config struct {
	// === Preprocessing ===
	BlurKernel int     `json:"blur_kernel"` // Gaussian kernel size (odd)
	CannyLow   float32 `json:"canny_low"`   // Lower hysteresis threshold
	CannyHigh  float32 `json:"canny_high"`  // Upper hysteresis threshold

	// === Hough transform ===
	HoughRho       float32 `json:"hough_rho"`        // Distance resolution in pixels
	HoughTheta     float32 `json:"hough_theta"`      // Angle resolution in radians
	HoughThreshold int     `json:"hough_threshold"`  // Minimum votes per line
	HoughMinLength float32 `json:"hough_min_length"` // Minimum segment length
	HoughMaxGap    float32 `json:"hough_max_gap"`    // Maximum gap to join segments

	// === Region of interest ===
	// Trapezoid vertices as fractions of frame width/height. The defaults
	// assume a forward-facing dashboard mount with the road in the lower
	// middle of the frame.
	ROIBottomY      float64 `json:"roi_bottom_y"` // Bottom edge (fraction of height)
	ROITopY         float64 `json:"roi_top_y"`    // Top edge (fraction of height)
	ROIBottomLeftX  float64 `json:"roi_bottom_left_x"`
	ROIBottomRightX float64 `json:"roi_bottom_right_x"`
	ROITopLeftX     float64 `json:"roi_top_left_x"`
	ROITopRightX    float64 `json:"roi_top_right_x"`

	// === Rendering ===
	// HorizonY is the fraction of frame height where drawn lane lines end.
	HorizonY      float64    `json:"horizon_y"`
	LineColor     color.RGBA `json:"line_color"`
	LineThickness int        `json:"line_thickness"`
}

// DefaultConfig returns the tuned defaults for dashboard-mounted footage.
func DefaultConfig() Config {
	return Config{
		BlurKernel: 5,
		CannyLow:   50,
		CannyHigh:  150,

		HoughRho:       1,
		HoughTheta:     float32(math.Pi / 180),
		HoughThreshold: 20,
		HoughMinLength: 20,
		HoughMaxGap:    500,

		ROIBottomY:      0.95,
		ROITopY:         0.6,
		ROIBottomLeftX:  0.1,
		ROIBottomRightX: 0.9,
		ROITopLeftX:     0.4,
		ROITopRightX:    0.6,

		HorizonY:      0.6,
		LineColor:     color.RGBA{R: 255},
		LineThickness: 12,
	}
}

// Validate checks that the config values are usable.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errs []string

	if c.BlurKernel < 1 || c.BlurKernel%2 == 0 {
		errs = append(errs, "blur_kernel must be a positive odd number")
	}
	if c.CannyLow < 0 || c.CannyHigh <= c.CannyLow {
		errs = append(errs, "canny thresholds must satisfy 0 <= low < high")
	}
	if c.HoughRho <= 0 {
		errs = append(errs, "hough_rho must be positive")
	}
	if c.HoughTheta <= 0 {
		errs = append(errs, "hough_theta must be positive")
	}
	if c.HoughThreshold < 1 {
		errs = append(errs, "hough_threshold must be at least 1")
	}
	if c.HoughMinLength < 0 || c.HoughMaxGap < 0 {
		errs = append(errs, "hough lengths must not be negative")
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"roi_bottom_y", c.ROIBottomY},
		{"roi_top_y", c.ROITopY},
		{"roi_bottom_left_x", c.ROIBottomLeftX},
		{"roi_bottom_right_x", c.ROIBottomRightX},
		{"roi_top_left_x", c.ROITopLeftX},
		{"roi_top_right_x", c.ROITopRightX},
		{"horizon_y", c.HorizonY},
	} {
		if f.value < 0 || f.value > 1 {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and 1", f.name))
		}
	}
	if c.ROITopY >= c.ROIBottomY {
		errs = append(errs, "roi_top_y must be above roi_bottom_y")
	}

	if c.LineThickness < 1 {
		errs = append(errs, "line_thickness must be at least 1")
	}

	return errs
}
