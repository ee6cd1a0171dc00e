package pipeline

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// RegionOfInterest masks the edge map down to the configured trapezoid,
// zeroing everything outside it. The mask matches the input's type, so
// single- and multi-channel inputs both work. The caller owns the
// returned Mat.
func (p *Processor) RegionOfInterest(src gocv.Mat) gocv.Mat {
	rows := src.Rows()
	cols := src.Cols()

	mask := gocv.Zeros(rows, cols, src.Type())
	defer mask.Close()

	vertices := p.roiVertices(rows, cols)
	pts := gocv.NewPointsVectorFromPoints([][]image.Point{vertices})
	defer pts.Close()

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gocv.FillPoly(&mask, pts, white)

	masked := gocv.NewMat()
	gocv.BitwiseAnd(src, mask, &masked)
	return masked
}

// roiVertices returns the trapezoid corners in pixel coordinates:
// bottom-left, top-left, top-right, bottom-right.
func (p *Processor) roiVertices(rows, cols int) []image.Point {
	w := float64(cols)
	h := float64(rows)
	return []image.Point{
		image.Pt(int(w*p.cfg.ROIBottomLeftX), int(h*p.cfg.ROIBottomY)),
		image.Pt(int(w*p.cfg.ROITopLeftX), int(h*p.cfg.ROITopY)),
		image.Pt(int(w*p.cfg.ROITopRightX), int(h*p.cfg.ROITopY)),
		image.Pt(int(w*p.cfg.ROIBottomRightX), int(h*p.cfg.ROIBottomY)),
	}
}
