package pipeline

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/roadsense/go-lanecam/pkg/lane"
)

// Processor runs the lane detection pipeline on individual frames.
// It holds no state between frames; every frame is processed independently.
type Processor struct {
	cfg Config
}

// New creates a Processor with the given config.
func New(cfg Config) (*Processor, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("pipeline: invalid config: %v", errs)
	}
	return &Processor{cfg: cfg}, nil
}

// Config returns the processor's configuration.
func (p *Processor) Config() Config {
	return p.cfg
}

// Result summarizes one frame's detection outcome.
type Result struct {
	Left     *lane.Line // nil when no left lane was detected
	Right    *lane.Line // nil when no right lane was detected
	Segments int        // raw Hough segments considered
}

// Process runs the full pipeline on a frame and draws the detected lane
// lines onto it in place.
func (p *Processor) Process(frame *gocv.Mat) Result {
	edges := p.Preprocess(*frame)
	defer edges.Close()

	masked := p.RegionOfInterest(edges)
	defer masked.Close()

	segs := p.DetectSegments(masked)
	left, right := lane.Average(segs)

	yNear := frame.Rows()
	yFar := int(float64(frame.Rows()) * p.cfg.HorizonY)
	lm, rm := lane.Markings(left, right, yNear, yFar)
	p.Annotate(frame, lm, rm)

	return Result{Left: left, Right: right, Segments: len(segs)}
}

// Preprocess converts a frame to a Canny edge map: grayscale conversion,
// Gaussian blur, edge detection. The caller owns the returned Mat.
func (p *Processor) Preprocess(src gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	if src.Channels() > 1 {
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
	} else {
		src.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	k := p.cfg.BlurKernel
	gocv.GaussianBlur(gray, &blurred, image.Pt(k, k), 0, 0, gocv.BorderDefault)

	edges := gocv.NewMat()
	gocv.Canny(blurred, &edges, p.cfg.CannyLow, p.cfg.CannyHigh)
	return edges
}

// DetectSegments runs the probabilistic Hough transform on a masked edge
// map and returns the raw segments.
func (p *Processor) DetectSegments(edges gocv.Mat) []lane.Segment {
	lines := gocv.NewMat()
	defer lines.Close()

	gocv.HoughLinesPWithParams(edges, &lines,
		p.cfg.HoughRho, p.cfg.HoughTheta, p.cfg.HoughThreshold,
		p.cfg.HoughMinLength, p.cfg.HoughMaxGap)

	segs := make([]lane.Segment, 0, lines.Rows())
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		segs = append(segs, lane.Seg(int(v[0]), int(v[1]), int(v[2]), int(v[3])))
	}
	return segs
}
