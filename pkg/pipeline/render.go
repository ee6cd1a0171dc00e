package pipeline

import (
	"gocv.io/x/gocv"

	"github.com/roadsense/go-lanecam/pkg/lane"
)

// Annotate draws the present lane markings onto the frame in place.
// Markings are drawn on a zeroed overlay of the same shape and blended
// additively (1.0/1.0/0.0), so the base frame is not dimmed. A nil
// marking is skipped: no lane detected on that side this frame.
func (p *Processor) Annotate(frame *gocv.Mat, left, right *lane.Marking) {
	if left == nil && right == nil {
		return
	}

	overlay := gocv.Zeros(frame.Rows(), frame.Cols(), frame.Type())
	defer overlay.Close()

	for _, m := range []*lane.Marking{left, right} {
		if m == nil {
			continue
		}
		gocv.Line(&overlay, m.P1, m.P2, p.cfg.LineColor, p.cfg.LineThickness)
	}

	gocv.AddWeighted(*frame, 1.0, overlay, 1.0, 0.0, frame)
}
