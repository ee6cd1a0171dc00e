// Package capture wraps video capture devices behind a small API that
// separates the three read outcomes the underlying library folds into
// one boolean: got a frame, stream ended, device failed.
package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Status is the outcome of a single frame read.
type Status int

const (
	// StatusFrame means a frame was read into the destination mat.
	StatusFrame Status = iota
	// StatusEndOfStream means the source has no more frames.
	StatusEndOfStream
	// StatusDeviceError means the device stopped delivering frames
	// while the stream was not expected to end.
	StatusDeviceError
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusFrame:
		return "frame"
	case StatusEndOfStream:
		return "end of stream"
	case StatusDeviceError:
		return "device error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Device is an open video source: a camera or a video file.
type Device struct {
	vc     *gocv.VideoCapture
	source string
	finite bool // file sources end, camera sources fail
}

// OpenCamera opens a camera by device index. It fails with
// ErrCameraNotFound before any frame is read when the device does not
// open.
func OpenCamera(index int) (*Device, error) {
	vc, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrCameraNotFound, index, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: device %d", ErrCameraNotFound, index)
	}
	return &Device{vc: vc, source: fmt.Sprintf("camera:%d", index)}, nil
}

// OpenFile opens a video file as a finite capture source.
func OpenFile(path string) (*Device, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	return &Device{vc: vc, source: path, finite: true}, nil
}

// Read reads the next frame into dst and reports the outcome. A failed
// read on a finite source is the end of the stream; on a camera it is a
// device error.
func (d *Device) Read(dst *gocv.Mat) Status {
	if !d.vc.Read(dst) || dst.Empty() {
		if d.finite {
			return StatusEndOfStream
		}
		return StatusDeviceError
	}
	return StatusFrame
}

// Source returns a description of the open source.
func (d *Device) Source() string {
	return d.source
}

// FrameSize returns the source's reported frame width and height.
func (d *Device) FrameSize() (width, height int) {
	return int(d.vc.Get(gocv.VideoCaptureFrameWidth)),
		int(d.vc.Get(gocv.VideoCaptureFrameHeight))
}

// FPS returns the source's reported frame rate, or the fallback when the
// source does not report one.
func (d *Device) FPS(fallback float64) float64 {
	if fps := d.vc.Get(gocv.VideoCaptureFPS); fps > 0 {
		return fps
	}
	return fallback
}

// Close releases the underlying device.
func (d *Device) Close() error {
	return d.vc.Close()
}
