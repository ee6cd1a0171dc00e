package capture

import "errors"

var (
	// ErrCameraNotFound is returned when the camera device cannot be
	// opened. It is surfaced before any frame is read.
	ErrCameraNotFound = errors.New("capture: camera not found")

	// ErrSourceNotFound is returned when a video file cannot be opened.
	ErrSourceNotFound = errors.New("capture: video source not found")
)
