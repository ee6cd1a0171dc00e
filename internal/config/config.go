// Package config provides environment-based configuration helpers for
// lanecam commands. Command-line flags take precedence; these supply the
// defaults.
package config

import (
	"os"
	"strconv"
)

// Defaults used when neither a flag nor an environment variable is set.
const (
	DefaultCameraIndex = 0
	DefaultPort        = "8654"
	DefaultLogLevel    = "info"
)

// CameraIndex returns the camera device index from LANECAM_CAMERA.
// Falls back to DefaultCameraIndex if unset or malformed.
func CameraIndex() int {
	if v := os.Getenv("LANECAM_CAMERA"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil && idx >= 0 {
			return idx
		}
	}
	return DefaultCameraIndex
}

// Port returns the dashboard port from LANECAM_PORT.
func Port() string {
	if p := os.Getenv("LANECAM_PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// LogLevel returns the log level from LANECAM_LOG_LEVEL.
func LogLevel() string {
	if l := os.Getenv("LANECAM_LOG_LEVEL"); l != "" {
		return l
	}
	return DefaultLogLevel
}
