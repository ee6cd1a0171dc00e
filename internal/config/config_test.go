package config

import "testing"

func TestCameraIndex(t *testing.T) {
	t.Setenv("LANECAM_CAMERA", "")
	if got := CameraIndex(); got != DefaultCameraIndex {
		t.Errorf("default: got %d, want %d", got, DefaultCameraIndex)
	}

	t.Setenv("LANECAM_CAMERA", "2")
	if got := CameraIndex(); got != 2 {
		t.Errorf("from env: got %d, want 2", got)
	}

	t.Setenv("LANECAM_CAMERA", "not-a-number")
	if got := CameraIndex(); got != DefaultCameraIndex {
		t.Errorf("malformed env: got %d, want %d", got, DefaultCameraIndex)
	}

	t.Setenv("LANECAM_CAMERA", "-1")
	if got := CameraIndex(); got != DefaultCameraIndex {
		t.Errorf("negative index: got %d, want %d", got, DefaultCameraIndex)
	}
}

func TestPort(t *testing.T) {
	t.Setenv("LANECAM_PORT", "")
	if got := Port(); got != DefaultPort {
		t.Errorf("default: got %q, want %q", got, DefaultPort)
	}

	t.Setenv("LANECAM_PORT", "9000")
	if got := Port(); got != "9000" {
		t.Errorf("from env: got %q, want 9000", got)
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("LANECAM_LOG_LEVEL", "debug")
	if got := LogLevel(); got != "debug" {
		t.Errorf("from env: got %q, want debug", got)
	}
}
