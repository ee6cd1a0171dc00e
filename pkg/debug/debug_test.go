package debug

import (
	"io"
	"os"
	"testing"
)

// captureStdout runs fn and returns everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return string(data)
}

func TestLog_GatedByEnabled(t *testing.T) {
	defer func() { Enabled = false }()

	Enabled = false
	if got := captureStdout(t, func() { Log("frame %d\n", 1) }); got != "" {
		t.Errorf("disabled: got %q, want nothing", got)
	}

	Enabled = true
	if got := captureStdout(t, func() { Log("frame %d\n", 1) }); got != "frame 1\n" {
		t.Errorf("enabled: got %q, want %q", got, "frame 1\n")
	}
}

func TestFrameLog_GatedByFrames(t *testing.T) {
	defer func() { Frames = false }()

	Frames = false
	if got := captureStdout(t, func() { FrameLog("segments=%d\n", 3) }); got != "" {
		t.Errorf("disabled: got %q, want nothing", got)
	}

	Frames = true
	if got := captureStdout(t, func() { FrameLog("segments=%d\n", 3) }); got != "segments=3\n" {
		t.Errorf("enabled: got %q, want %q", got, "segments=3\n")
	}
}
