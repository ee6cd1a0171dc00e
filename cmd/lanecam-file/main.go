// Lanecam-file - offline lane detection over a video file.
//
// Runs the per-frame pipeline over a recording and writes the annotated
// result to a new video file.
package main

import (
	"flag"
	"os"

	"gocv.io/x/gocv"

	"github.com/roadsense/go-lanecam/internal/config"
	"github.com/roadsense/go-lanecam/internal/log"
	"github.com/roadsense/go-lanecam/pkg/capture"
	"github.com/roadsense/go-lanecam/pkg/pipeline"
)

func main() {
	in := flag.String("in", "", "Input video file (required)")
	out := flag.String("out", "lanecam-out.mp4", "Output video file")
	logLevel := flag.String("log-level", config.LogLevel(), "Log level (debug, info, warn, error)")
	flag.Parse()

	log.Init(*logLevel)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	proc, err := pipeline.New(pipeline.DefaultConfig())
	if err != nil {
		log.Error("invalid pipeline config", "error", err)
		os.Exit(1)
	}

	dev, err := capture.OpenFile(*in)
	if err != nil {
		log.Error("failed to open input", "error", err)
		os.Exit(1)
	}
	defer dev.Close()

	width, height := dev.FrameSize()
	fps := dev.FPS(30)
	writer, err := gocv.VideoWriterFile(*out, "mp4v", fps, width, height, true)
	if err != nil {
		log.Error("failed to open output", "path", *out, "error", err)
		os.Exit(1)
	}
	defer writer.Close()

	log.Info("processing", "in", *in, "out", *out,
		"size", [2]int{width, height}, "fps", fps)

	frame := gocv.NewMat()
	defer frame.Close()

	var frames, leftHits, rightHits int64
	for {
		status := dev.Read(&frame)
		if status == capture.StatusEndOfStream {
			break
		}
		if status != capture.StatusFrame {
			log.Error("input stopped unexpectedly", "status", status.String())
			break
		}

		res := proc.Process(&frame)
		frames++
		if res.Left != nil {
			leftHits++
		}
		if res.Right != nil {
			rightHits++
		}

		if err := writer.Write(frame); err != nil {
			log.Error("failed to write frame", "frame", frames, "error", err)
			os.Exit(1)
		}
	}

	log.Info("done", "frames", frames,
		"left_hits", leftHits, "right_hits", rightHits)
}
