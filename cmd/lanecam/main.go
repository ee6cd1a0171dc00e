// Lanecam - live lane detection from a webcam.
//
// Captures frames, overlays the detected lane lines, shows them in a
// window and optionally streams them to the web dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"gocv.io/x/gocv"

	"github.com/roadsense/go-lanecam/internal/config"
	"github.com/roadsense/go-lanecam/internal/log"
	"github.com/roadsense/go-lanecam/pkg/capture"
	"github.com/roadsense/go-lanecam/pkg/debug"
	"github.com/roadsense/go-lanecam/pkg/pipeline"
	"github.com/roadsense/go-lanecam/pkg/web"
)

func main() {
	cameraIdx := flag.Int("camera", config.CameraIndex(), "Camera device index")
	port := flag.String("port", config.Port(), "Dashboard port (empty disables the dashboard)")
	headless := flag.Bool("headless", false, "Disable the preview window")
	logLevel := flag.String("log-level", config.LogLevel(), "Log level (debug, info, warn, error)")
	debugMode := flag.Bool("debug", false, "Enable debug logging")
	debugFrames := flag.Bool("debug-frames", false, "Print per-frame detection results")
	flag.Parse()

	if *debugMode {
		*logLevel = "debug"
	}
	log.Init(*logLevel)
	debug.Enabled = *debugMode
	debug.Frames = *debugFrames

	fmt.Println("Lanecam - lane detection")
	fmt.Printf("   Camera: %d\n", *cameraIdx)
	if *port != "" {
		fmt.Printf("   Dashboard: http://localhost:%s\n", *port)
	}
	fmt.Println()

	proc, err := pipeline.New(pipeline.DefaultConfig())
	if err != nil {
		log.Error("invalid pipeline config", "error", err)
		os.Exit(1)
	}
	debug.Log("pipeline config: %+v\n", proc.Config())

	// Fail before any frame is read when the camera does not open.
	dev, err := capture.OpenCamera(*cameraIdx)
	if err != nil {
		log.Error("failed to open camera", "error", err)
		os.Exit(1)
	}
	defer dev.Close()
	log.Info("camera open", "source", dev.Source())

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	// The dashboard can swap the pipeline config at runtime; the loop
	// picks up the new processor on the next frame.
	var procMu sync.RWMutex

	var srv *web.Server
	if *port != "" {
		srv = web.NewServer(*port)
		srv.GetConfig = func() pipeline.Config {
			procMu.RLock()
			defer procMu.RUnlock()
			return proc.Config()
		}
		srv.OnConfigChange = func(cfg pipeline.Config) error {
			next, err := pipeline.New(cfg)
			if err != nil {
				return err
			}
			procMu.Lock()
			proc = next
			procMu.Unlock()
			log.Info("pipeline config updated")
			return nil
		}
		srv.UpdateState(func(st *web.State) { st.Source = dev.Source() })
		srv.StartAsync()
		defer srv.Shutdown()
	}

	var window *gocv.Window
	if !*headless {
		window = gocv.NewWindow("Lanecam")
		defer window.Close()
	}

	frame := gocv.NewMat()
	defer frame.Close()

	var (
		frames     int64
		leftHits   int64
		rightHits  int64
		fps        float64
		tickFrames int64
		tickStart  = time.Now()
	)

loop:
	for ctx.Err() == nil {
		switch status := dev.Read(&frame); status {
		case capture.StatusEndOfStream:
			log.Info("capture source ended")
			break loop
		case capture.StatusDeviceError:
			log.Error("camera stopped delivering frames")
			break loop
		case capture.StatusFrame:
		}

		procMu.RLock()
		p := proc
		procMu.RUnlock()

		res := p.Process(&frame)
		frames++
		tickFrames++
		if res.Left != nil {
			leftHits++
		}
		if res.Right != nil {
			rightHits++
		}
		debug.FrameLog("frame %d: segments=%d left=%v right=%v\n",
			frames, res.Segments, res.Left != nil, res.Right != nil)

		if elapsed := time.Since(tickStart); elapsed >= time.Second {
			fps = float64(tickFrames) / elapsed.Seconds()
			tickFrames = 0
			tickStart = time.Now()
		}

		if srv != nil {
			if buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame); err == nil {
				// Copy out: the encoder buffer is freed on Close and the
				// hub holds the frame past this iteration.
				data := make([]byte, buf.Len())
				copy(data, buf.GetBytes())
				buf.Close()
				srv.PublishFrame(data)
			}
			srv.UpdateState(func(st *web.State) {
				st.Frames = frames
				st.FPS = fps
				st.LeftDetected = res.Left != nil
				st.RightDetected = res.Right != nil
				st.LeftHits = leftHits
				st.RightHits = rightHits
			})
		}

		if window != nil {
			window.IMShow(frame)
			if window.WaitKey(1) >= 0 {
				log.Info("stopped by keypress")
				break loop
			}
		}
	}

	log.Info("session finished",
		"frames", frames, "left_hits", leftHits, "right_hits", rightHits)
}
