// Package web provides a real-time dashboard for the lane camera:
// detection status, pipeline tuning, and the annotated frame stream.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/roadsense/go-lanecam/internal/log"
	"github.com/roadsense/go-lanecam/pkg/hub"
	"github.com/roadsense/go-lanecam/pkg/pipeline"
)

// State is the detection state shown on the dashboard.
type State struct {
	SessionID     string  `json:"session_id"`
	Source        string  `json:"source"`
	Frames        int64   `json:"frames"`
	FPS           float64 `json:"fps"`
	LeftDetected  bool    `json:"left_detected"`  // left lane found in the last frame
	RightDetected bool    `json:"right_detected"` // right lane found in the last frame
	LeftHits      int64   `json:"left_hits"`      // frames with a left lane this session
	RightHits     int64   `json:"right_hits"`
	Viewers       int     `json:"viewers"`
}

// Server is the dashboard server.
type Server struct {
	app  *fiber.App
	port string

	// State
	state   State
	stateMu sync.RWMutex

	// Latest annotated frame as JPEG
	frame   []byte
	frameMu sync.RWMutex

	// Hubs for websocket broadcast
	statusHub *hub.Hub
	cameraHub *hub.Hub

	// OnConfigChange is called when the config API updates the pipeline
	// config. It may reject the change by returning an error.
	OnConfigChange func(cfg pipeline.Config) error

	// GetConfig returns the active pipeline config for the config API.
	GetConfig func() pipeline.Config
}

// NewServer creates a new dashboard server listening on the given port.
func NewServer(port string) *Server {
	s := &Server{
		port:      port,
		state:     State{SessionID: uuid.NewString()},
		statusHub: hub.New("status"),
		cameraHub: hub.New("camera"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Lanecam Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/config", s.handleGetConfig)
	api.Put("/config", s.handlePutConfig)
	api.Get("/frame", s.handleFrame)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/camera", websocket.New(s.handleCameraWS))
	app.Get("/ws/status", websocket.New(s.handleStatusWS))

	s.app = app
	return s
}

// Start starts the web server. It blocks.
func (s *Server) Start() error {
	log.Info("dashboard listening", "addr", "http://localhost:"+s.port)

	go s.statusHub.Run()
	go s.cameraHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("dashboard server stopped", "error", err)
		}
	}()
}

// UpdateState applies a mutation to the dashboard state and broadcasts
// the result to status clients.
func (s *Server) UpdateState(update func(*State)) {
	s.stateMu.Lock()
	update(&s.state)
	s.state.Viewers = s.cameraHub.ClientCount()
	state := s.state // Copy for broadcast
	s.stateMu.Unlock()

	s.statusHub.BroadcastJSON(state)
}

// PublishFrame stores the latest annotated JPEG and streams it to camera
// clients.
func (s *Server) PublishFrame(jpeg []byte) {
	s.frameMu.Lock()
	s.frame = jpeg
	s.frameMu.Unlock()

	s.cameraHub.BroadcastBinary(jpeg)
}

// Shutdown gracefully stops the web server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
