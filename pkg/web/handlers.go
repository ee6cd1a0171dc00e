package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/roadsense/go-lanecam/pkg/hub"
)

// handleStatus returns the current detection state
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return c.JSON(s.state)
}

// handleGetConfig returns the active pipeline config
func (s *Server) handleGetConfig(c *fiber.Ctx) error {
	if s.GetConfig == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "config access not configured",
		})
	}
	return c.JSON(s.GetConfig())
}

// handlePutConfig validates and applies a new pipeline config
func (s *Server) handlePutConfig(c *fiber.Ctx) error {
	if s.OnConfigChange == nil || s.GetConfig == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "config updates not configured",
		})
	}

	// Start from the active config so partial updates work
	cfg := s.GetConfig()
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid config payload: " + err.Error(),
		})
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"errors": errs,
		})
	}

	if err := s.OnConfigChange(cfg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(cfg)
}

// handleFrame returns the latest annotated frame as a JPEG
func (s *Server) handleFrame(c *fiber.Ctx) error {
	s.frameMu.RLock()
	frame := s.frame
	s.frameMu.RUnlock()

	if len(frame) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no frame captured yet",
		})
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(frame)
}

// handleCameraWS streams annotated JPEG frames to a dashboard client
func (s *Server) handleCameraWS(c *websocket.Conn) {
	client := hub.NewClient(s.cameraHub, c)
	client.Run() // Blocks until the connection closes
}

// handleStatusWS streams state updates to a dashboard client
func (s *Server) handleStatusWS(c *websocket.Conn) {
	client := hub.NewClient(s.statusHub, c)
	client.Run()
}
