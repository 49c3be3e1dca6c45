package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/common"
)

// SystemHandler serves liveness and metadata endpoints.
type SystemHandler struct{}

// NewSystemHandler creates the system handler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth answers liveness probes.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status": "ok",
	})
}
