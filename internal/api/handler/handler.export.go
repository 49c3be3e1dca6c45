package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/logger"
)

// ExportHandler serves the admin backup download.
type ExportHandler struct {
	export *services.ExportService
}

// NewExportHandler creates the export handler.
func NewExportHandler(export *services.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// HandleExport answers GET /admin/export with a JSON dump of all data
// collections, served as a file download.
func (h *ExportHandler) HandleExport(c fiber.Ctx) error {
	dump, err := h.export.Dump(c.Context())
	if err != nil {
		return HandleError(c, err)
	}

	filename := fmt.Sprintf("bestelldesk-export-%s.json", time.Now().Format("2006-01-02"))
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	logger.WithRequest(c).Info("Datenexport erstellt")
	return JSONResponse(c, common.StatusOK, dump)
}
