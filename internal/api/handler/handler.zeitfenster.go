package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/global"
	"github.com/enzel-org/BestellDesk/internal/logger"
)

// ZeitfensterHandler serves the admin ordering-window endpoints.
type ZeitfensterHandler struct {
	zeitfenster *services.ZeitfensterService
}

// NewZeitfensterHandler creates the window handler.
func NewZeitfensterHandler(zeitfenster *services.ZeitfensterService) *ZeitfensterHandler {
	return &ZeitfensterHandler{zeitfenster: zeitfenster}
}

// HandleView answers GET /admin/zeitfenster with the current window, if any.
func (h *ZeitfensterHandler) HandleView(c fiber.Ctx) error {
	fenster, found, err := h.zeitfenster.Get(c.Context())
	if err != nil {
		return HandleError(c, err)
	}

	if !found {
		return JSONResponse(c, common.StatusOK, fiber.Map{
			"gesetzt": false,
		})
	}
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"gesetzt": true,
		"von":     fenster.Von,
		"bis":     fenster.Bis,
		"name":    fenster.Name,
	})
}

// HandleSet answers POST /admin/zeitfenster with the form fields von, bis
// and name. Both times must be well-formed HH:MM; the order of von and bis
// is not checked here, a reversed window simply never opens.
func (h *ZeitfensterHandler) HandleSet(c fiber.Ctx) error {
	input := dto.ZeitfensterInput{
		Von:  strings.TrimSpace(c.FormValue("von")),
		Bis:  strings.TrimSpace(c.FormValue("bis")),
		Name: strings.TrimSpace(c.FormValue("name")),
	}

	if err := global.Validate.Struct(&input); err != nil {
		return HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
	}

	if _, err := h.zeitfenster.Set(c.Context(), &input); err != nil {
		return HandleError(c, err)
	}

	logger.WithRequest(c).WithFields(map[string]interface{}{
		"von": input.Von,
		"bis": input.Bis,
	}).Info("Zeitfenster aktualisiert")
	return RedirectAfterForm(c, "/admin/zeitfenster")
}
