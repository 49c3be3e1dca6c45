package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/global"
	"github.com/enzel-org/BestellDesk/internal/logger"
)

// PublicHandler serves the unauthenticated endpoints: the order form data
// and order submission.
type PublicHandler struct {
	bestellungen *services.BestellungService
	lieferanten  *services.LieferantService
	speisen      *services.SpeiseService
	kategorien   *services.KategorieService
	zeitfenster  *services.ZeitfensterService
}

// NewPublicHandler creates the public handler.
func NewPublicHandler(
	bestellungen *services.BestellungService,
	lieferanten *services.LieferantService,
	speisen *services.SpeiseService,
	kategorien *services.KategorieService,
	zeitfenster *services.ZeitfensterService,
) *PublicHandler {
	return &PublicHandler{
		bestellungen: bestellungen,
		lieferanten:  lieferanten,
		speisen:      speisen,
		kategorien:   kategorien,
		zeitfenster:  zeitfenster,
	}
}

// HandleHome serves the order form data: the active supplier with its menu,
// and whether the ordering window is currently open.
func (h *PublicHandler) HandleHome(c fiber.Ctx) error {
	ctx := c.Context()

	offen, err := h.zeitfenster.IstOffen(ctx, time.Now())
	if err != nil {
		return HandleError(c, err)
	}

	data := fiber.Map{
		"bestellungOffen": offen,
	}

	if fenster, found, err := h.zeitfenster.Get(ctx); err != nil {
		return HandleError(c, err)
	} else if found {
		data["zeitfenster"] = fiber.Map{
			"von":  fenster.Von,
			"bis":  fenster.Bis,
			"name": fenster.Name,
		}
	}

	lieferant, found, err := h.lieferanten.GetActive(ctx)
	if err != nil {
		return HandleError(c, err)
	}
	if found {
		data["lieferant"] = lieferant

		karte, err := h.speisen.ListByLieferant(ctx, lieferant.ID)
		if err != nil {
			return HandleError(c, err)
		}
		data["speisekarte"] = karte

		kategorien, err := h.kategorien.ListByLieferant(ctx, lieferant.ID)
		if err != nil {
			return HandleError(c, err)
		}
		data["kategorien"] = kategorien
	}

	return JSONResponse(c, common.StatusOK, data)
}

// HandleSubmitBestellung accepts a public order submission.
//
//	POST /api/bestellung
//	{"name": "...", "gerichte": [{"nr": 1, "name": "...", "preis": 5.5}]}
func (h *PublicHandler) HandleSubmitBestellung(c fiber.Ctx) error {
	var input dto.SubmitBestellungInput
	if err := c.Bind().Body(&input); err != nil {
		return JSONResponse(c, common.StatusBadRequest, fiber.Map{
			"status": "error",
			"reason": common.MsgValidationError,
		})
	}

	if err := global.Validate.Struct(&input); err != nil {
		return JSONResponse(c, common.StatusBadRequest, fiber.Map{
			"status": "error",
			"reason": common.MsgValidationError,
		})
	}

	created, err := h.bestellungen.Submit(c.Context(), &input)
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) && customErr.StatusCode == common.StatusBadRequest {
			return JSONResponse(c, common.StatusBadRequest, fiber.Map{
				"status": "error",
				"reason": customErr.Message,
			})
		}
		logger.WithRequest(c).WithError(err).Error("Bestellung konnte nicht gespeichert werden")
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusCreated, fiber.Map{
		"status": "ok",
		"id":     created.ID.Hex(),
		"code":   created.Bestellcode,
	})
}
