package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/global"
	"github.com/enzel-org/BestellDesk/internal/logger"
	"github.com/enzel-org/BestellDesk/internal/utility"
)

// LieferantHandler serves the admin supplier and menu endpoints.
type LieferantHandler struct {
	lieferanten *services.LieferantService
	speisen     *services.SpeiseService
	kategorien  *services.KategorieService
}

// NewLieferantHandler creates the supplier handler.
func NewLieferantHandler(lieferanten *services.LieferantService, speisen *services.SpeiseService, kategorien *services.KategorieService) *LieferantHandler {
	return &LieferantHandler{
		lieferanten: lieferanten,
		speisen:     speisen,
		kategorien:  kategorien,
	}
}

// parseLieferantForm reads the supplier create/edit form. Lieferkosten
// accepts both comma and dot decimals; an empty field means no delivery fee.
func parseLieferantForm(c fiber.Ctx) (*dto.LieferantInput, error) {
	input := dto.LieferantInput{
		Name:   strings.TrimSpace(c.FormValue("name")),
		Menue:  strings.TrimSpace(c.FormValue("menue")),
		Nummer: strings.TrimSpace(c.FormValue("nummer")),
	}

	if raw := strings.TrimSpace(c.FormValue("lieferkosten")); raw != "" {
		kosten, err := dto.ParsePreis(raw)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
		}
		input.Lieferkosten = kosten
	}

	if err := global.Validate.Struct(&input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return &input, nil
}

// HandleList answers GET /admin/lieferanten with all suppliers.
func (h *LieferantHandler) HandleList(c fiber.Ctx) error {
	lieferanten, err := h.lieferanten.List(c.Context())
	return HandleResponse(c, lieferanten, err)
}

// HandleCreate answers POST /admin/lieferanten. New suppliers start inactive.
func (h *LieferantHandler) HandleCreate(c fiber.Ctx) error {
	input, err := parseLieferantForm(c)
	if err != nil {
		return HandleError(c, err)
	}

	if _, err := h.lieferanten.Create(c.Context(), input); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferanten")
}

// HandleEditView answers GET /admin/lieferant/bearbeiten/:id with the
// supplier to edit.
func (h *LieferantHandler) HandleEditView(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	lieferant, err := h.lieferanten.Get(c.Context(), id)
	return HandleResponse(c, lieferant, err)
}

// HandleEdit answers POST /admin/lieferant/bearbeiten/:id.
func (h *LieferantHandler) HandleEdit(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	input, err := parseLieferantForm(c)
	if err != nil {
		return HandleError(c, err)
	}

	if _, err := h.lieferanten.Edit(c.Context(), id, input); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferanten")
}

// HandleActivate answers POST /admin/lieferant/aktivieren/:id. Exactly one
// supplier is active afterwards.
func (h *LieferantHandler) HandleActivate(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	if _, err := h.lieferanten.Activate(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferanten")
}

// HandleDelete answers POST /admin/lieferant/loeschen/:id. The supplier's
// menu and categories go with it; existing orders keep their stale reference.
func (h *LieferantHandler) HandleDelete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return RedirectAfterForm(c, "/admin/lieferanten")
	}

	if err := h.lieferanten.Delete(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	if geloescht, err := h.speisen.DeleteByLieferant(c.Context(), id); err != nil {
		return HandleError(c, err)
	} else if geloescht > 0 {
		logger.WithRequest(c).WithField("anzahl", geloescht).Info("Speisekarte mit Lieferant entfernt")
	}
	if _, err := h.kategorien.DeleteByLieferant(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferanten")
}

// HandleSpeisenList answers GET /admin/lieferant/:id/speisen with the
// supplier and its menu.
func (h *LieferantHandler) HandleSpeisenList(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	lieferant, err := h.lieferanten.Get(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}

	karte, err := h.speisen.ListByLieferant(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}

	kategorien, err := h.kategorien.ListByLieferant(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"lieferant":  lieferant,
		"speisen":    karte,
		"kategorien": kategorien,
	})
}

// HandleSpeiseCreate answers POST /admin/lieferant/:id/speisen with the dish
// form fields nr, name, preis and schaerfegrad.
func (h *LieferantHandler) HandleSpeiseCreate(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	preis, err := dto.ParsePreis(c.FormValue("preis"))
	if err != nil {
		return HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
	}

	input := dto.SpeiseInput{
		Name:         strings.TrimSpace(c.FormValue("name")),
		Preis:        preis,
		Schaerfegrad: strings.TrimSpace(c.FormValue("schaerfegrad")),
	}
	if nr, ok := dto.ParseNr(c.FormValue("nr")); ok {
		input.Nr = nr
	}
	if raw := strings.TrimSpace(c.FormValue("kategorie")); raw != "" {
		kategorieID, err := utility.ParseObjectID(raw)
		if err != nil {
			return HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
		}
		input.Kategorien = append(input.Kategorien, kategorieID)
	}

	if err := global.Validate.Struct(&input); err != nil {
		return HandleError(c, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
	}

	if _, err := h.speisen.Create(c.Context(), id, &input); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferant/"+id.Hex()+"/speisen")
}

// HandleSpeiseDelete answers POST /admin/speise/loeschen/:id. The redirect
// lands on the supplier listing since the dish, and with it the supplier
// reference, may already be gone.
func (h *LieferantHandler) HandleSpeiseDelete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return RedirectAfterForm(c, "/admin/lieferanten")
	}

	if err := h.speisen.Delete(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferanten")
}

// parseKategorieForm reads the category form fields name and position.
func parseKategorieForm(c fiber.Ctx) (*dto.KategorieInput, error) {
	input := dto.KategorieInput{
		Name: strings.TrimSpace(c.FormValue("name")),
	}
	if raw := strings.TrimSpace(c.FormValue("position")); raw != "" {
		position, ok := dto.ParseNr(raw)
		if !ok {
			return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, nil)
		}
		input.Position = &position
	}

	if err := global.Validate.Struct(&input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return &input, nil
}

// HandleKategorienList answers GET /admin/lieferant/:id/kategorien with the
// supplier and its categories in display order.
func (h *LieferantHandler) HandleKategorienList(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	lieferant, err := h.lieferanten.Get(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}

	kategorien, err := h.kategorien.ListByLieferant(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"lieferant":  lieferant,
		"kategorien": kategorien,
	})
}

// HandleKategorieCreate answers POST /admin/lieferant/:id/kategorien. The new
// category is appended at the end of the supplier's list.
func (h *LieferantHandler) HandleKategorieCreate(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	input, err := parseKategorieForm(c)
	if err != nil {
		return HandleError(c, err)
	}

	if _, err := h.kategorien.Create(c.Context(), id, input); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferant/"+id.Hex()+"/kategorien")
}

// HandleKategorieEdit answers POST /admin/kategorie/bearbeiten/:id with the
// fields name and position.
func (h *LieferantHandler) HandleKategorieEdit(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	input, err := parseKategorieForm(c)
	if err != nil {
		return HandleError(c, err)
	}

	updated, err := h.kategorien.Update(c.Context(), id, input)
	if err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferant/"+updated.LieferantID.Hex()+"/kategorien")
}

// HandleKategorieDelete answers POST /admin/kategorie/loeschen/:id. Dishes
// referencing the category are left alone and show up ungrouped.
func (h *LieferantHandler) HandleKategorieDelete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return RedirectAfterForm(c, "/admin/lieferanten")
	}

	if err := h.kategorien.Delete(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/lieferanten")
}
