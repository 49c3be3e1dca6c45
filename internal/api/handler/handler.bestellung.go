package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/logger"
	"github.com/enzel-org/BestellDesk/internal/utility"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BestellungHandler serves the admin order management endpoints.
type BestellungHandler struct {
	bestellungen *services.BestellungService
}

// NewBestellungHandler creates the order handler.
func NewBestellungHandler(bestellungen *services.BestellungService) *BestellungHandler {
	return &BestellungHandler{bestellungen: bestellungen}
}

// parseIDParam reads the :id route parameter. Invalid hex is reported the
// same as an unknown id.
func parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := utility.ParseObjectID(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.ErrNotFound
	}
	return id, nil
}

// HandleList answers GET /admin/bestellungen with all orders and their
// derived totals and change.
func (h *BestellungHandler) HandleList(c fiber.Ctx) error {
	ansichten, err := h.bestellungen.ListWithTotals(c.Context())
	return HandleResponse(c, ansichten, err)
}

// HandleEditView answers GET /admin/bestellung/bearbeiten/:id with the order
// to edit.
func (h *BestellungHandler) HandleEditView(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	ansicht, err := h.bestellungen.Get(c.Context(), id)
	return HandleResponse(c, ansicht, err)
}

// HandleEdit answers POST /admin/bestellung/bearbeiten/:id. The form carries
// the order name plus dish rows gericht_{i}_{feld}, with anzahl_gerichte
// declaring the row count.
func (h *BestellungHandler) HandleEdit(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	gerichte, err := dto.ParseGerichteForm(c.FormValue)
	if err != nil {
		return HandleError(c, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
	}

	input := dto.EditBestellungInput{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Gerichte: gerichte,
	}

	if _, err := h.bestellungen.Edit(c.Context(), id, &input); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/bestellungen")
}

// HandleZahlung answers POST /admin/bestellung/zahlung/:id with the payment
// form fields erhalten, betrag and rueckgeld_gegeben. A malformed betrag is
// recorded as 0, not rejected.
func (h *BestellungHandler) HandleZahlung(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return HandleError(c, err)
	}

	input, betragOK := dto.ParseZahlungForm(c.FormValue)
	if !betragOK {
		logger.WithRequest(c).WithField("betrag", c.FormValue("betrag")).Warn("Betrag nicht lesbar, als 0 gespeichert")
	}

	if _, err := h.bestellungen.RecordPayment(c.Context(), id, input); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/bestellungen")
}

// HandleDelete answers POST /admin/bestellung/loeschen/:id. Deleting an
// unknown order succeeds; the redirect target looks the same either way.
func (h *BestellungHandler) HandleDelete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		// Invalid ids still land back on the listing; delete is idempotent.
		return RedirectAfterForm(c, "/admin/bestellungen")
	}

	if err := h.bestellungen.Delete(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	return RedirectAfterForm(c, "/admin/bestellungen")
}

// HandleDeleteAll answers POST /admin/bestellungen/alle-loeschen.
func (h *BestellungHandler) HandleDeleteAll(c fiber.Ctx) error {
	deleted, err := h.bestellungen.DeleteAll(c.Context())
	if err != nil {
		return HandleError(c, err)
	}
	logger.WithRequest(c).WithField("anzahl", deleted).Info("Alle Bestellungen gelöscht")
	return RedirectAfterForm(c, "/admin/bestellungen")
}
