package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/logger"
	"github.com/enzel-org/BestellDesk/internal/models"
)

// BestellungService handles order submission, listing with derived totals,
// editing, payment recording and deletion.
type BestellungService struct {
	bestellungen MongoService[models.Bestellung]
	lieferanten  MongoService[models.Lieferant]
}

// NewBestellungService wires the order service to its stores.
func NewBestellungService(bestellungen MongoService[models.Bestellung], lieferanten MongoService[models.Lieferant]) *BestellungService {
	return &BestellungService{
		bestellungen: bestellungen,
		lieferanten:  lieferanten,
	}
}

// BestellungAnsicht is an order annotated with its derived amounts for the
// admin listing. Rueckgeld is nil when no payment is recorded or change was
// already handed over.
type BestellungAnsicht struct {
	models.Bestellung `bson:",inline"`
	Summe             float64  `json:"summe"`
	Rueckgeld         *float64 `json:"rueckgeld,omitempty"`
}

// toGerichte converts validated dish inputs. Callers run validateGerichte
// first, so Preis is known to be set.
func toGerichte(inputs []dto.GerichtInput) []models.Gericht {
	gerichte := make([]models.Gericht, 0, len(inputs))
	for _, g := range inputs {
		gerichte = append(gerichte, models.Gericht{
			Nr:           g.Nr,
			Name:         g.Name,
			Preis:        *g.Preis,
			Schaerfegrad: g.Schaerfegrad,
			Notiz:        g.Notiz,
		})
	}
	return gerichte
}

// validateGerichte checks the per-dish invariants: nr, name and preis must
// all be present and the price non-negative. A dish that sent no price at
// all is rejected, not stored as free.
func validateGerichte(gerichte []dto.GerichtInput) error {
	for _, g := range gerichte {
		if g.Nr == 0 || strings.TrimSpace(g.Name) == "" || g.Preis == nil || *g.Preis < 0 {
			return common.NewError(common.ErrCodeValidationInput, "Ungültige Gerichtsdaten", common.StatusBadRequest, nil)
		}
	}
	return nil
}

// validateSubmit checks the submission invariants: a name, at least one dish,
// and nr/name/preis on every dish. The returned error message becomes the
// "reason" field of the 400 response.
func validateSubmit(input *dto.SubmitBestellungInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return common.NewError(common.ErrCodeValidationInput, "Name fehlt", common.StatusBadRequest, nil)
	}
	if len(input.Gerichte) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "Keine Gerichte angegeben", common.StatusBadRequest, nil)
	}
	return validateGerichte(input.Gerichte)
}

// Submit validates and stores a public order submission. The currently
// active supplier, if any, is stamped onto the order.
func (s *BestellungService) Submit(ctx context.Context, input *dto.SubmitBestellungInput) (models.Bestellung, error) {
	var zero models.Bestellung

	if err := validateSubmit(input); err != nil {
		return zero, err
	}

	bestellung := models.Bestellung{
		Name:        strings.TrimSpace(input.Name),
		Bestellcode: strings.ReplaceAll(uuid.New().String(), "-", "")[:8],
		Gerichte:    toGerichte(input.Gerichte),
	}

	// Orders remember which supplier they were placed with. Absence of an
	// active supplier is not an error; the reference just stays unset.
	aktiv, err := s.lieferanten.FindOne(ctx, bson.M{"aktiv": true}, nil)
	if err == nil {
		bestellung.LieferantID = &aktiv.ID
	} else if !isNotFound(err) {
		return zero, err
	}

	created, err := s.bestellungen.InsertOne(ctx, bestellung)
	if err != nil {
		return zero, err
	}

	logger.GetAppLogger().WithField("bestellcode", created.Bestellcode).Info("Bestellung gespeichert")
	return created, nil
}

// Annotate derives total and change for a single order.
func Annotate(b models.Bestellung) BestellungAnsicht {
	var summe float64
	for _, g := range b.Gerichte {
		summe += g.Preis
	}
	ansicht := BestellungAnsicht{
		Bestellung: b,
		Summe:      Round2(summe),
	}

	// Change is only meaningful while a recorded payment is still waiting
	// for its change; once handed over it is reported as unset.
	if b.Zahlung != nil && !b.Zahlung.RueckgeldGegeben {
		rueckgeld := Round2(b.Zahlung.Betrag - ansicht.Summe)
		if rueckgeld < 0 {
			rueckgeld = 0
		}
		ansicht.Rueckgeld = &rueckgeld
	}
	return ansicht
}

// ListWithTotals returns all orders, newest first, annotated with their
// derived amounts.
func (s *BestellungService) ListWithTotals(ctx context.Context) ([]BestellungAnsicht, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	bestellungen, err := s.bestellungen.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	ansichten := make([]BestellungAnsicht, 0, len(bestellungen))
	for _, b := range bestellungen {
		ansichten = append(ansichten, Annotate(b))
	}
	return ansichten, nil
}

// Get returns one order with derived amounts for the admin edit view.
func (s *BestellungService) Get(ctx context.Context, id primitive.ObjectID) (BestellungAnsicht, error) {
	bestellung, err := s.bestellungen.FindOneById(ctx, id)
	if err != nil {
		return BestellungAnsicht{}, err
	}
	return Annotate(bestellung), nil
}

// Edit replaces an order's name and full dish list.
func (s *BestellungService) Edit(ctx context.Context, id primitive.ObjectID, input *dto.EditBestellungInput) (models.Bestellung, error) {
	var zero models.Bestellung

	if strings.TrimSpace(input.Name) == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Name fehlt", common.StatusBadRequest, nil)
	}
	if len(input.Gerichte) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Keine Gerichte angegeben", common.StatusBadRequest, nil)
	}
	if err := validateGerichte(input.Gerichte); err != nil {
		return zero, err
	}

	return s.bestellungen.UpdateById(ctx, id, &UpdateData{Set: map[string]interface{}{
		"name":     strings.TrimSpace(input.Name),
		"gerichte": toGerichte(input.Gerichte),
	}})
}

// RecordPayment stores the payment state of an order. The amount was already
// parsed leniently at the form boundary (malformed input became 0).
func (s *BestellungService) RecordPayment(ctx context.Context, id primitive.ObjectID, input dto.ZahlungInput) (models.Bestellung, error) {
	return s.bestellungen.UpdateById(ctx, id, &UpdateData{Set: map[string]interface{}{
		"zahlung": models.Zahlung{
			Erhalten:         input.Erhalten,
			Betrag:           Round2(input.Betrag),
			RueckgeldGegeben: input.RueckgeldGegeben,
		},
	}})
}

// Delete removes one order. Unknown ids are a no-op.
func (s *BestellungService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.bestellungen.DeleteById(ctx, id)
}

// DeleteAll removes every order and returns how many were deleted.
func (s *BestellungService) DeleteAll(ctx context.Context) (int64, error) {
	return s.bestellungen.DeleteMany(ctx, bson.M{})
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}
