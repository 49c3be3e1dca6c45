package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/logger"
	"github.com/enzel-org/BestellDesk/internal/models"
)

// LieferantService handles supplier CRUD and the active-supplier switch.
type LieferantService struct {
	lieferanten   MongoService[models.Lieferant]
	einstellungen MongoService[models.Einstellung]
}

// NewLieferantService wires the supplier service to its stores.
func NewLieferantService(lieferanten MongoService[models.Lieferant], einstellungen MongoService[models.Einstellung]) *LieferantService {
	return &LieferantService{
		lieferanten:   lieferanten,
		einstellungen: einstellungen,
	}
}

// List returns all suppliers, sorted by name.
func (s *LieferantService) List(ctx context.Context) ([]models.Lieferant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.lieferanten.Find(ctx, bson.M{}, opts)
}

// Get returns one supplier, or ErrNotFound.
func (s *LieferantService) Get(ctx context.Context, id primitive.ObjectID) (models.Lieferant, error) {
	return s.lieferanten.FindOneById(ctx, id)
}

// GetActive returns the single active supplier. found is false when no
// supplier is active.
func (s *LieferantService) GetActive(ctx context.Context) (models.Lieferant, bool, error) {
	lieferant, err := s.lieferanten.FindOne(ctx, bson.M{"aktiv": true}, nil)
	if err != nil {
		if isNotFound(err) {
			return models.Lieferant{}, false, nil
		}
		return models.Lieferant{}, false, err
	}
	return lieferant, true, nil
}

// Create stores a new supplier. New suppliers always start inactive.
func (s *LieferantService) Create(ctx context.Context, input *dto.LieferantInput) (models.Lieferant, error) {
	return s.lieferanten.InsertOne(ctx, models.Lieferant{
		Name:         input.Name,
		Lieferkosten: input.Lieferkosten,
		Menue:        input.Menue,
		Nummer:       input.Nummer,
		Aktiv:        false,
	})
}

// Edit updates a supplier's fields. The active flag is untouched; switching
// suppliers goes through Activate.
func (s *LieferantService) Edit(ctx context.Context, id primitive.ObjectID, input *dto.LieferantInput) (models.Lieferant, error) {
	return s.lieferanten.UpdateById(ctx, id, &UpdateData{Set: map[string]interface{}{
		"name":         input.Name,
		"lieferkosten": input.Lieferkosten,
		"menue":        input.Menue,
		"nummer":       input.Nummer,
	}})
}

// Delete removes a supplier. Unknown ids are a no-op.
func (s *LieferantService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.lieferanten.DeleteById(ctx, id)
}

// Activate makes the given supplier the single active one and mirrors its
// contact number into the whatsapp settings document.
//
// The switch is deliberately two-step (deactivate all, then activate the
// target) and not transactional: a crash in between leaves zero active
// suppliers until an admin activates one again. Concurrent activations are
// last-write-wins.
func (s *LieferantService) Activate(ctx context.Context, id primitive.ObjectID) (models.Lieferant, error) {
	var zero models.Lieferant

	target, err := s.lieferanten.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if _, err := s.lieferanten.UpdateMany(ctx, bson.M{"aktiv": true}, &UpdateData{Set: map[string]interface{}{
		"aktiv": false,
	}}); err != nil {
		return zero, err
	}

	aktiviert, err := s.lieferanten.UpdateById(ctx, id, &UpdateData{Set: map[string]interface{}{
		"aktiv": true,
	}})
	if err != nil {
		return zero, err
	}

	if _, err := s.einstellungen.Upsert(ctx, bson.M{"typ": models.EinstellungTypWhatsapp}, &UpdateData{Set: map[string]interface{}{
		"typ":    models.EinstellungTypWhatsapp,
		"nummer": target.Nummer,
	}}); err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("lieferant", target.Name).Info("Lieferant aktiviert")
	return aktiviert, nil
}

// WhatsappNummer returns the mirrored contact number of the active supplier,
// or empty when it was never set.
func (s *LieferantService) WhatsappNummer(ctx context.Context) (string, error) {
	einstellung, err := s.einstellungen.FindOne(ctx, bson.M{"typ": models.EinstellungTypWhatsapp}, nil)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return einstellung.Nummer, nil
}
