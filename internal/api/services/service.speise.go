package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/models"
)

// SpeiseService manages the per-supplier menu.
type SpeiseService struct {
	speisen     MongoService[models.Speise]
	lieferanten MongoService[models.Lieferant]
}

// NewSpeiseService wires the menu service to its stores.
func NewSpeiseService(speisen MongoService[models.Speise], lieferanten MongoService[models.Lieferant]) *SpeiseService {
	return &SpeiseService{
		speisen:     speisen,
		lieferanten: lieferanten,
	}
}

// ListByLieferant returns the supplier's menu, sorted by dish number.
func (s *SpeiseService) ListByLieferant(ctx context.Context, lieferantID primitive.ObjectID) ([]models.Speise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nr", Value: 1}})
	return s.speisen.Find(ctx, bson.M{"lieferantId": lieferantID}, opts)
}

// Create adds a dish to a supplier's menu. The supplier must exist.
func (s *SpeiseService) Create(ctx context.Context, lieferantID primitive.ObjectID, input *dto.SpeiseInput) (models.Speise, error) {
	var zero models.Speise

	if _, err := s.lieferanten.FindOneById(ctx, lieferantID); err != nil {
		return zero, err
	}

	return s.speisen.InsertOne(ctx, models.Speise{
		LieferantID:  lieferantID,
		Nr:           input.Nr,
		Name:         input.Name,
		Preis:        input.Preis,
		Schaerfegrad: input.Schaerfegrad,
		Kategorien:   input.Kategorien,
		Verfuegbar:   true,
	})
}

// Delete removes a dish from the menu. Unknown ids are a no-op.
func (s *SpeiseService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.speisen.DeleteById(ctx, id)
}

// DeleteByLieferant removes a supplier's whole menu, used when the supplier
// itself is deleted.
func (s *SpeiseService) DeleteByLieferant(ctx context.Context, lieferantID primitive.ObjectID) (int64, error) {
	return s.speisen.DeleteMany(ctx, bson.M{"lieferantId": lieferantID})
}
