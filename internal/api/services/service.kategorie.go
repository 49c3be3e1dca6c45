package services

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/models"
)

// KategorieService manages the per-supplier menu categories.
type KategorieService struct {
	kategorien  MongoService[models.Kategorie]
	lieferanten MongoService[models.Lieferant]
}

// NewKategorieService wires the category service to its stores.
func NewKategorieService(kategorien MongoService[models.Kategorie], lieferanten MongoService[models.Lieferant]) *KategorieService {
	return &KategorieService{
		kategorien:  kategorien,
		lieferanten: lieferanten,
	}
}

// ListByLieferant returns the supplier's categories ordered by position, with
// the name as tie breaker.
func (s *KategorieService) ListByLieferant(ctx context.Context, lieferantID primitive.ObjectID) ([]models.Kategorie, error) {
	kategorien, err := s.kategorien.Find(ctx, bson.M{"lieferantId": lieferantID}, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(kategorien, func(i, j int) bool {
		if kategorien[i].Position != kategorien[j].Position {
			return kategorien[i].Position < kategorien[j].Position
		}
		return kategorien[i].Name < kategorien[j].Name
	})
	return kategorien, nil
}

// Create appends a category to the end of a supplier's category list. The
// supplier must exist.
func (s *KategorieService) Create(ctx context.Context, lieferantID primitive.ObjectID, input *dto.KategorieInput) (models.Kategorie, error) {
	var zero models.Kategorie

	if strings.TrimSpace(input.Name) == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Name fehlt", common.StatusBadRequest, nil)
	}
	if _, err := s.lieferanten.FindOneById(ctx, lieferantID); err != nil {
		return zero, err
	}

	bestehende, err := s.ListByLieferant(ctx, lieferantID)
	if err != nil {
		return zero, err
	}
	position := 0
	if len(bestehende) > 0 {
		position = bestehende[len(bestehende)-1].Position + 1
	}

	return s.kategorien.InsertOne(ctx, models.Kategorie{
		LieferantID: lieferantID,
		Name:        strings.TrimSpace(input.Name),
		Position:    position,
	})
}

// Update renames a category and, when a position is given, moves it.
func (s *KategorieService) Update(ctx context.Context, id primitive.ObjectID, input *dto.KategorieInput) (models.Kategorie, error) {
	var zero models.Kategorie

	if strings.TrimSpace(input.Name) == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Name fehlt", common.StatusBadRequest, nil)
	}

	set := map[string]interface{}{"name": strings.TrimSpace(input.Name)}
	if input.Position != nil {
		set["position"] = *input.Position
	}
	return s.kategorien.UpdateById(ctx, id, &UpdateData{Set: set})
}

// Delete removes a category. Dishes keep their reference; an unknown category
// id in a dish just means the dish shows up ungrouped.
func (s *KategorieService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.kategorien.DeleteById(ctx, id)
}

// DeleteByLieferant removes a supplier's categories, used when the supplier
// itself is deleted.
func (s *KategorieService) DeleteByLieferant(ctx context.Context, lieferantID primitive.ObjectID) (int64, error) {
	return s.kategorien.DeleteMany(ctx, bson.M{"lieferantId": lieferantID})
}
