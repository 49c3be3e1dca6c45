package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/enzel-org/BestellDesk/internal/models"
)

// ExportService produces a full JSON dump of the data collections for
// backups. Admin accounts are deliberately excluded so password hashes never
// leave the database.
type ExportService struct {
	bestellungen  MongoService[models.Bestellung]
	lieferanten   MongoService[models.Lieferant]
	speisen       MongoService[models.Speise]
	kategorien    MongoService[models.Kategorie]
	einstellungen MongoService[models.Einstellung]
}

// NewExportService wires the export service to the data stores.
func NewExportService(
	bestellungen MongoService[models.Bestellung],
	lieferanten MongoService[models.Lieferant],
	speisen MongoService[models.Speise],
	kategorien MongoService[models.Kategorie],
	einstellungen MongoService[models.Einstellung],
) *ExportService {
	return &ExportService{
		bestellungen:  bestellungen,
		lieferanten:   lieferanten,
		speisen:       speisen,
		kategorien:    kategorien,
		einstellungen: einstellungen,
	}
}

// Dump reads every data collection and returns them keyed by collection name,
// together with the export timestamp.
func (s *ExportService) Dump(ctx context.Context) (map[string]interface{}, error) {
	bestellungen, err := s.bestellungen.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	lieferanten, err := s.lieferanten.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	speisen, err := s.speisen.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	kategorien, err := s.kategorien.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	einstellungen, err := s.einstellungen.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"exportiertAm":           time.Now().UnixMilli(),
		models.CollBestellungen:  bestellungen,
		models.CollLieferanten:   lieferanten,
		models.CollSpeisen:       speisen,
		models.CollKategorien:    kategorien,
		models.CollEinstellungen: einstellungen,
	}, nil
}
