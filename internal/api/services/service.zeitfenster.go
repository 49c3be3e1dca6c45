package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/logger"
	"github.com/enzel-org/BestellDesk/internal/models"
)

// ZeitfensterService manages the daily ordering window.
type ZeitfensterService struct {
	einstellungen MongoService[models.Einstellung]
}

// NewZeitfensterService wires the window service to the settings store.
func NewZeitfensterService(einstellungen MongoService[models.Einstellung]) *ZeitfensterService {
	return &ZeitfensterService{einstellungen: einstellungen}
}

// Get returns the configured window. found is false when none was ever set.
func (s *ZeitfensterService) Get(ctx context.Context) (models.Einstellung, bool, error) {
	fenster, err := s.einstellungen.FindOne(ctx, bson.M{"typ": models.EinstellungTypZeitfenster}, nil)
	if err != nil {
		if isNotFound(err) {
			return models.Einstellung{}, false, nil
		}
		return models.Einstellung{}, false, err
	}
	return fenster, true, nil
}

// Set upserts the single window document.
func (s *ZeitfensterService) Set(ctx context.Context, input *dto.ZeitfensterInput) (models.Einstellung, error) {
	return s.einstellungen.Upsert(ctx, bson.M{"typ": models.EinstellungTypZeitfenster}, &UpdateData{Set: map[string]interface{}{
		"typ":  models.EinstellungTypZeitfenster,
		"von":  input.Von,
		"bis":  input.Bis,
		"name": input.Name,
	}})
}

// ParseUhrzeit parses an HH:MM clock value into minutes since midnight.
func ParseUhrzeit(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("ungültige Uhrzeit: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("ungültige Stunde: %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("ungültige Minute: %q", s)
	}
	return hour*60 + minute, nil
}

// FensterOffen evaluates a window against a wall-clock time, inclusive on
// both ends. Malformed stored values fail open: ordering stays possible and
// the misconfiguration is logged instead of silently locking customers out.
func FensterOffen(von, bis string, now time.Time) bool {
	vonMin, errVon := ParseUhrzeit(von)
	bisMin, errBis := ParseUhrzeit(bis)
	if errVon != nil || errBis != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"von": von,
			"bis": bis,
		}).Warn("Zeitfenster nicht lesbar, Bestellungen bleiben offen")
		return true
	}

	nowMin := now.Hour()*60 + now.Minute()
	return vonMin <= nowMin && nowMin <= bisMin
}

// IstOffen reports whether ordering is currently open. An unset window means
// no restriction.
func (s *ZeitfensterService) IstOffen(ctx context.Context, now time.Time) (bool, error) {
	fenster, found, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}
	return FensterOffen(fenster.Von, fenster.Bis, now), nil
}
