package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzel-org/BestellDesk/internal/models"
)

func TestDumpContainsDataCollections(t *testing.T) {
	bestellungen := newFakeStore[models.Bestellung]()
	lieferanten := newFakeStore[models.Lieferant]()
	speisen := newFakeStore[models.Speise]()
	kategorien := newFakeStore[models.Kategorie]()
	einstellungen := newFakeStore[models.Einstellung]()
	svc := NewExportService(bestellungen, lieferanten, speisen, kategorien, einstellungen)
	ctx := context.Background()

	_, err := bestellungen.InsertOne(ctx, models.Bestellung{
		Name:     "Anna",
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 5.5}},
	})
	require.NoError(t, err)
	_, err = lieferanten.InsertOne(ctx, models.Lieferant{Name: "Thai Garden"})
	require.NoError(t, err)

	dump, err := svc.Dump(ctx)
	require.NoError(t, err)

	assert.Contains(t, dump, "exportiertAm")
	assert.Len(t, dump[models.CollBestellungen], 1)
	assert.Len(t, dump[models.CollLieferanten], 1)
	assert.Contains(t, dump, models.CollSpeisen)
	assert.Contains(t, dump, models.CollKategorien)
	assert.Contains(t, dump, models.CollEinstellungen)

	// Admin accounts stay out of the export.
	assert.NotContains(t, dump, models.CollAdminBenutzer)
}
