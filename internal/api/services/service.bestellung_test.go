package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/models"
)

func euro(v float64) *float64 {
	return &v
}

func newBestellungService() (*BestellungService, *fakeStore[models.Bestellung], *fakeStore[models.Lieferant]) {
	bestellungen := newFakeStore[models.Bestellung]()
	lieferanten := newFakeStore[models.Lieferant]()
	return NewBestellungService(bestellungen, lieferanten), bestellungen, lieferanten
}

func TestSubmitRejectsMissingName(t *testing.T) {
	svc, _, _ := newBestellungService()

	_, err := svc.Submit(context.Background(), &dto.SubmitBestellungInput{
		Name:     "   ",
		Gerichte: []dto.GerichtInput{{Nr: 1, Name: "Suppe", Preis: euro(5.5)}},
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Name fehlt")
}

func TestSubmitRejectsEmptyGerichte(t *testing.T) {
	svc, _, _ := newBestellungService()

	_, err := svc.Submit(context.Background(), &dto.SubmitBestellungInput{
		Name:     "Anna",
		Gerichte: nil,
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Keine Gerichte angegeben")
}

func TestSubmitRejectsInvalidGericht(t *testing.T) {
	svc, _, _ := newBestellungService()

	_, err := svc.Submit(context.Background(), &dto.SubmitBestellungInput{
		Name:     "Anna",
		Gerichte: []dto.GerichtInput{{Nr: 0, Name: "Suppe", Preis: euro(5.5)}},
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Ungültige Gerichtsdaten")
}

func TestSubmitRejectsMissingPreis(t *testing.T) {
	svc, bestellungen, _ := newBestellungService()
	ctx := context.Background()

	// A dish without any price must not be stored as a free dish.
	_, err := svc.Submit(ctx, &dto.SubmitBestellungInput{
		Name:     "Anna",
		Gerichte: []dto.GerichtInput{{Nr: 1, Name: "Suppe"}},
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Ungültige Gerichtsdaten")

	stored, err := bestellungen.Find(ctx, bson.M{}, nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestEditRejectsMissingPreis(t *testing.T) {
	svc, bestellungen, _ := newBestellungService()
	ctx := context.Background()

	created, err := bestellungen.InsertOne(ctx, models.Bestellung{
		Name:     "Anna",
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 5.5}},
	})
	require.NoError(t, err)

	_, err = svc.Edit(ctx, created.ID, &dto.EditBestellungInput{
		Name:     "Anna",
		Gerichte: []dto.GerichtInput{{Nr: 1, Name: "Suppe"}},
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Ungültige Gerichtsdaten")
}

func TestSubmitStampsActiveLieferant(t *testing.T) {
	svc, _, lieferanten := newBestellungService()
	ctx := context.Background()

	aktiv, err := lieferanten.InsertOne(ctx, models.Lieferant{Name: "Thai Garden", Aktiv: true})
	require.NoError(t, err)

	created, err := svc.Submit(ctx, &dto.SubmitBestellungInput{
		Name:     "Anna",
		Gerichte: []dto.GerichtInput{{Nr: 1, Name: "Suppe", Preis: euro(5.5)}},
	})
	require.NoError(t, err)

	require.NotNil(t, created.LieferantID)
	assert.Equal(t, aktiv.ID, *created.LieferantID)
	assert.Len(t, created.Bestellcode, 8)
	assert.Equal(t, "Anna", created.Name)
}

func TestSubmitWithoutActiveLieferant(t *testing.T) {
	svc, _, _ := newBestellungService()

	created, err := svc.Submit(context.Background(), &dto.SubmitBestellungInput{
		Name:     "Anna",
		Gerichte: []dto.GerichtInput{{Nr: 1, Name: "Suppe", Preis: euro(5.5)}},
	})
	require.NoError(t, err)
	assert.Nil(t, created.LieferantID)
}

func TestAnnotateSumsGerichte(t *testing.T) {
	ansicht := Annotate(models.Bestellung{
		Name: "Anna",
		Gerichte: []models.Gericht{
			{Nr: 1, Name: "Suppe", Preis: 5.5},
			{Nr: 7, Name: "Curry", Preis: 9.9},
		},
	})
	assert.Equal(t, 15.4, ansicht.Summe)
	assert.Nil(t, ansicht.Rueckgeld)
}

func TestAnnotateRueckgeld(t *testing.T) {
	ansicht := Annotate(models.Bestellung{
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 8.0}},
		Zahlung:  &models.Zahlung{Erhalten: true, Betrag: 10.0},
	})
	require.NotNil(t, ansicht.Rueckgeld)
	assert.Equal(t, 2.0, *ansicht.Rueckgeld)
}

func TestAnnotateRueckgeldGegeben(t *testing.T) {
	ansicht := Annotate(models.Bestellung{
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 8.0}},
		Zahlung:  &models.Zahlung{Erhalten: true, Betrag: 10.0, RueckgeldGegeben: true},
	})
	assert.Nil(t, ansicht.Rueckgeld)
}

func TestAnnotateRueckgeldClampedAtZero(t *testing.T) {
	ansicht := Annotate(models.Bestellung{
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 8.0}},
		Zahlung:  &models.Zahlung{Erhalten: true, Betrag: 5.0},
	})
	require.NotNil(t, ansicht.Rueckgeld)
	assert.Equal(t, 0.0, *ansicht.Rueckgeld)
}

func TestRecordPaymentAndGet(t *testing.T) {
	svc, bestellungen, _ := newBestellungService()
	ctx := context.Background()

	created, err := bestellungen.InsertOne(ctx, models.Bestellung{
		Name:     "Anna",
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 5.5}},
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, created.ID, dto.ZahlungInput{Erhalten: true, Betrag: 10.5})
	require.NoError(t, err)

	ansicht, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, ansicht.Zahlung)
	assert.True(t, ansicht.Zahlung.Erhalten)
	assert.Equal(t, 10.5, ansicht.Zahlung.Betrag)
	require.NotNil(t, ansicht.Rueckgeld)
	assert.Equal(t, 5.0, *ansicht.Rueckgeld)
}

func TestEditRejectsEmptyGerichte(t *testing.T) {
	svc, bestellungen, _ := newBestellungService()
	ctx := context.Background()

	created, err := bestellungen.InsertOne(ctx, models.Bestellung{
		Name:     "Anna",
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 5.5}},
	})
	require.NoError(t, err)

	_, err = svc.Edit(ctx, created.ID, &dto.EditBestellungInput{Name: "Anna"})
	require.Error(t, err)
	assert.EqualError(t, err, "Keine Gerichte angegeben")
}

func TestEditReplacesGerichte(t *testing.T) {
	svc, bestellungen, _ := newBestellungService()
	ctx := context.Background()

	created, err := bestellungen.InsertOne(ctx, models.Bestellung{
		Name:     "Anna",
		Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 5.5}},
	})
	require.NoError(t, err)

	updated, err := svc.Edit(ctx, created.ID, &dto.EditBestellungInput{
		Name: "Anna B.",
		Gerichte: []dto.GerichtInput{
			{Nr: 7, Name: "Curry", Preis: euro(9.9), Notiz: "ohne Koriander"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna B.", updated.Name)
	require.Len(t, updated.Gerichte, 1)
	assert.Equal(t, "Curry", updated.Gerichte[0].Name)
	assert.Equal(t, "ohne Koriander", updated.Gerichte[0].Notiz)
}

func TestDeleteUnknownIdIsNoop(t *testing.T) {
	svc, _, _ := newBestellungService()

	err := svc.Delete(context.Background(), newTestID())
	assert.NoError(t, err)
}

func TestDeleteAll(t *testing.T) {
	svc, bestellungen, _ := newBestellungService()
	ctx := context.Background()

	for _, name := range []string{"Anna", "Ben"} {
		_, err := bestellungen.InsertOne(ctx, models.Bestellung{
			Name:     name,
			Gerichte: []models.Gericht{{Nr: 1, Name: "Suppe", Preis: 5.5}},
		})
		require.NoError(t, err)
	}

	deleted, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	// A second run deletes nothing and still succeeds.
	deleted, err = svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
