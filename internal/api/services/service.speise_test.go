package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/models"
)

func newSpeiseService() (*SpeiseService, *fakeStore[models.Lieferant]) {
	speisen := newFakeStore[models.Speise]()
	lieferanten := newFakeStore[models.Lieferant]()
	return NewSpeiseService(speisen, lieferanten), lieferanten
}

func TestCreateSpeiseRequiresLieferant(t *testing.T) {
	svc, _ := newSpeiseService()

	_, err := svc.Create(context.Background(), newTestID(), &dto.SpeiseInput{
		Nr:    1,
		Name:  "Tom Kha Gai",
		Preis: 6.5,
	})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestCreateAndListSpeisen(t *testing.T) {
	svc, lieferanten := newSpeiseService()
	ctx := context.Background()

	lieferant, err := lieferanten.InsertOne(ctx, models.Lieferant{Name: "Thai Garden"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, lieferant.ID, &dto.SpeiseInput{
		Nr:           1,
		Name:         "Tom Kha Gai",
		Preis:        6.5,
		Schaerfegrad: "mittel",
	})
	require.NoError(t, err)
	assert.True(t, created.Verfuegbar)
	assert.Equal(t, lieferant.ID, created.LieferantID)

	karte, err := svc.ListByLieferant(ctx, lieferant.ID)
	require.NoError(t, err)
	require.Len(t, karte, 1)
	assert.Equal(t, "Tom Kha Gai", karte[0].Name)
}

func TestListSpeisenScopedToLieferant(t *testing.T) {
	svc, lieferanten := newSpeiseService()
	ctx := context.Background()

	a, err := lieferanten.InsertOne(ctx, models.Lieferant{Name: "Thai Garden"})
	require.NoError(t, err)
	b, err := lieferanten.InsertOne(ctx, models.Lieferant{Name: "Pizza Roma"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, a.ID, &dto.SpeiseInput{Nr: 1, Name: "Tom Kha Gai", Preis: 6.5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, b.ID, &dto.SpeiseInput{Nr: 1, Name: "Margherita", Preis: 8.0})
	require.NoError(t, err)

	karte, err := svc.ListByLieferant(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, karte, 1)
	assert.Equal(t, "Margherita", karte[0].Name)
}

func TestDeleteByLieferant(t *testing.T) {
	svc, lieferanten := newSpeiseService()
	ctx := context.Background()

	lieferant, err := lieferanten.InsertOne(ctx, models.Lieferant{Name: "Thai Garden"})
	require.NoError(t, err)

	for i, name := range []string{"Tom Kha Gai", "Pad Thai"} {
		_, err := svc.Create(ctx, lieferant.ID, &dto.SpeiseInput{Nr: i + 1, Name: name, Preis: 7.0})
		require.NoError(t, err)
	}

	deleted, err := svc.DeleteByLieferant(ctx, lieferant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	karte, err := svc.ListByLieferant(ctx, lieferant.ID)
	require.NoError(t, err)
	assert.Empty(t, karte)
}
