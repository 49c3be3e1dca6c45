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

func newLieferantService() (*LieferantService, *fakeStore[models.Lieferant], *fakeStore[models.Einstellung]) {
	lieferanten := newFakeStore[models.Lieferant]()
	einstellungen := newFakeStore[models.Einstellung]()
	return NewLieferantService(lieferanten, einstellungen), lieferanten, einstellungen
}

func TestCreateStartsInactive(t *testing.T) {
	svc, _, _ := newLieferantService()

	created, err := svc.Create(context.Background(), &dto.LieferantInput{
		Name:         "Thai Garden",
		Lieferkosten: 1.5,
		Nummer:       "+49123456",
	})
	require.NoError(t, err)
	assert.False(t, created.Aktiv)
}

func TestGetActiveNone(t *testing.T) {
	svc, _, _ := newLieferantService()

	_, found, err := svc.GetActive(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestActivateIsExclusive(t *testing.T) {
	svc, _, _ := newLieferantService()
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.LieferantInput{Name: "Thai Garden", Nummer: "+49111"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, &dto.LieferantInput{Name: "Pizza Roma", Nummer: "+49222"})
	require.NoError(t, err)

	_, err = svc.Activate(ctx, a.ID)
	require.NoError(t, err)
	_, err = svc.Activate(ctx, b.ID)
	require.NoError(t, err)

	aktiv, found, err := svc.GetActive(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, b.ID, aktiv.ID)

	// The previously active supplier was switched off.
	aNow, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, aNow.Aktiv)
}

func TestActivateMirrorsWhatsappNummer(t *testing.T) {
	svc, _, _ := newLieferantService()
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.LieferantInput{Name: "Thai Garden", Nummer: "+49111"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, &dto.LieferantInput{Name: "Pizza Roma", Nummer: "+49222"})
	require.NoError(t, err)

	_, err = svc.Activate(ctx, a.ID)
	require.NoError(t, err)
	_, err = svc.Activate(ctx, b.ID)
	require.NoError(t, err)

	nummer, err := svc.WhatsappNummer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+49222", nummer)
}

func TestActivateUnknownLieferant(t *testing.T) {
	svc, _, _ := newLieferantService()

	_, err := svc.Activate(context.Background(), newTestID())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestWhatsappNummerUnset(t *testing.T) {
	svc, _, _ := newLieferantService()

	nummer, err := svc.WhatsappNummer(context.Background())
	require.NoError(t, err)
	assert.Empty(t, nummer)
}

func TestEditKeepsAktivFlag(t *testing.T) {
	svc, _, _ := newLieferantService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.LieferantInput{Name: "Thai Garden"})
	require.NoError(t, err)
	_, err = svc.Activate(ctx, created.ID)
	require.NoError(t, err)

	updated, err := svc.Edit(ctx, created.ID, &dto.LieferantInput{
		Name:         "Thai Garden 2",
		Lieferkosten: 2.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Thai Garden 2", updated.Name)
	assert.True(t, updated.Aktiv)
}

func TestDeleteLieferantIsIdempotent(t *testing.T) {
	svc, _, _ := newLieferantService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.LieferantInput{Name: "Thai Garden"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))
}
