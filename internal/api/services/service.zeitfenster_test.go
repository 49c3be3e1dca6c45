package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/models"
)

func clock(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestParseUhrzeit(t *testing.T) {
	minutes, err := ParseUhrzeit("11:30")
	require.NoError(t, err)
	assert.Equal(t, 11*60+30, minutes)

	for _, invalid := range []string{"", "25:00", "11:60", "11", "ab:cd"} {
		_, err := ParseUhrzeit(invalid)
		assert.Error(t, err, "expected error for %q", invalid)
	}
}

func TestFensterOffen(t *testing.T) {
	assert.True(t, FensterOffen("11:00", "14:00", clock(t, "12:00")))
	assert.False(t, FensterOffen("11:00", "14:00", clock(t, "15:00")))
	assert.False(t, FensterOffen("11:00", "14:00", clock(t, "10:59")))

	// Both ends are inclusive.
	assert.True(t, FensterOffen("11:00", "14:00", clock(t, "11:00")))
	assert.True(t, FensterOffen("11:00", "14:00", clock(t, "14:00")))
}

func TestFensterOffenFailsOpen(t *testing.T) {
	// A window that never parses must not lock customers out.
	assert.True(t, FensterOffen("kaputt", "14:00", clock(t, "03:00")))
	assert.True(t, FensterOffen("11:00", "", clock(t, "03:00")))
}

func TestFensterOffenReversed(t *testing.T) {
	// A reversed window is well-formed but never open.
	assert.False(t, FensterOffen("14:00", "11:00", clock(t, "12:00")))
}

func TestIstOffenWithoutWindow(t *testing.T) {
	svc := NewZeitfensterService(newFakeStore[models.Einstellung]())

	offen, err := svc.IstOffen(context.Background(), clock(t, "03:00"))
	require.NoError(t, err)
	assert.True(t, offen)
}

func TestSetAndIstOffen(t *testing.T) {
	svc := NewZeitfensterService(newFakeStore[models.Einstellung]())
	ctx := context.Background()

	fenster, err := svc.Set(ctx, &dto.ZeitfensterInput{Von: "11:00", Bis: "14:00", Name: "Mittag"})
	require.NoError(t, err)
	assert.Equal(t, "11:00", fenster.Von)
	assert.Equal(t, "Mittag", fenster.Name)

	offen, err := svc.IstOffen(ctx, clock(t, "12:00"))
	require.NoError(t, err)
	assert.True(t, offen)

	offen, err = svc.IstOffen(ctx, clock(t, "15:00"))
	require.NoError(t, err)
	assert.False(t, offen)
}

func TestSetOverwritesWindow(t *testing.T) {
	svc := NewZeitfensterService(newFakeStore[models.Einstellung]())
	ctx := context.Background()

	_, err := svc.Set(ctx, &dto.ZeitfensterInput{Von: "11:00", Bis: "14:00"})
	require.NoError(t, err)
	_, err = svc.Set(ctx, &dto.ZeitfensterInput{Von: "12:00", Bis: "13:00"})
	require.NoError(t, err)

	fenster, found, err := svc.Get(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "12:00", fenster.Von)
	assert.Equal(t, "13:00", fenster.Bis)
}
