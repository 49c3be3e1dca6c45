package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formFrom(values map[string]string) FormValueFunc {
	return func(key string, defaultValue ...string) string {
		return values[key]
	}
}

func TestParseBetrag(t *testing.T) {
	betrag, ok := ParseBetrag("10,50")
	assert.True(t, ok)
	assert.Equal(t, 10.50, betrag)

	betrag, ok = ParseBetrag("8.00")
	assert.True(t, ok)
	assert.Equal(t, 8.0, betrag)

	for _, invalid := range []string{"", "abc", "-5", "1,2,3"} {
		betrag, ok = ParseBetrag(invalid)
		assert.False(t, ok, "expected failure for %q", invalid)
		assert.Zero(t, betrag)
	}
}

func TestParsePreis(t *testing.T) {
	preis, err := ParsePreis("7,90")
	require.NoError(t, err)
	assert.Equal(t, 7.9, preis)

	_, err = ParsePreis("abc")
	assert.Error(t, err)
	_, err = ParsePreis("-1")
	assert.Error(t, err)
}

func TestParseZahlungForm(t *testing.T) {
	input, ok := ParseZahlungForm(formFrom(map[string]string{
		"erhalten":          "on",
		"betrag":            "10,00",
		"rueckgeld_gegeben": "",
	}))
	assert.True(t, ok)
	assert.True(t, input.Erhalten)
	assert.Equal(t, 10.0, input.Betrag)
	assert.False(t, input.RueckgeldGegeben)
}

func TestParseZahlungFormEmptyBetrag(t *testing.T) {
	// No amount entered is a normal case, not a parse failure.
	input, ok := ParseZahlungForm(formFrom(map[string]string{
		"erhalten": "on",
	}))
	assert.True(t, ok)
	assert.Zero(t, input.Betrag)
}

func TestParseZahlungFormMalformedBetrag(t *testing.T) {
	// A bad amount becomes 0 instead of failing the request; ok is false so
	// the handler can log it.
	input, ok := ParseZahlungForm(formFrom(map[string]string{
		"erhalten": "on",
		"betrag":   "zehn",
	}))
	assert.False(t, ok)
	assert.True(t, input.Erhalten)
	assert.Zero(t, input.Betrag)
}

func TestParseGerichteForm(t *testing.T) {
	gerichte, err := ParseGerichteForm(formFrom(map[string]string{
		"anzahl_gerichte":        "2",
		"gericht_0_nr":           "1",
		"gericht_0_name":         "Suppe",
		"gericht_0_preis":        "5,50",
		"gericht_1_nr":           "7",
		"gericht_1_name":         "Curry",
		"gericht_1_preis":        "9.90",
		"gericht_1_schaerfegrad": "scharf",
		"gericht_1_notiz":        "ohne Koriander",
	}))
	require.NoError(t, err)
	require.Len(t, gerichte, 2)
	require.NotNil(t, gerichte[0].Preis)
	assert.Equal(t, 5.5, *gerichte[0].Preis)
	assert.Equal(t, "Curry", gerichte[1].Name)
	assert.Equal(t, "scharf", gerichte[1].Schaerfegrad)
	assert.Equal(t, "ohne Koriander", gerichte[1].Notiz)
}

func TestParseGerichteFormZeroRows(t *testing.T) {
	gerichte, err := ParseGerichteForm(formFrom(map[string]string{
		"anzahl_gerichte": "0",
	}))
	require.NoError(t, err)
	assert.Empty(t, gerichte)
}

func TestParseGerichteFormErrors(t *testing.T) {
	_, err := ParseGerichteForm(formFrom(map[string]string{}))
	assert.Error(t, err)

	_, err = ParseGerichteForm(formFrom(map[string]string{
		"anzahl_gerichte": "1",
		"gericht_0_nr":    "1",
		"gericht_0_preis": "5,50",
	}))
	assert.Error(t, err, "missing name must fail")

	_, err = ParseGerichteForm(formFrom(map[string]string{
		"anzahl_gerichte": "1",
		"gericht_0_nr":    "eins",
		"gericht_0_name":  "Suppe",
		"gericht_0_preis": "5,50",
	}))
	assert.Error(t, err, "bad nr must fail")
}

func TestGerichtInputPreisPresence(t *testing.T) {
	// An absent price must stay distinguishable from an explicit 0.
	var input SubmitBestellungInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Anna","gerichte":[{"nr":1,"name":"Suppe"}]}`), &input))
	require.Len(t, input.Gerichte, 1)
	assert.Nil(t, input.Gerichte[0].Preis)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Anna","gerichte":[{"nr":1,"name":"Suppe","preis":0}]}`), &input))
	require.NotNil(t, input.Gerichte[0].Preis)
	assert.Zero(t, *input.Gerichte[0].Preis)
}

func TestParseNr(t *testing.T) {
	nr, ok := ParseNr(" 7 ")
	assert.True(t, ok)
	assert.Equal(t, 7, nr)

	_, ok = ParseNr("sieben")
	assert.False(t, ok)
}
