package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// GerichtInput is one dish line in an order submission. Preis is a pointer so
// a dish that never sent a price is distinguishable from a free dish; both
// the validator and the service reject the absent case.
type GerichtInput struct {
	Nr           int      `json:"nr" form:"nr" validate:"required"`
	Name         string   `json:"name" form:"name" validate:"required,no_xss"`
	Preis        *float64 `json:"preis" form:"preis" validate:"required,gte=0"`
	Schaerfegrad string   `json:"schaerfegrad,omitempty" form:"schaerfegrad" validate:"omitempty,no_xss"`
	Notiz        string   `json:"notiz,omitempty" form:"notiz" validate:"omitempty,no_xss"`
}

// SubmitBestellungInput is the public order submission body.
type SubmitBestellungInput struct {
	Name     string         `json:"name" validate:"required,no_xss"`
	Gerichte []GerichtInput `json:"gerichte" validate:"required,min=1,dive"`
}

// EditBestellungInput replaces an order's name and full dish list.
type EditBestellungInput struct {
	Name     string
	Gerichte []GerichtInput
}

// ZahlungInput carries the payment form fields. Checkbox fields arrive as
// "on" when ticked and are absent otherwise.
type ZahlungInput struct {
	Erhalten         bool
	Betrag           float64
	RueckgeldGegeben bool
}

// FormValueFunc reads a single form field by name. The signature matches
// fiber.Ctx.FormValue so handlers pass it directly; tests pass a map lookup.
type FormValueFunc func(key string, defaultValue ...string) string

// ParseBetrag parses a monetary amount, accepting a comma as decimal
// separator. A malformed value parses to 0 with ok=false; the payment flow
// treats that as "no amount entered" rather than failing the request.
func ParseBetrag(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParsePreis parses a dish price from a form field. Unlike payment amounts, a
// malformed price is a hard input error.
func ParsePreis(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ungültiger Preis: %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negativer Preis: %q", s)
	}
	return v, nil
}

// ParseNr parses a dish number from a form field.
func ParseNr(s string) (int, bool) {
	nr, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return nr, true
}

// ParseZahlungForm reads the payment form (erhalten, betrag,
// rueckgeld_gegeben). betragOK is false when a non-empty amount did not
// parse; the amount is then recorded as 0 and the caller decides whether to
// log it.
func ParseZahlungForm(form FormValueFunc) (input ZahlungInput, betragOK bool) {
	raw := strings.TrimSpace(form("betrag"))
	betrag, ok := ParseBetrag(raw)
	if raw == "" {
		ok = true
	}
	return ZahlungInput{
		Erhalten:         form("erhalten") == "on",
		Betrag:           betrag,
		RueckgeldGegeben: form("rueckgeld_gegeben") == "on",
	}, ok
}

// ParseGerichteForm reads the dish rows of the order edit form. The form
// declares the row count in anzahl_gerichte; rows are named
// gericht_{i}_{feld}. The explicit count distinguishes "no more dishes" from
// a client that forgot to send a row.
func ParseGerichteForm(form FormValueFunc) ([]GerichtInput, error) {
	countStr := strings.TrimSpace(form("anzahl_gerichte"))
	count, err := strconv.Atoi(countStr)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("ungültige Anzahl Gerichte: %q", countStr)
	}

	gerichte := make([]GerichtInput, 0, count)
	for i := 0; i < count; i++ {
		prefix := fmt.Sprintf("gericht_%d_", i)

		name := strings.TrimSpace(form(prefix + "name"))
		if name == "" {
			return nil, fmt.Errorf("gericht %d: Name fehlt", i)
		}

		nr, err := strconv.Atoi(strings.TrimSpace(form(prefix + "nr")))
		if err != nil {
			return nil, fmt.Errorf("gericht %d: ungültige Nummer", i)
		}

		preis, err := ParsePreis(form(prefix + "preis"))
		if err != nil {
			return nil, fmt.Errorf("gericht %d: %w", i, err)
		}

		gerichte = append(gerichte, GerichtInput{
			Nr:           nr,
			Name:         name,
			Preis:        &preis,
			Schaerfegrad: strings.TrimSpace(form(prefix + "schaerfegrad")),
			Notiz:        strings.TrimSpace(form(prefix + "notiz")),
		})
	}

	return gerichte, nil
}
