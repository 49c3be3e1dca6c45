package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LieferantInput carries the supplier create/edit form fields. New suppliers
// always start inactive; activation has its own endpoint.
type LieferantInput struct {
	Name         string  `json:"name" form:"name" validate:"required,no_xss"`
	Lieferkosten float64 `json:"lieferkosten" form:"lieferkosten" validate:"gte=0"`
	Menue        string  `json:"menue" form:"menue" validate:"omitempty,no_xss"`
	Nummer       string  `json:"nummer" form:"nummer" validate:"omitempty,max=32"`
}

// SpeiseInput carries the menu dish create form fields. Kategorien is filled
// by the handler from the optional kategorie form field.
type SpeiseInput struct {
	Nr           int                  `json:"nr" form:"nr" validate:"required"`
	Name         string               `json:"name" form:"name" validate:"required,no_xss"`
	Preis        float64              `json:"preis" form:"preis" validate:"gte=0"`
	Schaerfegrad string               `json:"schaerfegrad" form:"schaerfegrad" validate:"omitempty,no_xss"`
	Kategorien   []primitive.ObjectID `json:"kategorien,omitempty" form:"-"`
}

// KategorieInput carries the menu category create/edit form fields. Position
// stays nil on creation; new categories are appended at the end.
type KategorieInput struct {
	Name     string `json:"name" form:"name" validate:"required,no_xss"`
	Position *int   `json:"position,omitempty" form:"position"`
}
