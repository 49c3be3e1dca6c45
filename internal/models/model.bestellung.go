package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gericht is one dish line inside an order: number and name from the menu,
// the price at ordering time, optional spice level, and an admin-only note.
type Gericht struct {
	Nr           int     `json:"nr" bson:"nr"`
	Name         string  `json:"name" bson:"name"`
	Preis        float64 `json:"preis" bson:"preis"`
	Schaerfegrad string  `json:"schaerfegrad,omitempty" bson:"schaerfegrad,omitempty"`
	Notiz        string  `json:"notiz,omitempty" bson:"notiz,omitempty"` // only settable via admin edit
}

// Zahlung records the payment state of an order.
type Zahlung struct {
	Erhalten         bool    `json:"erhalten" bson:"erhalten"`
	Betrag           float64 `json:"betrag" bson:"betrag"`
	RueckgeldGegeben bool    `json:"rueckgeldGegeben" bson:"rueckgeldGegeben"`
}

// Bestellung is a customer order. Gerichte is never empty; every entry has
// nr, name and preis.
type Bestellung struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name"`
	Bestellcode string              `json:"bestellcode" bson:"bestellcode" index:"single:1"`
	Gerichte    []Gericht           `json:"gerichte" bson:"gerichte"`
	LieferantID *primitive.ObjectID `json:"lieferantId,omitempty" bson:"lieferantId,omitempty" index:"single:1"`
	Zahlung     *Zahlung            `json:"zahlung,omitempty" bson:"zahlung,omitempty"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt   int64               `json:"updatedAt" bson:"updatedAt"`
}
