package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Einstellung type discriminator values.
const (
	EinstellungTypZeitfenster = "zeitfenster"
	EinstellungTypWhatsapp    = "whatsapp"
)

// Einstellung is one settings document, discriminated by Typ. The collection
// acts as a tiny key-value store: documents are upserted, never deleted.
//
//   - typ "zeitfenster": Von, Bis (HH:MM) and Name are set
//   - typ "whatsapp": Nummer mirrors the active supplier's contact number
type Einstellung struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Typ       string             `json:"typ" bson:"typ" index:"single:1,unique"`
	Von       string             `json:"von,omitempty" bson:"von,omitempty"`
	Bis       string             `json:"bis,omitempty" bson:"bis,omitempty"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Nummer    string             `json:"nummer,omitempty" bson:"nummer,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
