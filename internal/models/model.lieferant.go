package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lieferant is a supplier. At most one supplier has Aktiv=true at any time;
// LieferantService.Activate maintains that invariant.
type Lieferant struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Lieferkosten float64            `json:"lieferkosten" bson:"lieferkosten"`        // shipping cost per person
	Menue        string             `json:"menue,omitempty" bson:"menue,omitempty"`  // menu type / free text
	Nummer       string             `json:"nummer,omitempty" bson:"nummer,omitempty"` // contact number
	Aktiv        bool               `json:"aktiv" bson:"aktiv" index:"single:1"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
