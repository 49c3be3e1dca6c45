package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Speise is a menu dish offered by a supplier. Orders copy the relevant
// fields into their Gericht lines at submission time, so editing the menu
// never changes past orders.
type Speise struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	LieferantID  primitive.ObjectID `json:"lieferantId" bson:"lieferantId" index:"single:1"`
	Nr           int                `json:"nr" bson:"nr"`
	Name         string             `json:"name" bson:"name"`
	Preis        float64            `json:"preis" bson:"preis"`
	Schaerfegrad string             `json:"schaerfegrad,omitempty" bson:"schaerfegrad,omitempty"`
	// Kategorien references the supplier's menu categories this dish appears
	// under. A dish without categories shows up ungrouped.
	Kategorien []primitive.ObjectID `json:"kategorien,omitempty" bson:"kategorien,omitempty"`
	Verfuegbar   bool               `json:"verfuegbar" bson:"verfuegbar"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
