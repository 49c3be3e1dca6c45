package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kategorie groups a supplier's dishes in the menu, ordered by Position.
// Positions are assigned on creation and can be rearranged afterwards.
type Kategorie struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	LieferantID primitive.ObjectID `json:"lieferantId" bson:"lieferantId" index:"single:1"`
	Name        string             `json:"name" bson:"name"`
	Position    int                `json:"position" bson:"position"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
