package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminBenutzer is an administrator account. Passwords are stored as bcrypt
// hashes; the default account is seeded from config on first start.
type AdminBenutzer struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Benutzername string             `json:"benutzername" bson:"benutzername" index:"single:1,unique"`
	PasswortHash string             `json:"-" bson:"passwortHash"`
	Aktiv        bool               `json:"aktiv" bson:"aktiv"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
