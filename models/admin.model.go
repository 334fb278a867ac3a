package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminSingleton is the fixed sentinel value written to every admin
// document. A unique index on the field guarantees at most one admin
// exists even when two create requests race.
const AdminSingleton = "admin"

// Admin represents the single administrator account
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Singleton string             `bson:"singleton" json:"-"`
}
