package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Price        float64            `bson:"price" json:"price"`
	Stock        int                `bson:"stock" json:"stock"`
	Sizes        string             `bson:"sizes" json:"sizes"`
	Description  string             `bson:"description" json:"description"`
	Summary      string             `bson:"summary" json:"summary"`
	Materials    string             `bson:"materials" json:"materials"`
	IsVisible    bool               `bson:"isVisible" json:"isVisible"`
	Category     string             `bson:"category" json:"category"`
	CollectionID primitive.ObjectID `bson:"collectionId,omitempty" json:"collectionId,omitempty"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// CartProduct is a cart read-model row: the referenced product resolved
// into its full document, with the cart quantity alongside.
type CartProduct struct {
	Product  `bson:",inline"`
	Quantity int `json:"quantity"`
}
