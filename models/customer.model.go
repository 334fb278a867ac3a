package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is one entry in a customer's cart. The cart holds at most one
// line per product; quantities are merged, never duplicated.
type CartLine struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Customer represents a storefront customer with an embedded cart
type Customer struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"` // always "customer"
	Cart     []CartLine         `bson:"cart" json:"cart"`
}
