package repository

import (
	"context"
	"errors"

	"empress-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

// AdminRepository stores the singleton administrator account.
type AdminRepository interface {
	Exists(ctx context.Context) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	Insert(ctx context.Context, admin *models.Admin) (*models.Admin, error)
}

// CustomerRepository stores customers and their embedded carts.
type CustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	UpdateCart(ctx context.Context, id primitive.ObjectID, cart []models.CartLine) error
}

// ProductRepository stores catalog products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCollection(ctx context.Context, collectionID primitive.ObjectID) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error)
	Insert(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
