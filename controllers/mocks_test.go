package controllers

import (
	"context"
	"sync"

	"empress-backend/models"
	"empress-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockAdminRepo struct {
	mu        sync.Mutex
	admin     *models.Admin
	hideCount bool // simulate a pre-check that raced past an existing admin
	insertErr error
}

func (m *mockAdminRepo) Exists(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hideCount {
		return false, nil
	}
	return m.admin != nil, nil
}

func (m *mockAdminRepo) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.admin != nil && m.admin.Email == email {
		return m.admin, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.admin != nil && m.admin.ID == id {
		return m.admin, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepo) Insert(_ context.Context, admin *models.Admin) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	if m.admin != nil {
		// unique sentinel index
		return nil, repository.ErrDuplicate
	}
	admin.ID = primitive.NewObjectID()
	m.admin = admin
	return admin, nil
}

type mockCustomerRepo struct {
	mu        sync.Mutex
	customers map[primitive.ObjectID]*models.Customer
	reads     int
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[primitive.ObjectID]*models.Customer)}
}

func (m *mockCustomerRepo) add(customer *models.Customer) *models.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	m.customers[customer.ID] = customer
	return customer
}

func (m *mockCustomerRepo) cartOf(id primitive.ObjectID) []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CartLine(nil), m.customers[id].Cart...)
}

func (m *mockCustomerRepo) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	for _, customer := range m.customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCustomerRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if customer, ok := m.customers[id]; ok {
		copied := *customer
		copied.Cart = append([]models.CartLine(nil), customer.Cart...)
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockCustomerRepo) Insert(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.customers {
		if existing.Email == customer.Email {
			return nil, repository.ErrDuplicate
		}
	}
	customer.ID = primitive.NewObjectID()
	m.customers[customer.ID] = customer
	return customer, nil
}

func (m *mockCustomerRepo) UpdateCart(_ context.Context, id primitive.ObjectID, cart []models.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	customer, ok := m.customers[id]
	if !ok {
		return repository.ErrNotFound
	}
	customer.Cart = append([]models.CartLine(nil), cart...)
	return nil
}

type mockProductRepo struct {
	mu       sync.Mutex
	products []models.Product
	reads    int
}

func (m *mockProductRepo) add(product models.Product) models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	m.products = append(m.products, product)
	return product
}

func (m *mockProductRepo) FindAll(context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	return append([]models.Product(nil), m.products...), nil
}

func (m *mockProductRepo) FindByCollection(_ context.Context, collectionID primitive.ObjectID) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	matched := []models.Product{}
	for _, product := range m.products {
		if product.CollectionID == collectionID {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	for i := range m.products {
		if m.products[i].ID == id {
			copied := m.products[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	byID := make(map[primitive.ObjectID]models.Product, len(ids))
	for _, id := range ids {
		for _, product := range m.products {
			if product.ID == id {
				byID[id] = product
			}
		}
	}
	return byID, nil
}

func (m *mockProductRepo) Insert(_ context.Context, product *models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = primitive.NewObjectID()
	m.products = append(m.products, *product)
	return product, nil
}

func (m *mockProductRepo) Update(_ context.Context, id primitive.ObjectID, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			product.ID = id
			m.products[i] = *product
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
