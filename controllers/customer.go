package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"empress-backend/middleware"
	"empress-backend/models"
	"empress-backend/repository"
	"empress-backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerController handles cart requests against a customer's embedded cart
type CustomerController struct {
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(customers repository.CustomerRepository, products repository.ProductRepository) *CustomerController {
	return &CustomerController{
		Customers: customers,
		Products:  products,
	}
}

// requireCustomer rejects the request unless the middleware resolved a
// customer. The role gate runs before any cart data access.
func (cc *CustomerController) requireCustomer(w http.ResponseWriter, r *http.Request) (*models.Customer, bool) {
	info := middleware.AuthFromContext(r.Context())
	if !info.IsAuthenticated || info.Role != middleware.RoleCustomer || info.Customer == nil {
		utils.ServerResponse(w, http.StatusUnauthorized, "Unauthorized access", nil)
		return nil, false
	}
	return info.Customer, true
}

// AddToCart adds a product to the customer's cart, merging quantities when
// the product already has a line
func (cc *CustomerController) AddToCart(w http.ResponseWriter, r *http.Request) {
	authed, ok := cc.requireCustomer(w, r)
	if !ok {
		return
	}

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if body.ProductID == "" || body.Quantity <= 0 {
		utils.ServerResponse(w, http.StatusBadRequest, "Product ID and quantity are required", nil)
		return
	}
	productID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	product, err := cc.Products.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	// Checked once against current stock. Adds are not serialized, so two
	// concurrent requests can both pass this check.
	if body.Quantity > product.Stock {
		utils.ServerResponse(w, http.StatusBadRequest, "Insufficient stock available", nil)
		return
	}

	customer, err := cc.Customers.FindByID(ctx, authed.ID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	merged := false
	for i := range customer.Cart {
		if customer.Cart[i].ProductID == productID {
			customer.Cart[i].Quantity += body.Quantity
			merged = true
			break
		}
	}
	if !merged {
		customer.Cart = append(customer.Cart, models.CartLine{ProductID: productID, Quantity: body.Quantity})
	}

	if err := cc.Customers.UpdateCart(ctx, customer.ID, customer.Cart); err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error updating cart", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Product added to cart successfully", customer.Cart)
}

// GetCart retrieves the cart with each product reference resolved into the
// full product document, in cart order
func (cc *CustomerController) GetCart(w http.ResponseWriter, r *http.Request) {
	authed, ok := cc.requireCustomer(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer, err := cc.Customers.FindByID(ctx, authed.ID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(customer.Cart))
	for _, line := range customer.Cart {
		ids = append(ids, line.ProductID)
	}
	products, err := cc.Products.FindByIDs(ctx, ids)
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	cart := make([]models.CartProduct, 0, len(customer.Cart))
	for _, line := range customer.Cart {
		product, ok := products[line.ProductID]
		if !ok {
			// Dangling reference: the product was deleted after it was added.
			continue
		}
		cart = append(cart, models.CartProduct{Product: product, Quantity: line.Quantity})
	}

	utils.ServerResponse(w, http.StatusOK, "Cart retrieved successfully", cart)
}

// UpdateCart adjusts the quantity of a line already in the cart. Subtracting
// a line to zero or below removes it entirely.
func (cc *CustomerController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	authed, ok := cc.requireCustomer(w, r)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(mux.Vars(r)["productId"])
	if err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	var body struct {
		Quantity  int    `json:"quantity"`
		Operation string `json:"operation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if body.Operation == "" {
		body.Operation = "add"
	}
	if body.Quantity <= 0 {
		utils.ServerResponse(w, http.StatusBadRequest, "Product ID, quantity, and operation are required", nil)
		return
	}
	if body.Operation != "add" && body.Operation != "subtract" {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid operation. Use 'add' or 'subtract'.", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer, err := cc.Customers.FindByID(ctx, authed.ID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	index := -1
	for i := range customer.Cart {
		if customer.Cart[i].ProductID == productID {
			index = i
			break
		}
	}
	if index < 0 {
		utils.ServerResponse(w, http.StatusNotFound, "Product not found in cart", nil)
		return
	}

	if body.Operation == "add" {
		customer.Cart[index].Quantity += body.Quantity
	} else {
		customer.Cart[index].Quantity -= body.Quantity
		if customer.Cart[index].Quantity <= 0 {
			customer.Cart = append(customer.Cart[:index], customer.Cart[index+1:]...)
		}
	}

	if err := cc.Customers.UpdateCart(ctx, customer.ID, customer.Cart); err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error updating cart", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Cart updated successfully", customer.Cart)
}

// RemoveFromCart removes a product's line from the cart. Removing a product
// that is not in the cart succeeds with no change.
func (cc *CustomerController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	authed, ok := cc.requireCustomer(w, r)
	if !ok {
		return
	}

	raw := mux.Vars(r)["productId"]
	if raw == "" {
		utils.ServerResponse(w, http.StatusBadRequest, "Product ID is required", nil)
		return
	}
	productID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer, err := cc.Customers.FindByID(ctx, authed.ID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	updated := make([]models.CartLine, 0, len(customer.Cart))
	for _, line := range customer.Cart {
		if line.ProductID != productID {
			updated = append(updated, line)
		}
	}

	if err := cc.Customers.UpdateCart(ctx, customer.ID, updated); err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error updating cart", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Product removed from cart successfully", updated)
}
