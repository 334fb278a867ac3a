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

// ProductController handles product read and admin CRUD requests
type ProductController struct {
	Products repository.ProductRepository
}

// NewProductController creates a new ProductController
func NewProductController(products repository.ProductRepository) *ProductController {
	return &ProductController{Products: products}
}

func (pc *ProductController) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	info := middleware.AuthFromContext(r.Context())
	if !info.IsAuthenticated || info.Role != middleware.RoleAdmin {
		utils.ServerResponse(w, http.StatusUnauthorized, "Unauthorized access", nil)
		return false
	}
	return true
}

// GetProducts retrieves all products, optionally filtered by collection
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var products []models.Product
	var err error

	if raw := r.URL.Query().Get("collection"); raw != "" {
		collectionID, parseErr := primitive.ObjectIDFromHex(raw)
		if parseErr != nil {
			utils.ServerResponse(w, http.StatusBadRequest, "Invalid collection ID", nil)
			return
		}
		products, err = pc.Products.FindByCollection(ctx, collectionID)
	} else {
		products, err = pc.Products.FindAll(ctx)
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error fetching products", nil)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.ServerResponse(w, http.StatusOK, "Products retrieved successfully", products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	product, err := pc.Products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error fetching product", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Product retrieved successfully", product)
}

// CreateProduct adds a new product (admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if !pc.requireAdmin(w, r) {
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if product.Name == "" || product.Price < 0 || product.Stock < 0 {
		utils.ServerResponse(w, http.StatusBadRequest, "Name, non-negative price and stock are required", nil)
		return
	}
	product.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	saved, err := pc.Products.Insert(ctx, &product)
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error creating product", nil)
		return
	}

	utils.ServerResponse(w, http.StatusCreated, "Product created", saved)
}

// UpdateProduct updates an existing product (admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if !pc.requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err = pc.Products.Update(ctx, id, &product)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error updating product", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Product updated", nil)
}

// DeleteProduct deletes a product (admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !pc.requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err = pc.Products.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Error deleting product", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Product deleted", nil)
}
