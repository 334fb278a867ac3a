package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"time"

	"empress-backend/middleware"
	"empress-backend/models"
	"empress-backend/repository"
	"empress-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthController handles admin and customer authentication requests
type AuthController struct {
	Admins       repository.AdminRepository
	Customers    repository.CustomerRepository
	EmailService *utils.EmailService
}

// NewAuthController creates a new AuthController
func NewAuthController(admins repository.AdminRepository, customers repository.CustomerRepository, emailService *utils.EmailService) *AuthController {
	return &AuthController{
		Admins:       admins,
		Customers:    customers,
		EmailService: emailService,
	}
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateCredentials returns a validation message, or "" when valid.
func validateCredentials(email, password string) string {
	if _, err := mail.ParseAddress(email); err != nil {
		return "A valid email is required"
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	return ""
}

// CreateAdmin creates the singleton admin account
func (ac *AuthController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if msg := validateCredentials(creds.Email, creds.Password); msg != "" {
		utils.ServerResponse(w, http.StatusBadRequest, msg, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Check if an admin already exists
	exists, err := ac.Admins.Exists(ctx)
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if exists {
		utils.ServerResponse(w, http.StatusBadRequest, "Admin already exists", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	admin := &models.Admin{
		Email:    creds.Email,
		Password: string(hashedPassword),
	}
	saved, err := ac.Admins.Insert(ctx, admin)
	if errors.Is(err, repository.ErrDuplicate) {
		// The sentinel index catches creates that raced past the pre-check.
		utils.ServerResponse(w, http.StatusBadRequest, "Admin already exists", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	utils.ServerResponse(w, http.StatusCreated, "Admin created", saved)
}

// LoginAdmin authenticates the admin and issues a bearer token
func (ac *AuthController) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	admin, err := ac.Admins.FindByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid email or password", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(creds.Password)); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid email or password", nil)
		return
	}

	token, err := utils.GenerateToken(admin.ID.Hex(), middleware.RoleAdmin)
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Login successful", map[string]interface{}{
		"token": "Bearer " + token,
		"user":  map[string]string{"email": admin.Email},
	})
}

// CheckAuth reports whether the request carries a valid bearer token
func (ac *AuthController) CheckAuth(w http.ResponseWriter, r *http.Request) {
	info := middleware.AuthFromContext(r.Context())
	if !info.IsAuthenticated {
		utils.ServerResponse(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	utils.ServerResponse(w, http.StatusOK, "Authenticated", map[string]interface{}{
		"user": map[string]string{"email": info.Email()},
	})
}

// SignupCustomer registers a new customer with an empty cart
func (ac *AuthController) SignupCustomer(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if msg := validateCredentials(creds.Email, creds.Password); msg != "" {
		utils.ServerResponse(w, http.StatusBadRequest, msg, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := ac.Customers.FindByEmail(ctx, creds.Email); err == nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Email already in use", nil)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	customer := &models.Customer{
		Name:     creds.Name,
		Email:    creds.Email,
		Password: string(hashedPassword),
		Role:     middleware.RoleCustomer,
		Cart:     []models.CartLine{},
	}
	saved, err := ac.Customers.Insert(ctx, customer)
	if errors.Is(err, repository.ErrDuplicate) {
		utils.ServerResponse(w, http.StatusBadRequest, "Email already in use", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	// Best effort; signup must not fail because mail did.
	if err := ac.EmailService.SendWelcomeEmail(saved.Name, saved.Email); err != nil {
		log.Printf("failed to send welcome email to %s: %v", saved.Email, err)
	}

	utils.ServerResponse(w, http.StatusCreated, "Customer created", saved)
}

// LoginCustomer authenticates a customer and issues a bearer token
func (ac *AuthController) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer, err := ac.Customers.FindByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrNotFound) {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid email or password", nil)
		return
	}
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(creds.Password)); err != nil {
		utils.ServerResponse(w, http.StatusBadRequest, "Invalid email or password", nil)
		return
	}

	token, err := utils.GenerateToken(customer.ID.Hex(), middleware.RoleCustomer)
	if err != nil {
		utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	utils.ServerResponse(w, http.StatusOK, "Login successful", map[string]interface{}{
		"token": "Bearer " + token,
		"user":  map[string]string{"email": customer.Email},
	})
}
