package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"empress-backend/models"
	"empress-backend/repository"
	"empress-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gorilla/mux"
)

// Key type for context
type contextKey string

const AuthContextKey = contextKey("auth")

// RoleAdmin and RoleCustomer are the two roles a bearer token can carry.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// AuthInfo carries the outcome of bearer-token resolution for one request.
type AuthInfo struct {
	IsAuthenticated bool
	Role            string
	Admin           *models.Admin
	Customer        *models.Customer
}

// Email returns the resolved user's email, or "" when unauthenticated.
func (a *AuthInfo) Email() string {
	switch {
	case a.Admin != nil:
		return a.Admin.Email
	case a.Customer != nil:
		return a.Customer.Email
	}
	return ""
}

// CheckAuth resolves an optional bearer token and attaches the result to
// the request context. It never blocks the pipeline: any verification
// failure downgrades the request to unauthenticated, and rejecting such a
// request is left to the handlers that require auth.
func CheckAuth(admins repository.AdminRepository, customers repository.CustomerRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := resolveAuth(r, admins, customers)
			ctx := context.WithValue(r.Context(), AuthContextKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthFromContext returns the auth info attached by CheckAuth. Requests
// that never passed through the middleware read as unauthenticated.
func AuthFromContext(ctx context.Context) *AuthInfo {
	if info, ok := ctx.Value(AuthContextKey).(*AuthInfo); ok {
		return info
	}
	return &AuthInfo{}
}

func resolveAuth(r *http.Request, admins repository.AdminRepository, customers repository.CustomerRepository) *AuthInfo {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return &AuthInfo{}
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return &AuthInfo{}
	}

	claims, err := utils.ParseToken(parts[1])
	if err != nil {
		return &AuthInfo{}
	}

	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return &AuthInfo{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	switch claims.Role {
	case RoleAdmin:
		admin, err := admins.FindByID(ctx, id)
		if err != nil {
			return &AuthInfo{}
		}
		return &AuthInfo{IsAuthenticated: true, Role: RoleAdmin, Admin: admin}
	case RoleCustomer:
		customer, err := customers.FindByID(ctx, id)
		if err != nil {
			return &AuthInfo{}
		}
		return &AuthInfo{IsAuthenticated: true, Role: RoleCustomer, Customer: customer}
	}
	return &AuthInfo{}
}
