// routes/routes.go
package routes

import (
	"net/http"

	"empress-backend/controllers"
	"empress-backend/middleware"
	"empress-backend/utils"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, authController *controllers.AuthController, productController *controllers.ProductController, customerController *controllers.CustomerController) {
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ServerResponse(w, http.StatusOK, "Welcome to the API", nil)
	}).Methods("GET")

	// Auth routes (rate limited)
	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.Use(middleware.RateLimit(rate.Limit(5), 20))
	auth.HandleFunc("/create/admin", authController.CreateAdmin).Methods("POST")
	auth.HandleFunc("/login/admin", authController.LoginAdmin).Methods("POST")
	auth.HandleFunc("/check/auth", authController.CheckAuth).Methods("GET")
	auth.HandleFunc("/signup/customer", authController.SignupCustomer).Methods("POST")
	auth.HandleFunc("/login/customer", authController.LoginCustomer).Methods("POST")

	// Cart routes
	customer := router.PathPrefix("/api/customer").Subrouter()
	customer.HandleFunc("/cart", customerController.AddToCart).Methods("POST")
	customer.HandleFunc("/cart", customerController.GetCart).Methods("GET")
	customer.HandleFunc("/cart/{productId}", customerController.UpdateCart).Methods("PUT")
	customer.HandleFunc("/cart/{productId}", customerController.RemoveFromCart).Methods("DELETE")

	// Product routes
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.HandleFunc("/products", productController.GetProducts).Methods("GET")
	admin.HandleFunc("/product", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/product/{id}", productController.GetProductByID).Methods("GET")
	admin.HandleFunc("/product/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/product/{id}", productController.DeleteProduct).Methods("DELETE")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.ServerResponse(w, http.StatusNotFound, "Route not found", nil)
	})
}
