// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"empress-backend/config"
	"empress-backend/controllers"
	"empress-backend/middleware"
	"empress-backend/repository"
	"empress-backend/routes"
	"empress-backend/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func main() {
	// Load environment configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client, err := repository.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	db := client.Database(cfg.MongoDBName)
	if err := repository.EnsureIndexes(context.TODO(), db); err != nil {
		log.Fatal(err)
	}

	// Initialize repositories
	admins := repository.NewAdminRepository(db)
	customers := repository.NewCustomerRepository(db)
	products := repository.NewProductRepository(db)

	// Initialize controllers
	authController := controllers.NewAuthController(admins, customers, emailService)
	customerController := controllers.NewCustomerController(customers, products)
	productController := controllers.NewProductController(products)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	router.Use(middleware.Recover)
	router.Use(middleware.CheckAuth(admins, customers))

	// Register routes
	routes.RegisterRoutes(router, authController, productController, customerController)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(router)))
}
