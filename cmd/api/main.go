package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/xpointcnc/xpoint-backend/internal/modules/auth"
	"github.com/xpointcnc/xpoint-backend/internal/modules/cost"
	"github.com/xpointcnc/xpoint-backend/internal/modules/customer"
	"github.com/xpointcnc/xpoint-backend/internal/modules/inventory"
	"github.com/xpointcnc/xpoint-backend/internal/modules/job"
	"github.com/xpointcnc/xpoint-backend/internal/modules/order"
	"github.com/xpointcnc/xpoint-backend/internal/modules/product"
	"github.com/xpointcnc/xpoint-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	readOnly := os.Getenv("STORE_READONLY") == "true"

	// ── Store backend ───────────────────────────────────────
	var backend store.Backend
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		backend, err = store.NewPostgresBackend(context.Background(), db, readOnly)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")
	} else {
		path := os.Getenv("DATA_FILE")
		if path == "" {
			path = "data/data.json"
		}
		backend = store.NewFileBackend(path, readOnly)
	}
	st := store.Open(backend)

	// ── Auth ────────────────────────────────────────────────
	authCfg, err := authConfig()
	if err != nil {
		log.Fatal(err)
	}
	authService := auth.NewService(authCfg)
	authHandler := auth.NewHandler(authService)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	authHandler.RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(authHandler.RequireSession)

		customerRepo := customer.NewRepository(st)
		customer.NewHandler(customer.NewService(customerRepo)).RegisterRoutes(r)

		productRepo := product.NewRepository(st)
		product.NewHandler(product.NewService(productRepo)).RegisterRoutes(r)

		orderRepo := order.NewRepository(st)
		order.NewHandler(order.NewService(orderRepo)).RegisterRoutes(r)

		inventoryRepo := inventory.NewRepository(st)
		inventory.NewHandler(inventory.NewService(inventoryRepo)).RegisterRoutes(r)

		costRepo := cost.NewRepository(st)
		cost.NewHandler(cost.NewService(costRepo)).RegisterRoutes(r)

		jobRepo := job.NewRepository(st)
		job.NewHandler(job.NewService(jobRepo)).RegisterRoutes(r)
	})

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Xpoint API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func authConfig() (auth.Config, error) {
	cfg := auth.Config{
		Username:     os.Getenv("ADMIN_USERNAME"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
	}
	if cfg.Username == "" {
		cfg.Username = "admin"
	}
	if len(cfg.JWTSecret) == 0 {
		return cfg, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.PasswordHash == "" {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			return cfg, fmt.Errorf("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return cfg, err
		}
		cfg.PasswordHash = hash
	}
	return cfg, nil
}
