package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/shoplite/shoplite-backend/internal/config"
	"github.com/shoplite/shoplite-backend/internal/modules/auth"
	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
	"github.com/shoplite/shoplite-backend/internal/modules/order"
	"github.com/shoplite/shoplite-backend/internal/modules/report"
	"github.com/shoplite/shoplite-backend/internal/modules/user"
	"github.com/shoplite/shoplite-backend/internal/modules/watchlist"
)

const tokenTTL = 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	tokens := auth.NewTokenManager(cfg.JWTSecret, tokenTTL)
	authService := auth.NewService(userRepo, tokens)
	authMiddleware := auth.NewMiddleware(userRepo, tokens)

	// ── Catalog, orders, reports, watchlist ─────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)

	reportRepo := report.NewPostgresRepository(db)
	reportService := report.NewService(reportRepo, userRepo)

	watchlistRepo := watchlist.NewPostgresRepository(db)
	watchlistService := watchlist.NewService(watchlistRepo, userRepo, catalogRepo)

	// ── Routes ──────────────────────────────────────────────
	// Public allowlist: signup and login only.
	router.Group(func(r chi.Router) {
		user.NewHandler(userService).RegisterRoutes(r)
		auth.NewHandler(authService).RegisterRoutes(r)
	})

	// Everything else requires a bearer token.
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticator)
		catalog.NewHandler(catalogService, authMiddleware).RegisterRoutes(r)
		order.NewHandler(orderService, authMiddleware).RegisterRoutes(r)
		report.NewHandler(reportService, authMiddleware).RegisterRoutes(r)
		watchlist.NewHandler(watchlistService, authMiddleware).RegisterRoutes(r)
	})

	fmt.Printf("Shoplite API server starting on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
