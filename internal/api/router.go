package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mrodgar/gymrat/internal/api/handler"
	"github.com/mrodgar/gymrat/internal/api/middleware"
	"github.com/mrodgar/gymrat/internal/services/auth"
	"github.com/mrodgar/gymrat/internal/services/catalog"
	"github.com/mrodgar/gymrat/internal/services/gym"
	"github.com/mrodgar/gymrat/internal/services/token"
	"github.com/mrodgar/gymrat/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Storage        storage.Storage
	TokenService   *token.Service
	AuthService    *auth.Service
	GymService     *gym.Service
	CatalogService *catalog.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	userHandler := handler.NewUserHandler(cfg.GymService)
	exerciseHandler := handler.NewExerciseHandler(cfg.CatalogService)
	routineHandler := handler.NewRoutineHandler(cfg.CatalogService)
	adminHandler := handler.NewAdminHandler(cfg.AuthService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.TokenService, cfg.Storage)
	adminMiddleware := middleware.RequireAdmin()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// User progression routes; ownership is enforced per handler
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware)
	users.HandleFunc("/{id}", userHandler.Get).Methods(http.MethodGet)
	users.HandleFunc("/{id}/train", userHandler.Train).Methods(http.MethodPost)
	users.HandleFunc("/{id}/rest", userHandler.Rest).Methods(http.MethodPost)
	users.HandleFunc("/{id}/purchase", userHandler.Purchase).Methods(http.MethodPost)
	users.HandleFunc("/{id}/sessions", userHandler.ListSessions).Methods(http.MethodGet)
	users.HandleFunc("/{id}/sessions", userHandler.CreateSession).Methods(http.MethodPost)

	// Exercise catalog: public reads, admin mutation
	api.HandleFunc("/exercises", exerciseHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/exercises/{id}", exerciseHandler.Get).Methods(http.MethodGet)

	exercisesAdmin := api.PathPrefix("/exercises").Subrouter()
	exercisesAdmin.Use(authMiddleware, adminMiddleware)
	exercisesAdmin.HandleFunc("", exerciseHandler.Create).Methods(http.MethodPost)
	exercisesAdmin.HandleFunc("/{id}", exerciseHandler.Update).Methods(http.MethodPut)
	exercisesAdmin.HandleFunc("/{id}", exerciseHandler.Delete).Methods(http.MethodDelete)

	// Routine routes (owner-scoped)
	routines := api.PathPrefix("/routines").Subrouter()
	routines.Use(authMiddleware)
	routines.HandleFunc("", routineHandler.List).Methods(http.MethodGet)
	routines.HandleFunc("", routineHandler.Create).Methods(http.MethodPost)
	routines.HandleFunc("/{id}", routineHandler.Get).Methods(http.MethodGet)
	routines.HandleFunc("/{id}", routineHandler.Update).Methods(http.MethodPut)
	routines.HandleFunc("/{id}", routineHandler.Delete).Methods(http.MethodDelete)

	// Admin user management
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware, adminMiddleware)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", adminHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", adminHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", adminHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", adminHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{id}/role", adminHandler.SetRole).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}/password", adminHandler.ResetPassword).Methods(http.MethodPut)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
