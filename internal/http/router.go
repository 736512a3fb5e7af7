package http

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/cakeshare/cakeshare-api/internal/auth"
	"github.com/cakeshare/cakeshare-api/internal/config"
	"github.com/cakeshare/cakeshare-api/internal/httputil"
	"github.com/cakeshare/cakeshare-api/internal/logging"
	"github.com/cakeshare/cakeshare-api/internal/recipe"
	"github.com/cakeshare/cakeshare-api/internal/upload"
	"github.com/cakeshare/cakeshare-api/internal/user"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	cfg *config.Config,
	authHandler *auth.Handler,
	authMiddleware *auth.Middleware,
	recipeHandler *recipe.Handler,
	uploadHandler *upload.Handler,
	userHandler *user.Handler,
	logger *logging.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Compress(5))

	// Public routes
	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		log.Println("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// Auth (public)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Recipes (public reads)
	r.Get("/recipes", recipeHandler.List)
	r.Get("/recipes/{recipeID}", recipeHandler.Get)
	r.Get("/categories", recipeHandler.ListCategories)

	// Uploaded images
	r.Handle("/uploads/*", uploadHandler.ServeFiles())

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Post("/recipes", recipeHandler.Create)
		r.Put("/recipes/{recipeID}", recipeHandler.Update)
		r.Delete("/recipes/{recipeID}", recipeHandler.Delete)
		r.Post("/recipes/sample", recipeHandler.SeedSamples)
		r.Get("/my-recipes", recipeHandler.MyRecipes)
		r.Post("/upload-image", uploadHandler.UploadImage)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Use(authMiddleware.RequireAdmin)

		r.Get("/admin/users", userHandler.ListUsers)
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{
		"status":    "ok",
		"message":   "Cake API backend is running",
		"timestamp": time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}
