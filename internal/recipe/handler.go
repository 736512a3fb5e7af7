package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cakeshare/cakeshare-api/internal/auth"
	"github.com/cakeshare/cakeshare-api/internal/httputil"
	"github.com/cakeshare/cakeshare-api/internal/logging"
)

// Store is the repository surface the handlers use.
type Store interface {
	List(ctx context.Context, search, category string) ([]*Recipe, error)
	ListByUser(ctx context.Context, userID int64, search, category string) ([]*Recipe, error)
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	Create(ctx context.Context, rec *Recipe) (*Recipe, error)
	Update(ctx context.Context, rec *Recipe) error
	Delete(ctx context.Context, id int64) error
}

// AccessControl decides whether a user may mutate a recipe.
type AccessControl interface {
	RequireOwnerOrAdmin(ctx context.Context, userID, ownerID int64) error
}

// Handler contains HTTP handlers for the recipe endpoints
type Handler struct {
	recipes Store
	access  AccessControl
	logger  *logging.Logger
}

func NewHandler(recipes Store, access AccessControl, logger *logging.Logger) *Handler {
	return &Handler{
		recipes: recipes,
		access:  access,
		logger:  logger,
	}
}

// RecipeRequest is the create/update request body.
type RecipeRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	PrepTime     int    `json:"prep_time"`
	CookTime     int    `json:"cook_time"`
	Servings     int    `json:"servings"`
	Difficulty   string `json:"difficulty"`
	Category     string `json:"category"`
	ImageURL     string `json:"image_url"`
}

// SuccessResponse acknowledges a mutation.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// SeedResponse reports how many sample recipes were created.
type SeedResponse struct {
	Count int `json:"count"`
}

// List returns all recipes, filterable by search term and category
// @Summary      Browse recipes
// @Description  List all recipes, newest first, with optional search and category filters
// @Tags         recipes
// @Produce      json
// @Param        search query string false "Match against title, description and ingredients"
// @Param        category query string false "Category id, or 'all'"
// @Success      200 {array} Recipe
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /recipes [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	recipes, err := h.recipes.List(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	if err != nil {
		logger.Error("failed to list recipes", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list recipes", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, recipes, http.StatusOK)
}

// Get returns a single recipe by id
// @Summary      Get a recipe
// @Tags         recipes
// @Produce      json
// @Param        recipeID path int true "Recipe ID"
// @Success      200 {object} Recipe
// @Failure      404 {object} httputil.ErrorResponse
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /recipes/{recipeID} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := recipeID(r)
	if err != nil {
		httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
		return
	}

	rec, err := h.recipes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get recipe", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get recipe", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, rec, http.StatusOK)
}

// Create adds a new recipe owned by the authenticated user
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RecipeRequest true "Recipe"
// @Success      201 {object} SuccessResponse
// @Failure      400 {object} httputil.ErrorResponse "Missing required fields"
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /recipes [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	req, ok := decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	rec := requestToRecipe(req)
	rec.UserID = userID

	if _, err := h.recipes.Create(r.Context(), rec); err != nil {
		logger.Error("failed to create recipe", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create recipe", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("recipe created", "user_id", userID, "title", rec.Title)

	httputil.RespondJSON(w, SuccessResponse{Success: true}, http.StatusCreated)
}

// Update rewrites a recipe. Only the owner or the admin may do this; the
// check happens here, server-side, not in the client.
// @Summary      Update a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        recipeID path int true "Recipe ID"
// @Param        request body RecipeRequest true "Recipe"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} httputil.ErrorResponse
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse "Not the owner or admin"
// @Failure      404 {object} httputil.ErrorResponse
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /recipes/{recipeID} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
		return
	}

	existing, err := h.recipes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get recipe", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to update recipe", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	if !h.authorizeMutation(w, r, userID, existing.UserID) {
		return
	}

	req, ok := decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	rec := requestToRecipe(req)
	rec.ID = id

	if err := h.recipes.Update(r.Context(), rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to update recipe", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to update recipe", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("recipe updated", "user_id", userID, "recipe_id", id)

	httputil.RespondJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

// Delete removes a recipe, owner or admin only
// @Summary      Delete a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        recipeID path int true "Recipe ID"
// @Success      200 {object} SuccessResponse
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse "Not the owner or admin"
// @Failure      404 {object} httputil.ErrorResponse
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /recipes/{recipeID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
		return
	}

	existing, err := h.recipes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get recipe", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to delete recipe", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	if !h.authorizeMutation(w, r, userID, existing.UserID) {
		return
	}

	if err := h.recipes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "recipe not found", httputil.CodeRecipeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to delete recipe", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to delete recipe", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("recipe deleted", "user_id", userID, "recipe_id", id)

	httputil.RespondJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

// MyRecipes returns the authenticated user's recipes
// @Summary      My recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Match against title, description and ingredients"
// @Param        category query string false "Category id, or 'all'"
// @Success      200 {array} Recipe
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /my-recipes [get]
func (h *Handler) MyRecipes(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	recipes, err := h.recipes.ListByUser(r.Context(), userID, r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	if err != nil {
		logger.Error("failed to list user recipes", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list recipes", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, recipes, http.StatusOK)
}

// ListCategories returns the static category catalog
// @Summary      List categories
// @Tags         recipes
// @Produce      json
// @Success      200 {array} Category
// @Router       /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, Categories(), http.StatusOK)
}

// SeedSamples inserts the sample recipes owned by the authenticated user
// @Summary      Create sample recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} SeedResponse
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /recipes/sample [post]
func (h *Handler) SeedSamples(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	samples := SampleRecipes()
	for i := range samples {
		samples[i].UserID = userID
		if _, err := h.recipes.Create(r.Context(), &samples[i]); err != nil {
			logger.Error("failed to seed sample recipes", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to create sample recipes", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}
	}

	logger.Info("sample recipes created", "user_id", userID, "count", len(samples))

	httputil.RespondJSON(w, SeedResponse{Count: len(samples)}, http.StatusCreated)
}

// authorizeMutation enforces owner-or-admin and writes the error response on
// failure. Returns true when the caller may proceed.
func (h *Handler) authorizeMutation(w http.ResponseWriter, r *http.Request, userID, ownerID int64) bool {
	logger := logging.GetLoggerFromContext(r.Context())

	err := h.access.RequireOwnerOrAdmin(r.Context(), userID, ownerID)
	if err == nil {
		return true
	}

	if errors.Is(err, auth.ErrForbidden) {
		httputil.RespondErrorWithCode(w, "you may only modify your own recipes", httputil.CodeForbidden, http.StatusForbidden)
		return false
	}
	if errors.Is(err, auth.ErrUnauthorized) {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return false
	}

	logger.Error("failed to check recipe ownership", "error", err.Error())
	httputil.RespondErrorWithCode(w, "failed to check permissions", httputil.CodeInternalError, http.StatusInternalServerError)
	return false
}

func decodeRecipeRequest(w http.ResponseWriter, r *http.Request) (*RecipeRequest, bool) {
	var req RecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return nil, false
	}

	if req.Title == "" || req.Ingredients == "" || req.Instructions == "" {
		httputil.RespondErrorWithCode(w, "title, ingredients, and instructions are required", httputil.CodeRecipeFieldsRequired, http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}

func requestToRecipe(req *RecipeRequest) *Recipe {
	rec := &Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
	}

	if rec.Servings == 0 {
		rec.Servings = 1
	}
	if rec.Difficulty == "" {
		rec.Difficulty = "medium"
	}
	if rec.Category == "" || !ValidCategory(rec.Category) {
		rec.Category = "other"
	}

	return rec
}

func recipeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
}
