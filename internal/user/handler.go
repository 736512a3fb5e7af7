package user

import (
	"context"
	"net/http"
	"time"

	"github.com/cakeshare/cakeshare-api/internal/httputil"
	"github.com/cakeshare/cakeshare-api/internal/logging"
)

// UserLister is the subset of the repository the admin handler reads from.
type UserLister interface {
	List(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int, error)
}

// RecipeCounter reports the total number of recipes for the admin stats.
type RecipeCounter interface {
	Count(ctx context.Context) (int, error)
}

// Handler serves the admin user listing.
type Handler struct {
	users   UserLister
	recipes RecipeCounter
	logger  *logging.Logger
}

func NewHandler(users UserLister, recipes RecipeCounter, logger *logging.Logger) *Handler {
	return &Handler{users: users, recipes: recipes, logger: logger}
}

// UserSummary is a user as shown to the administrator.
type UserSummary struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats holds aggregate counts for the admin view.
type Stats struct {
	TotalUsers   int `json:"total_users"`
	TotalRecipes int `json:"total_recipes"`
}

// ListUsersResponse is the admin listing payload.
type ListUsersResponse struct {
	Users []UserSummary `json:"users"`
	Stats Stats         `json:"stats"`
}

// ListUsers returns every registered user plus aggregate stats.
// @Summary      List all users
// @Description  Admin-only listing of all registered users with aggregate stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ListUsersResponse
// @Failure      401 {object} httputil.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} httputil.ErrorResponse "Admin privileges required"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /admin/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	users, err := h.users.List(r.Context())
	if err != nil {
		logger.Error("failed to list users", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list users", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	totalUsers, err := h.users.Count(r.Context())
	if err != nil {
		logger.Error("failed to count users", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list users", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	totalRecipes, err := h.recipes.Count(r.Context())
	if err != nil {
		logger.Error("failed to count recipes", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list users", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}

	httputil.RespondJSON(w, ListUsersResponse{
		Users: summaries,
		Stats: Stats{TotalUsers: totalUsers, TotalRecipes: totalRecipes},
	}, http.StatusOK)
}
