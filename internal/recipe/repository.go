package recipe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/cakeshare/cakeshare-api/internal/database"
)

var ErrNotFound = errors.New("recipe not found")

// Repository handles recipe persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// List returns recipes newest first, optionally filtered by a search term
// (matched against title, description and ingredients) and a category.
// A category of "all" or "" means no category filter.
func (r *Repository) List(ctx context.Context, search, category string) ([]*Recipe, error) {
	q := r.baseSelect()
	q = applyFilters(q, search, category)

	return r.scanList(ctx, q)
}

// ListByUser returns one user's recipes with the same filters as List.
func (r *Repository) ListByUser(ctx context.Context, userID int64, search, category string) ([]*Recipe, error) {
	q := r.baseSelect().Where("r.user_id = ?", userID)
	q = applyFilters(q, search, category)

	return r.scanList(ctx, q)
}

// GetByID retrieves a single recipe with its author's username
func (r *Repository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	dbRecipe := new(database.Recipe)
	err := r.db.NewSelect().
		Model(dbRecipe).
		ColumnExpr("r.*").
		ColumnExpr("u.username AS author").
		Join("JOIN users AS u ON u.id = r.user_id").
		Where("r.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return mapDBRecipeToModel(dbRecipe), nil
}

// Create inserts a new recipe owned by rec.UserID
func (r *Repository) Create(ctx context.Context, rec *Recipe) (*Recipe, error) {
	dbRecipe := &database.Recipe{
		UserID:       rec.UserID,
		Title:        rec.Title,
		Description:  rec.Description,
		Ingredients:  rec.Ingredients,
		Instructions: rec.Instructions,
		PrepTime:     rec.PrepTime,
		CookTime:     rec.CookTime,
		Servings:     rec.Servings,
		Difficulty:   rec.Difficulty,
		Category:     rec.Category,
		ImageURL:     rec.ImageURL,
	}

	_, err := r.db.NewInsert().
		Model(dbRecipe).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return mapDBRecipeToModel(dbRecipe), nil
}

// Update rewrites the editable fields of an existing recipe
func (r *Repository) Update(ctx context.Context, rec *Recipe) error {
	result, err := r.db.NewUpdate().
		Model((*database.Recipe)(nil)).
		Set("title = ?", rec.Title).
		Set("description = ?", rec.Description).
		Set("ingredients = ?", rec.Ingredients).
		Set("instructions = ?", rec.Instructions).
		Set("prep_time = ?", rec.PrepTime).
		Set("cook_time = ?", rec.CookTime).
		Set("servings = ?", rec.Servings).
		Set("difficulty = ?", rec.Difficulty).
		Set("category = ?", rec.Category).
		Set("image_url = ?", rec.ImageURL).
		Where("id = ?", rec.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a recipe
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().
		Model((*database.Recipe)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of recipes
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*database.Recipe)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	return count, nil
}

func (r *Repository) baseSelect() *bun.SelectQuery {
	return r.db.NewSelect().
		Model((*database.Recipe)(nil)).
		ColumnExpr("r.*").
		ColumnExpr("u.username AS author").
		Join("JOIN users AS u ON u.id = r.user_id").
		Order("r.created_at DESC")
}

func applyFilters(q *bun.SelectQuery, search, category string) *bun.SelectQuery {
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("(r.title ILIKE ? OR r.description ILIKE ? OR r.ingredients ILIKE ?)",
			pattern, pattern, pattern)
	}
	if category != "" && category != "all" {
		q = q.Where("r.category = ?", category)
	}
	return q
}

func (r *Repository) scanList(ctx context.Context, q *bun.SelectQuery) ([]*Recipe, error) {
	var dbRecipes []database.Recipe
	if err := q.Scan(ctx, &dbRecipes); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]*Recipe, 0, len(dbRecipes))
	for i := range dbRecipes {
		recipes = append(recipes, mapDBRecipeToModel(&dbRecipes[i]))
	}

	return recipes, nil
}

func mapDBRecipeToModel(dbr *database.Recipe) *Recipe {
	return &Recipe{
		ID:           dbr.ID,
		UserID:       dbr.UserID,
		Title:        dbr.Title,
		Description:  dbr.Description,
		Ingredients:  dbr.Ingredients,
		Instructions: dbr.Instructions,
		PrepTime:     dbr.PrepTime,
		CookTime:     dbr.CookTime,
		Servings:     dbr.Servings,
		Difficulty:   dbr.Difficulty,
		Category:     dbr.Category,
		ImageURL:     dbr.ImageURL,
		Author:       dbr.Author,
		CreatedAt:    dbr.CreatedAt,
	}
}
