package recipe

import "time"

// Recipe is a cake recipe. Ingredients and Instructions hold JSON-encoded
// string arrays, matching what the web client submits and renders.
type Recipe struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	PrepTime     int       `json:"prep_time"`
	CookTime     int       `json:"cook_time"`
	Servings     int       `json:"servings"`
	Difficulty   string    `json:"difficulty"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url"`
	Author       string    `json:"author,omitempty"` // owner's username, filled by joins
	CreatedAt    time.Time `json:"created_at"`
}
