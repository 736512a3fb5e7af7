package database

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the database row for the users table. The password column stores
// the argon2id hash, never the plaintext.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Username     string    `bun:"username,notnull,unique"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Recipe is the database row for the recipes table.
type Recipe struct {
	bun.BaseModel `bun:"table:recipes,alias:r"`

	ID           int64     `bun:"id,pk,autoincrement"`
	UserID       int64     `bun:"user_id,notnull"`
	Title        string    `bun:"title,notnull"`
	Description  string    `bun:"description"`
	Ingredients  string    `bun:"ingredients,notnull"`
	Instructions string    `bun:"instructions,notnull"`
	PrepTime     int       `bun:"prep_time"`
	CookTime     int       `bun:"cook_time"`
	Servings     int       `bun:"servings"`
	Difficulty   string    `bun:"difficulty"`
	Category     string    `bun:"category"`
	ImageURL     string    `bun:"image_url"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	// Populated by joins, not a real column.
	Author string `bun:"author,scanonly"`
}
