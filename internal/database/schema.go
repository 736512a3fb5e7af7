package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	email TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const recipesSchema = `
CREATE TABLE IF NOT EXISTS recipes (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (id),
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	ingredients TEXT NOT NULL,
	instructions TEXT NOT NULL,
	prep_time INTEGER NOT NULL DEFAULT 0,
	cook_time INTEGER NOT NULL DEFAULT 0,
	servings INTEGER NOT NULL DEFAULT 1,
	difficulty TEXT NOT NULL DEFAULT 'medium',
	category TEXT NOT NULL DEFAULT 'other',
	image_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the tables if they do not exist yet. The unique
// constraints on users are the authority for registration conflicts.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	for _, ddl := range []string{usersSchema, recipesSchema} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
