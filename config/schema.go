package config

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS nanny_profiles (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		full_name TEXT NOT NULL,
		city TEXT NOT NULL,
		zip TEXT NOT NULL,
		years_experience INTEGER NOT NULL,
		availability TEXT NOT NULL,
		bio TEXT NOT NULL,
		services_offered TEXT NOT NULL,
		preferred_rate DOUBLE PRECISION NOT NULL,
		contact_info TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS family_profiles (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		full_name TEXT NOT NULL,
		city TEXT NOT NULL,
		zip TEXT NOT NULL,
		needs TEXT NOT NULL,
		schedule TEXT NOT NULL,
		budget DOUBLE PRECISION NOT NULL,
		bio TEXT NOT NULL,
		contact_info TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_requests (
		id SERIAL PRIMARY KEY,
		family_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		nanny_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id SERIAL PRIMARY KEY,
		contact_request_id INTEGER NOT NULL REFERENCES contact_requests(id) ON DELETE CASCADE,
		sender_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// initSchema is safe to run on every start.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Println("Database schema ready")
	return nil
}
