package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the users and notes tables if they do not exist. Emails are
// stored and compared byte-exact; two registrations differing only in letter
// case create two distinct accounts.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS notes (
			id          BIGSERIAL PRIMARY KEY,
			owner_email VARCHAR(255)  NOT NULL,
			title       VARCHAR(255)  NOT NULL,
			content     VARCHAR(2000) NOT NULL,
			created_at  TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create notes table: %w", err)
	}

	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_notes_owner_email ON notes (owner_email)`)
	if err != nil {
		return fmt.Errorf("failed to create notes owner index: %w", err)
	}

	return nil
}
