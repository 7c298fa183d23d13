// Package repository provides persistence implementations for accounts and
// progress entries on top of database/sql.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/GrowthMindset/internal/db"
	"github.com/atinyakov/GrowthMindset/internal/models"
)

// AccountRepository implements account operations against the users table.
type AccountRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
	// Dialect controls placeholder syntax.
	Dialect db.Dialect
}

// NewAccountRepository creates a new AccountRepository with the given database connection.
func NewAccountRepository(conn *sql.DB, dialect db.Dialect) *AccountRepository {
	return &AccountRepository{DB: conn, Dialect: dialect}
}

// CreateAccount inserts a new user row and returns its id.
// Duplicate usernames are accepted, each call yields a distinct row.
func (r *AccountRepository) CreateAccount(ctx context.Context, username string, passwordHash []byte) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		r.Dialect.Rebind(`INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`),
		username, passwordHash,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// AccountsByUsername returns every account registered under username,
// lowest id first.
func (r *AccountRepository) AccountsByUsername(ctx context.Context, username string) ([]models.Account, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		r.Dialect.Rebind(`SELECT id, username, password_hash FROM users WHERE username = ? ORDER BY id`),
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return accounts, nil
}

// AccountExists checks whether a user with the specified id exists.
func (r *AccountRepository) AccountExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		r.Dialect.Rebind(`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`),
		id,
	).Scan(&exists)
	return exists, err
}
