package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
)

// UserReadRepository provides read-only access to user rows.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when no such
// user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password, name, role
		FROM users
		WHERE username = ?
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("selecting user by username: %w", err)
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password, name, role
		FROM users
		WHERE id = ?
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("selecting user by id: %w", err)
	}

	return &user, nil
}

// ListWithCounts returns every user together with the number of videos they
// have submitted.
func (r *UserReadRepository) ListWithCounts(ctx context.Context) ([]models.AdminUserRow, error) {
	const query = `
		SELECT u.id, u.username, u.name, u.role, COUNT(v.id) AS videos_submitted
		FROM users u
		LEFT JOIN videos v ON v.user_id = u.id
		GROUP BY u.id, u.username, u.name, u.role
		ORDER BY u.id
	`

	rows := make([]models.AdminUserRow, 0)
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("listing users with counts: %w", err)
	}

	return rows, nil
}

// UserWriteRepository provides write access to user rows.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the created row.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, name, role string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, password, name, role)
		VALUES (?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash, name, role)

	logger.Log.Debugw("user exec",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, name, role},
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted user id: %w", err)
	}

	return &models.UserDB{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
	}, nil
}

// Delete removes the user and all of that user's videos in a single
// transaction. The schema-level cascade would remove the videos on its own;
// the explicit delete keeps the operation atomic even when the foreign_keys
// pragma is disabled externally. Returns false when no user row matched.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning user delete tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM videos WHERE user_id = ?`, id); err != nil {
		return false, fmt.Errorf("deleting user videos: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading deleted user rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing user delete tx: %w", err)
	}

	logger.Log.Debugw("user deleted", "id", id)
	return true, nil
}
