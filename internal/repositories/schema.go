package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// schema is applied on every startup. CREATE IF NOT EXISTS keeps it
// idempotent. Referential integrity is native: videos cascade on user
// deletion (the foreign_keys pragma is enabled via the connection DSN).
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	name     TEXT NOT NULL,
	role     TEXT NOT NULL DEFAULT 'user'
);

CREATE TABLE IF NOT EXISTS videos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	url         TEXT NOT NULL,
	platform    TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	timestamp   TEXT NOT NULL,
	suggestions TEXT NOT NULL,
	metrics     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_videos_user_id ON videos(user_id);
`

// Migrate creates the users and videos tables if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// seedUsers are the known-credentials bootstrap accounts. Not intended for
// production use.
var seedUsers = []struct {
	username string
	password string
	name     string
	role     string
}{
	{username: "muser", password: "muser", name: "Mock User", role: models.RoleUser},
	{username: "mvc", password: "mvc", name: "Admin User", role: models.RoleAdmin},
}

// Seed inserts the bootstrap accounts on first run. It is a no-op when the
// users table already has rows.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing seed password for %s: %w", u.username, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (username, password, name, role) VALUES (?, ?, ?, ?)`,
			u.username, string(hash), u.name, u.role,
		); err != nil {
			return fmt.Errorf("inserting seed user %s: %w", u.username, err)
		}
		logger.Log.Infow("seeded user", "username", u.username, "role", u.role)
	}

	return nil
}
