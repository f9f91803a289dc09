package models

// Roles stored in users.role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database.
// The password hash is never serialized to JSON.
type UserDB struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	PasswordHash string `json:"-" db:"password"`        // bcrypt hash
	Name         string `json:"name" db:"name"`         // Display name
	Role         string `json:"role" db:"role"`         // "user" or "admin"
}

// AdminUserRow is a user row joined with its video count, as read from the database.
type AdminUserRow struct {
	ID              int64  `db:"id"`
	Username        string `db:"username"`
	Name            string `db:"name"`
	Role            string `db:"role"`
	VideosSubmitted int64  `db:"videos_submitted"`
}

// AdminUser is the admin-facing user representation.
// JoinDate is a documented placeholder constant, not a real registration time.
type AdminUser struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	VideosSubmitted int64  `json:"videosSubmitted"`
	JoinDate        string `json:"joinDate"`
}
