package models

// VideoMetrics holds the named scores attached to every analyzed video.
type VideoMetrics struct {
	Engagement   int `json:"engagement"`
	Retention    int `json:"retention"`
	Shareability int `json:"shareability"`
	Overall      int `json:"overall"`
}

// VideoDB represents a video record in the database.
// Suggestions and Metrics are stored as serialized JSON text and are always
// written whole.
type VideoDB struct {
	ID          int64  `db:"id"`          // Primary key
	UserID      int64  `db:"user_id"`     // Owning user
	URL         string `db:"url"`         // Submitted video URL
	Platform    string `db:"platform"`    // e.g. "tiktok", "youtube"
	Description string `db:"description"` // Optional description
	Timestamp   string `db:"timestamp"`   // RFC-3339, set at creation
	Suggestions string `db:"suggestions"` // JSON array of strings
	Metrics     string `db:"metrics"`     // JSON object of scores
}

// AdminVideoRow is a video row joined with its owner's username.
type AdminVideoRow struct {
	VideoDB
	Username string `db:"username"`
}

// Video is the API representation of a video with suggestions and metrics
// deserialized into structured form.
type Video struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	URL         string       `json:"url"`
	Platform    string       `json:"platform"`
	Description string       `json:"description"`
	Timestamp   string       `json:"timestamp"`
	Suggestions []string     `json:"suggestions"`
	Metrics     VideoMetrics `json:"metrics"`
}

// AdminVideo is the admin-facing video representation. Status is a fixed
// constant: no real lifecycle state is tracked.
type AdminVideo struct {
	Video
	Username string `json:"username"`
	Status   string `json:"status"`
}
