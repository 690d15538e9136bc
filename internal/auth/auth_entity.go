package auth

import "time"

// Session is the value stored under session:<token>.
type Session struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
