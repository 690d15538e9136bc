package project

import "time"

type ProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type ProjectResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
