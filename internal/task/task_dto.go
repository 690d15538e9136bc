package task

import "time"

type TaskRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	AssigneeID  *string `json:"assignee_id"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status      string  `json:"status" binding:"omitempty,oneof='To Do' 'In Progress' Completed"`
}

type ListTasksQuery struct {
	ProjectID string `form:"project_id"`
	Status    string `form:"status"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assignee_id"`
	DueDate     *string    `json:"due_date"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
