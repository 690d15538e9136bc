package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// PendingStatuses are the statuses counted as open work on the dashboard.
var PendingStatuses = []string{StatusToDo, StatusInProgress}

type Task struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID   string    `gorm:"column:project_id;type:varchar(64);not null;index"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description *string   `gorm:"column:description;type:text"`
	AssigneeID  *string   `gorm:"column:assignee_id;type:varchar(64)"`
	DueDate     *string   `gorm:"column:due_date;type:varchar(10)"`
	Priority    string    `gorm:"column:priority;type:varchar(16);not null"`
	Status      string    `gorm:"column:status;type:varchar(16);not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;index"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
