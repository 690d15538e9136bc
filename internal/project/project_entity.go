package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description *string   `gorm:"column:description;type:text"`
	OwnerID     string    `gorm:"column:owner_id;type:varchar(64);not null;index:idx_projects_owner_created,priority:1"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_projects_owner_created,priority:2"`
}

func (Project) TableName() string {
	return "projects"
}
