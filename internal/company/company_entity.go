package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;index"`
	Domain    *string   `gorm:"column:domain;type:varchar(255)"`
	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Company) TableName() string {
	return "companies"
}
