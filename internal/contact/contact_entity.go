package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusProspect    = "Prospect"
	StatusClient      = "Client"
	StatusNegotiation = "Negotiation"
)

// Interaction is one entry of a contact's append-only history.
type Interaction struct {
	Type    string    `json:"type"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	UserID  *string   `json:"user_id"`
}

type Contact struct {
	ID           uuid.UUID                        `gorm:"column:id;type:uuid;primaryKey"`
	Name         string                           `gorm:"column:name;type:varchar(255);not null;index"`
	Email        *string                          `gorm:"column:email;type:varchar(255)"`
	Phone        *string                          `gorm:"column:phone;type:varchar(64)"`
	CompanyID    *string                          `gorm:"column:company_id;type:varchar(64)"`
	CompanyName  *string                          `gorm:"column:company_name;type:varchar(255)"`
	Status       string                           `gorm:"column:status;type:varchar(32);not null;index"`
	Notes        *string                          `gorm:"column:notes;type:text"`
	Interactions datatypes.JSONSlice[Interaction] `gorm:"column:interactions;type:jsonb;not null"`
	CreatedBy    string                           `gorm:"column:created_by;type:varchar(64);not null"`
	CreatedAt    time.Time                        `gorm:"column:created_at;index"`
	UpdatedAt    time.Time                        `gorm:"column:updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
