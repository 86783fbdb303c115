package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Court struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	SportID string `gorm:"size:36;index;not null" json:"sport_id"`

	// Slot labels are free-form strings ("09:00-10:00"), replaced
	// wholesale by managers. Serialized as JSON so the column is
	// portable between postgres and the sqlite test driver.
	Slots []string `gorm:"serializer:json" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (co *Court) BeforeCreate(tx *gorm.DB) error {
	if co.ID == "" {
		co.ID = uuid.NewString()
	}
	return nil
}

// HasSlot reports whether label is in the court's current slot list.
func (co *Court) HasSlot(label string) bool {
	for _, s := range co.Slots {
		if s == label {
			return true
		}
	}
	return false
}
