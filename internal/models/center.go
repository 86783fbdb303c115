package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Center struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Location string `gorm:"size:255;not null" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ce *Center) BeforeCreate(tx *gorm.DB) error {
	if ce.ID == "" {
		ce.ID = uuid.NewString()
	}
	return nil
}
