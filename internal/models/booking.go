package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking reserves one court slot on one calendar date. Date is stored
// at UTC midnight. The composite unique index is what makes the
// "at most one booking per (court, slot, date)" invariant hold even
// under concurrent requests; the insert path relies on it.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CourtID string `gorm:"size:36;not null;uniqueIndex:uniq_court_slot_date" json:"court_id"`
	Court   Court  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"court"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	Slot string    `gorm:"size:50;not null;uniqueIndex:uniq_court_slot_date" json:"slot"`
	Date time.Time `gorm:"not null;uniqueIndex:uniq_court_slot_date" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
