package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sport groups the courts of one activity inside a center. The center
// reference is not backed by a foreign-key constraint on purpose: the
// original catalog store never enforced it.
type Sport struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	CenterID string `gorm:"size:36;index;not null" json:"center_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Sport) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
