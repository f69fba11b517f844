package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is one scheduled class occurrence: a single fixed instant owned by
// one gym and one instructor profile. Deleting either parent cascades here.
type Schedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Group     int       `gorm:"not null" json:"group"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	Address   string    `json:"address"`

	GymID     uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Gym     Gym     `gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE" json:"-"`
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`

	gorm.Model
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
