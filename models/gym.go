package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gym struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	Location  Location   `gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE" json:"location"`
	Pictures  []Picture  `gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE" json:"pictures"`
	Profiles  []Profile  `gorm:"many2many:profile_gyms;" json:"-"`
	Schedules []Schedule `gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE" json:"-"`

	gorm.Model
}

func (g *Gym) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

// Location is exclusively owned by its Gym and destroyed with it.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	GymID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address"`

	gorm.Model
}

func (l *Location) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}

type Picture struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	GymID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Image string    `gorm:"not null" json:"image"`

	gorm.Model
}

func (p *Picture) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
