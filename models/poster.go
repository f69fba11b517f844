package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Poster is a content-feed entry, independent of the scheduling subsystem.
type Poster struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Text        string    `gorm:"type:text" json:"text"`
	Image       string    `json:"image"`
	PublishDate time.Time `json:"publish_date"`

	gorm.Model
}

func (p *Poster) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.PublishDate = time.Now()
	return
}
