// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassReminderLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ScheduleID uuid.UUID `gorm:"type:uuid;index;not null"`
	ProfileID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Message    string    `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMsg   string    `gorm:"type:text"`
	SentAt     time.Time

	gorm.Model
}

func (r *ClassReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
