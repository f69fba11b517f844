package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile extends a User account with gym-network data. Exactly one profile
// exists per account; it is created in the same transaction as the account.
type Profile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`

	IsStaff     bool    `gorm:"default:false" json:"is_staff"`
	PhoneNumber string  `gorm:"type:varchar(20)" json:"phone_number"`
	Description string  `gorm:"type:text" json:"description"`
	GroupNumber int     `gorm:"default:0" json:"group_number"`
	Avatar      *string `json:"avatar"`

	Gyms      []Gym      `gorm:"many2many:profile_gyms;" json:"-"`
	Schedules []Schedule `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`

	gorm.Model
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// TraineeLink is one directed trainer->trainee edge. Reverse lookups
// ("who trains me") query the edge set with the id in the trainee position;
// a reciprocal edge is never stored.
type TraineeLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trainer_trainee,priority:1"`
	TraineeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trainer_trainee,priority:2"`

	Trainer Profile `gorm:"foreignKey:TrainerID;constraint:OnDelete:CASCADE"`
	Trainee Profile `gorm:"foreignKey:TraineeID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

func (l *TraineeLink) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
