// services/views.go
package services

import (
	"gymnet-backend/models"

	"github.com/google/uuid"
)

// External representations nested inside schedule events and directory
// responses. Kept separate from the gorm models so the two audiences'
// contracts can evolve independently of the storage shape.

type AccountView struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ProfileView struct {
	User        AccountView `json:"user"`
	Avatar      *string     `json:"avatar"`
	PhoneNumber string      `json:"phone_number"`
	Description string      `json:"description"`
	Gyms        []string    `json:"gyms"`
	IsStaff     bool        `json:"is_staff"`
	GroupNumber int         `json:"group_number"`
}

type PictureView struct {
	Image string `json:"image"`
}

type LocationView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type GymView struct {
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Pictures    []PictureView `json:"pictures"`
	Description string        `json:"description"`
	Location    LocationView  `json:"location"`
}

// EventView is the session record as it appears inside a grid slot and in
// write responses.
type EventView struct {
	ID      uuid.UUID   `json:"id"`
	Group   int         `json:"group"`
	Address string      `json:"address"`
	Club    GymView     `json:"club"`
	User    ProfileView `json:"user"`
}

func NewProfileView(p *models.Profile) ProfileView {
	gyms := make([]string, 0, len(p.Gyms))
	for _, g := range p.Gyms {
		gyms = append(gyms, g.Slug)
	}
	return ProfileView{
		User: AccountView{
			Username:  p.User.Username,
			FirstName: p.User.FirstName,
			LastName:  p.User.LastName,
			Email:     p.User.Email,
		},
		Avatar:      p.Avatar,
		PhoneNumber: p.PhoneNumber,
		Description: p.Description,
		Gyms:        gyms,
		IsStaff:     p.IsStaff,
		GroupNumber: p.GroupNumber,
	}
}

func NewGymView(g *models.Gym) GymView {
	pictures := make([]PictureView, 0, len(g.Pictures))
	for _, p := range g.Pictures {
		pictures = append(pictures, PictureView{Image: p.Image})
	}
	return GymView{
		Slug:        g.Slug,
		Name:        g.Name,
		Pictures:    pictures,
		Description: g.Description,
		Location: LocationView{
			Latitude:  g.Location.Latitude,
			Longitude: g.Location.Longitude,
			Address:   g.Location.Address,
		},
	}
}

func NewEventView(rec *models.Schedule) EventView {
	return EventView{
		ID:      rec.ID,
		Group:   rec.Group,
		Address: rec.Address,
		Club:    NewGymView(&rec.Gym),
		User:    NewProfileView(&rec.Profile),
	}
}
