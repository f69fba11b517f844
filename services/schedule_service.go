// services/schedule_service.go
package services

import (
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gymnet-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slot is one cell of the weekly grid. Event is nil for a tracked hour with
// no session; hours outside the configured window have no slot at all.
type Slot struct {
	Time  int        `json:"time"`
	Event *EventView `json:"event"`
}

// WeekGrid maps lowercase weekday names to hour-of-day slots.
type WeekGrid map[string]map[int]Slot

// HourRange is the inclusive hour window the grid guarantees to populate.
type HourRange struct {
	From int
	To   int
}

const (
	defaultHourFrom = 12
	defaultHourTo   = 18
)

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// RecognizedHours returns the operating-hour window, overridable via
// SCHEDULE_HOUR_FROM / SCHEDULE_HOUR_TO.
func RecognizedHours() HourRange {
	hours := HourRange{From: defaultHourFrom, To: defaultHourTo}
	if env := os.Getenv("SCHEDULE_HOUR_FROM"); env != "" {
		if h, err := strconv.Atoi(env); err == nil && h >= 0 && h <= 23 {
			hours.From = h
		}
	}
	if env := os.Getenv("SCHEDULE_HOUR_TO"); env != "" {
		if h, err := strconv.Atoi(env); err == nil && h >= 0 && h <= 23 {
			hours.To = h
		}
	}
	if hours.To < hours.From {
		hours.From, hours.To = hours.To, hours.From
	}
	return hours
}

// BuildWeeklyGrid projects a flat set of session records onto a 7-day grid.
// Records are placed by their timestamp localized to loc. All seven weekday
// keys are always present and every hour inside the window is filled, with a
// nil event where nothing is scheduled. The input is never mutated.
//
// Two records landing on the same (weekday, hour) is not an error: records
// are ordered by creation time, so the most recently created one wins the
// slot regardless of store iteration order.
func BuildWeeklyGrid(records []models.Schedule, hours HourRange, loc *time.Location) WeekGrid {
	grid := make(WeekGrid, len(weekdays))
	for _, day := range weekdays {
		grid[day] = make(map[int]Slot)
	}

	ordered := make([]models.Schedule, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID.String() < ordered[j].ID.String()
	})

	for i := range ordered {
		rec := &ordered[i]
		if rec.Timestamp.IsZero() {
			log.Printf("weekly grid: schedule %s has no usable timestamp, skipping", rec.ID)
			continue
		}
		local := rec.Timestamp.In(loc)
		day := strings.ToLower(local.Weekday().String())
		hour := local.Hour()

		event := NewEventView(rec)
		grid[day][hour] = Slot{Time: hour, Event: &event}
	}

	for _, day := range weekdays {
		for h := hours.From; h <= hours.To; h++ {
			if _, ok := grid[day][h]; !ok {
				grid[day][h] = Slot{Time: h}
			}
		}
	}

	return grid
}

// ScheduleService is the read boundary the HTTP layer calls for the weekly
// view. Capability checks for session writes happen upstream.
type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// WeeklySchedule fetches session records, optionally scoped to one gym, and
// projects them onto the weekly grid in the viewer's location.
func (s *ScheduleService) WeeklySchedule(gymID *uuid.UUID, loc *time.Location) (WeekGrid, error) {
	query := s.db.
		Preload("Gym").Preload("Gym.Location").Preload("Gym.Pictures").
		Preload("Profile").Preload("Profile.User").Preload("Profile.Gyms")

	if gymID != nil {
		query = query.Where("gym_id = ?", *gymID)
	}

	var records []models.Schedule
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return BuildWeeklyGrid(records, RecognizedHours(), loc), nil
}
