package controllers

import (
	"errors"
	"net/http"
	"time"

	"gymnet-backend/config"
	"gymnet-backend/models"
	"gymnet-backend/services"
	"gymnet-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateScheduleInput struct {
	Group     int        `json:"group" binding:"required"`
	Timestamp time.Time  `json:"timestamp" binding:"required"`
	Address   string     `json:"address"`
	Gym       string     `json:"gym" binding:"required"` // gym slug
	ProfileID *uuid.UUID `json:"profile_id"`             // defaults to the caller
}

type PatchScheduleInput struct {
	Group     *int       `json:"group"`
	Timestamp *time.Time `json:"timestamp"`
	Address   *string    `json:"address"`
	Gym       *string    `json:"gym"`
	ProfileID *uuid.UUID `json:"profile_id"`
}

// GetWeeklySchedule returns the seven-day grid, optionally scoped to one gym
// by slug. An optional tz query parameter localizes timestamps for the
// viewer; the server's local zone is used otherwise.
func GetWeeklySchedule(c *gin.Context) {
	loc := time.Local
	if tz := c.Query("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown time zone")
			return
		}
		loc = parsed
	}

	var gymID *uuid.UUID
	if slug := c.Query("gym"); slug != "" {
		var gym models.Gym
		if err := config.DB.Where("slug = ?", slug).First(&gym).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Gym not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		gymID = &gym.ID
	}

	grid, err := services.NewScheduleService(config.DB).WeeklySchedule(gymID, loc)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build weekly schedule")
		return
	}

	c.JSON(http.StatusOK, grid)
}

// loadSchedule fetches one session record with everything its event view
// needs, writing the error response itself on failure.
func loadSchedule(c *gin.Context, id uuid.UUID) (*models.Schedule, bool) {
	var record models.Schedule
	err := config.DB.
		Preload("Gym").Preload("Gym.Location").Preload("Gym.Pictures").
		Preload("Profile").Preload("Profile.User").Preload("Profile.Gyms").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &record, true
}

func scheduleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetSchedule returns one session record as an event object.
func GetSchedule(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}
	record, ok := loadSchedule(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.NewEventView(record))
}

// CreateSchedule creates a session record. Staff capability is enforced by
// the route middleware.
func CreateSchedule(c *gin.Context) {
	caller, ok := staffProfile(c)
	if !ok {
		return
	}

	var input CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var gym models.Gym
	if err := config.DB.Where("slug = ?", input.Gym).First(&gym).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Gym not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	profileID := caller.ID
	if input.ProfileID != nil {
		var instructor models.Profile
		if err := config.DB.First(&instructor, "id = ?", *input.ProfileID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Instructor profile not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		profileID = instructor.ID
	}

	record := models.Schedule{
		Group:     input.Group,
		Timestamp: input.Timestamp,
		Address:   input.Address,
		GymID:     gym.ID,
		ProfileID: profileID,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	created, ok := loadSchedule(c, record.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, services.NewEventView(created))
}

// UpdateSchedule fully replaces a session record.
func UpdateSchedule(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}
	record, ok := loadSchedule(c, id)
	if !ok {
		return
	}

	var input CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var gym models.Gym
	if err := config.DB.Where("slug = ?", input.Gym).First(&gym).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Gym not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	record.Group = input.Group
	record.Timestamp = input.Timestamp
	record.Address = input.Address
	record.GymID = gym.ID
	if input.ProfileID != nil {
		record.ProfileID = *input.ProfileID
	}

	if ok := saveSchedule(c, record); !ok {
		return
	}

	updated, ok := loadSchedule(c, record.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.NewEventView(updated))
}

// PatchSchedule partially updates a session record.
func PatchSchedule(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}
	record, ok := loadSchedule(c, id)
	if !ok {
		return
	}

	var input PatchScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Group != nil {
		record.Group = *input.Group
	}
	if input.Timestamp != nil {
		record.Timestamp = *input.Timestamp
	}
	if input.Address != nil {
		record.Address = *input.Address
	}
	if input.Gym != nil {
		var gym models.Gym
		if err := config.DB.Where("slug = ?", *input.Gym).First(&gym).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Gym not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		record.GymID = gym.ID
	}
	if input.ProfileID != nil {
		var instructor models.Profile
		if err := config.DB.First(&instructor, "id = ?", *input.ProfileID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Instructor profile not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		record.ProfileID = instructor.ID
	}

	if ok := saveSchedule(c, record); !ok {
		return
	}

	updated, ok := loadSchedule(c, record.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.NewEventView(updated))
}

func saveSchedule(c *gin.Context, record *models.Schedule) bool {
	if err := config.DB.Omit("Gym", "Profile").Save(record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update schedule")
		return false
	}
	return true
}

// DeleteSchedule removes a session record independently of its gym/profile.
func DeleteSchedule(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Schedule{}, "id = ?", id)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete schedule")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
