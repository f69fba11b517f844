package controllers

import (
	"errors"
	"net/http"

	"gymnet-backend/config"
	"gymnet-backend/models"
	"gymnet-backend/services"
	"gymnet-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateProfileInput struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Description *string `json:"description"`
	GroupNumber *int    `json:"group_number"`
	Avatar      *string `json:"avatar"`
}

func GetProfile(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	if err := config.DB.Preload("User").Preload("Gyms").First(profile, "id = ?", profile.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, services.NewProfileView(profile))
}

func UpdateProfile(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		profile.User.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.User.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		if *input.PhoneNumber != "" && !utils.ValidatePhone(*input.PhoneNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}
	if input.GroupNumber != nil {
		profile.GroupNumber = *input.GroupNumber
	}
	if input.Avatar != nil {
		profile.Avatar = input.Avatar
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if input.FirstName != nil || input.LastName != nil {
			if err := tx.Model(&profile.User).Updates(map[string]interface{}{
				"first_name": profile.User.FirstName,
				"last_name":  profile.User.LastName,
			}).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(profile).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	if err := config.DB.Preload("User").Preload("Gyms").First(profile, "id = ?", profile.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, services.NewProfileView(profile))
}

// ListTrainees returns the profiles this profile lists as trainees. The edge
// is directed, so appearing here implies nothing about the reverse direction.
func ListTrainees(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var links []models.TraineeLink
	if err := config.DB.
		Preload("Trainee.User").Preload("Trainee.Gyms").
		Where("trainer_id = ?", profile.ID).
		Find(&links).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load trainees")
		return
	}

	trainees := make([]services.ProfileView, 0, len(links))
	for i := range links {
		trainees = append(trainees, services.NewProfileView(&links[i].Trainee))
	}

	c.JSON(http.StatusOK, trainees)
}

// ListTrainers answers "who trains me" by querying the edge set with the
// caller's id in the trainee position.
func ListTrainers(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var links []models.TraineeLink
	if err := config.DB.
		Preload("Trainer.User").Preload("Trainer.Gyms").
		Where("trainee_id = ?", profile.ID).
		Find(&links).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load trainers")
		return
	}

	trainers := make([]services.ProfileView, 0, len(links))
	for i := range links {
		trainers = append(trainers, services.NewProfileView(&links[i].Trainer))
	}

	c.JSON(http.StatusOK, trainers)
}

func AddTrainee(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	traineeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	if traineeID == profile.ID {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot add yourself as a trainee")
		return
	}

	var trainee models.Profile
	if err := config.DB.First(&trainee, "id = ?", traineeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Profile not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var existing models.TraineeLink
	if err := config.DB.Where("trainer_id = ? AND trainee_id = ?", profile.ID, traineeID).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Already listed as a trainee")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	link := models.TraineeLink{TrainerID: profile.ID, TraineeID: traineeID}
	if err := config.DB.Create(&link).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add trainee")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Trainee added"})
}

func RemoveTrainee(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	traineeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	result := config.DB.Where("trainer_id = ? AND trainee_id = ?", profile.ID, traineeID).
		Delete(&models.TraineeLink{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove trainee")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Trainee not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainee removed"})
}
