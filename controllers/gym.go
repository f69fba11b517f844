package controllers

import (
	"errors"
	"net/http"

	"gymnet-backend/config"
	"gymnet-backend/models"
	"gymnet-backend/services"
	"gymnet-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type CreateGymInput struct {
	Name        string         `json:"name" binding:"required"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Location    *LocationInput `json:"location"`
	Pictures    []string       `json:"pictures"`
}

type UpdateGymInput struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Location    *LocationInput `json:"location"`
}

// findGymBySlug loads a gym with its directory associations, writing the
// 404/500 response itself on failure.
func findGymBySlug(c *gin.Context, slug string) (*models.Gym, bool) {
	var gym models.Gym
	err := config.DB.
		Preload("Location").Preload("Pictures").
		Preload("Profiles.User").Preload("Profiles.Gyms").
		Where("slug = ?", slug).First(&gym).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Gym not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &gym, true
}

// GetGyms lists all gyms without membership data.
func GetGyms(c *gin.Context) {
	var gyms []models.Gym
	if err := config.DB.Preload("Location").Preload("Pictures").Find(&gyms).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve gyms")
		return
	}

	views := make([]services.GymView, 0, len(gyms))
	for i := range gyms {
		views = append(views, services.NewGymView(&gyms[i]))
	}

	c.JSON(http.StatusOK, views)
}

// GetGym returns the directory view of one gym. The membership list is
// intentionally narrowed to staff profiles; the full list lives on the
// /members path.
func GetGym(c *gin.Context) {
	gym, ok := findGymBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	staff := services.StaffMembers(gym)
	users := make([]services.ProfileView, 0, len(staff))
	for i := range staff {
		users = append(users, services.NewProfileView(&staff[i]))
	}

	view := services.NewGymView(gym)
	c.JSON(http.StatusOK, gin.H{
		"slug":        view.Slug,
		"name":        view.Name,
		"pictures":    view.Pictures,
		"description": view.Description,
		"location":    view.Location,
		"users":       users,
	})
}

// GetGymMembers returns the open membership list of one gym.
func GetGymMembers(c *gin.Context) {
	gym, ok := findGymBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	members := services.FullMembers(gym)
	views := make([]services.ProfileView, 0, len(members))
	for i := range members {
		views = append(views, services.NewProfileView(&members[i]))
	}

	c.JSON(http.StatusOK, views)
}

// CreateGym creates a gym, deriving the slug from the name when absent.
func CreateGym(c *gin.Context) {
	var input CreateGymInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	} else {
		slug = utils.Slugify(slug)
	}
	if slug == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot derive a slug from the gym name")
		return
	}

	var existing models.Gym
	if err := config.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Gym with this slug already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	gym := models.Gym{
		Slug:        slug,
		Name:        input.Name,
		Description: input.Description,
	}
	if input.Location != nil {
		gym.Location = models.Location{
			Latitude:  input.Location.Latitude,
			Longitude: input.Location.Longitude,
			Address:   input.Location.Address,
		}
	}
	for _, image := range input.Pictures {
		gym.Pictures = append(gym.Pictures, models.Picture{Image: image})
	}

	if err := config.DB.Create(&gym).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create gym")
		return
	}

	c.JSON(http.StatusCreated, services.NewGymView(&gym))
}

// UpdateGym updates gym fields. The slug is immutable once set.
func UpdateGym(c *gin.Context) {
	gym, ok := findGymBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	var input UpdateGymInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		gym.Name = *input.Name
	}
	if input.Description != nil {
		gym.Description = *input.Description
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if input.Location != nil {
			gym.Location.Latitude = input.Location.Latitude
			gym.Location.Longitude = input.Location.Longitude
			gym.Location.Address = input.Location.Address
			if err := tx.Save(&gym.Location).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(gym).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update gym")
		return
	}

	c.JSON(http.StatusOK, services.NewGymView(gym))
}

// DeleteGym removes a gym together with its location, pictures and session
// records.
func DeleteGym(c *gin.Context) {
	gym, ok := findGymBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	if err := config.DB.Select(clause.Associations).Delete(gym).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete gym")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gym deleted successfully"})
}

// JoinGym links the caller's profile to the gym membership.
func JoinGym(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	gym, ok := findGymBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	if err := config.DB.Model(gym).Association("Profiles").Append(profile); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to join gym")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined gym"})
}

// LeaveGym removes the caller's profile from the gym membership.
func LeaveGym(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	gym, ok := findGymBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	if err := config.DB.Model(gym).Association("Profiles").Delete(profile); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to leave gym")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left gym"})
}

// AddGymPicture attaches a picture URL to the gym.
func AddGymPicture(c *gin.Context) {
	gym, ok := findGymBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	var input struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	picture := models.Picture{GymID: gym.ID, Image: input.Image}
	if err := config.DB.Create(&picture).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add picture")
		return
	}

	c.JSON(http.StatusCreated, services.PictureView{Image: picture.Image})
}
