package controllers

import (
	"net/http"

	"gymnet-backend/config"
	"gymnet-backend/models"
	"gymnet-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreatePosterInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Text        string `json:"text"`
	Image       string `json:"image"`
}

// GetPosters lists the content feed, newest first.
func GetPosters(c *gin.Context) {
	var posters []models.Poster
	if err := config.DB.Order("publish_date DESC").Find(&posters).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve posters")
		return
	}

	c.JSON(http.StatusOK, posters)
}

// CreatePoster publishes a feed entry. The publish date is set on creation.
func CreatePoster(c *gin.Context) {
	var input CreatePosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	poster := models.Poster{
		Title:       input.Title,
		Description: input.Description,
		Text:        input.Text,
		Image:       input.Image,
	}

	if err := config.DB.Create(&poster).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create poster")
		return
	}

	c.JSON(http.StatusCreated, poster)
}
