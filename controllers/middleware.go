package controllers

import (
	"net/http"

	"gymnet-backend/config"
	"gymnet-backend/models"
	"gymnet-backend/utils"

	"github.com/gin-gonic/gin"
)

// currentProfile loads the authenticated caller's profile. Aborts the request
// with 401 when the token subject has no profile behind it.
func currentProfile(c *gin.Context) (*models.Profile, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}

	var profile models.Profile
	if err := config.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Profile not found")
		return nil, false
	}

	return &profile, true
}

// StaffRequired gates write operations to staff-flagged profiles.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := currentProfile(c)
		if !ok {
			return
		}

		if !profile.IsStaff {
			utils.RespondWithError(c, http.StatusForbidden, "Staff permission required")
			return
		}

		c.Set("profile", profile)
		c.Next()
	}
}

// staffProfile returns the profile cached by StaffRequired.
func staffProfile(c *gin.Context) (*models.Profile, bool) {
	v, exists := c.Get("profile")
	if !exists {
		return currentProfile(c)
	}
	profile, ok := v.(*models.Profile)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid profile in context")
		return nil, false
	}
	return profile, true
}
