// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes a JSON error envelope and stops the handler chain
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
