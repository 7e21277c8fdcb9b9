package controllers

import "github.com/gin-gonic/gin"

// fail writes the canonical error envelope. Raw error text is passed through
// on 500s, matching what the API has always returned.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
