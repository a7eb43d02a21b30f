package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
)

// Health reports liveness and checks that the database answers.
func Health(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := ctx.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "degraded"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	}
}
