package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/csvio"
	"github.com/roypriyanshu02/graphic-walker-app/internal/store"
)

// Every response carries a success envelope: {success, data?, message?}
// on the happy path, {success: false, error} otherwise.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondStoreError maps store and ingestion errors onto HTTP statuses.
// Unexpected errors are logged with request context and surface as a
// generic message in production.
func respondStoreError(ctx *appcontext.Context, c *gin.Context, err error, logMessage string) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, csvio.ErrNotFound):
		respondError(c, http.StatusNotFound, "CSV file not found")
	case errors.Is(err, store.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "Email is already registered")
	case errors.Is(err, store.ErrGroupNameTaken):
		respondError(c, http.StatusBadRequest, "Group name already exists")
	case errors.Is(err, store.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		ctx.Logger.Error(logMessage,
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path))
		if ctx.Config.IsProduction() {
			respondError(c, http.StatusInternalServerError, "Internal server error")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
	}
}
