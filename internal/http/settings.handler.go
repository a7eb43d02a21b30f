package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/store"
	"github.com/roypriyanshu02/graphic-walker-app/internal/utils"
)

func GetAllSettings(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		all, err := settings.GetAll(userID)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to list settings")
			return
		}

		respondData(c, http.StatusOK, all)
	}
}

func GetSetting(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		value, err := settings.Get(userID, c.Param("key"))
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get setting")
			return
		}

		respondData(c, http.StatusOK, value)
	}
}

func SetSetting(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var request struct {
			Value    interface{} `json:"value"`
			Type     string      `json:"type"`
			IsGlobal bool        `json:"is_global"`
		}
		if err := c.BindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, "Failed to bind request")
			return
		}

		if err := settings.Set(userID, c.Param("key"), request.Value, request.Type, request.IsGlobal); err != nil {
			respondStoreError(ctx, c, err, "Failed to save setting")
			return
		}

		respondMessage(c, http.StatusOK, "Setting saved successfully", nil)
	}
}

func SetSettingsBulk(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var request map[string]store.SettingValue
		if err := c.BindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, "Request body must map setting keys to {value, type} objects")
			return
		}

		if err := settings.SetMany(userID, request); err != nil {
			respondStoreError(ctx, c, err, "Failed to save settings")
			return
		}

		respondMessage(c, http.StatusOK, "Settings saved successfully", nil)
	}
}

func DeleteSetting(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := settings.Delete(userID, c.Param("key")); err != nil {
			respondStoreError(ctx, c, err, "Failed to delete setting")
			return
		}

		respondMessage(c, http.StatusOK, "Setting deleted successfully", nil)
	}
}
