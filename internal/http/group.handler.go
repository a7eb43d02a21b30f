package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
	"github.com/roypriyanshu02/graphic-walker-app/internal/store"
	"github.com/roypriyanshu02/graphic-walker-app/internal/utils"
)

func CreateGroup(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var request struct {
			GroupName string `json:"group_name"`
		}
		if err := c.BindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, "Failed to bind request")
			return
		}

		group, err := settings.CreateGroup(request.GroupName, userID)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to create group")
			return
		}

		respondMessage(c, http.StatusCreated, "Group created successfully", group)
	}
}

// AddGroupMember adds a user to a group. Only group admins may do this.
func AddGroupMember(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		requesterID, groupID, ok := groupRequest(c)
		if !ok {
			return
		}

		role, err := settings.MemberRole(groupID, requesterID)
		if err != nil || role != entity.GroupRoleAdmin {
			respondError(c, http.StatusForbidden, "Only group admins can add members")
			return
		}

		var request struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		}
		if err := c.BindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, "Failed to bind request")
			return
		}
		memberID, err := uuid.Parse(request.UserID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "user_id must be a valid UUID")
			return
		}
		if request.Role == "" {
			request.Role = entity.GroupRoleMember
		}

		if err := settings.AddMember(groupID, memberID, request.Role); err != nil {
			respondStoreError(ctx, c, err, "Failed to add group member")
			return
		}

		respondMessage(c, http.StatusOK, "Member added successfully", nil)
	}
}

func GetGroupSettings(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		requesterID, groupID, ok := groupRequest(c)
		if !ok {
			return
		}

		if _, err := settings.MemberRole(groupID, requesterID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(c, http.StatusForbidden, "Not a member of this group")
				return
			}
			respondStoreError(ctx, c, err, "Failed to check group membership")
			return
		}

		groupSettings, err := settings.GetGroupSettings(groupID)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to list group settings")
			return
		}

		respondData(c, http.StatusOK, groupSettings)
	}
}

func SetGroupSetting(ctx *appcontext.Context, settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		requesterID, groupID, ok := groupRequest(c)
		if !ok {
			return
		}

		role, err := settings.MemberRole(groupID, requesterID)
		if err != nil || role != entity.GroupRoleAdmin {
			respondError(c, http.StatusForbidden, "Only group admins can change group settings")
			return
		}

		var request struct {
			Key   string      `json:"key"`
			Value interface{} `json:"value"`
			Type  string      `json:"type"`
		}
		if err := c.BindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, "Failed to bind request")
			return
		}

		if err := settings.SetGroupSetting(groupID, request.Key, request.Value, request.Type); err != nil {
			respondStoreError(ctx, c, err, "Failed to save group setting")
			return
		}

		respondMessage(c, http.StatusOK, "Group setting saved successfully", nil)
	}
}

func groupRequest(c *gin.Context) (userID, groupID uuid.UUID, ok bool) {
	userID, err := utils.GetUserIDFromClaims(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	groupID, err = uuid.Parse(c.Param("groupID"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "groupID must be a valid UUID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, groupID, true
}
