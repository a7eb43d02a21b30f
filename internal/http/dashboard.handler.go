package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
	"github.com/roypriyanshu02/graphic-walker-app/internal/store"
)

func ListDashboards(ctx *appcontext.Context, dashboards *store.DashboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := dashboards.List()
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to list dashboards")
			return
		}

		respondData(c, http.StatusOK, list)
	}
}

func SaveDashboard(ctx *appcontext.Context, dashboards *store.DashboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dashboard entity.Dashboard
		if err := c.BindJSON(&dashboard); err != nil {
			respondError(c, http.StatusBadRequest, "Failed to bind request")
			return
		}

		if err := dashboards.Upsert(&dashboard); err != nil {
			respondStoreError(ctx, c, err, "Failed to save dashboard")
			return
		}

		respondMessage(c, http.StatusOK, "Dashboard saved successfully", dashboard)
	}
}

func GetDashboard(ctx *appcontext.Context, dashboards *store.DashboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard, err := dashboards.GetByName(c.Param("name"))
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get dashboard")
			return
		}

		respondData(c, http.StatusOK, dashboard)
	}
}

func DeleteDashboard(ctx *appcontext.Context, dashboards *store.DashboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := dashboards.DeleteByName(c.Param("name")); err != nil {
			respondStoreError(ctx, c, err, "Failed to delete dashboard")
			return
		}

		respondMessage(c, http.StatusOK, "Dashboard deleted successfully", nil)
	}
}

func GetDashboardStats(ctx *appcontext.Context, dashboards *store.DashboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := dashboards.Stats()
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to compute dashboard stats")
			return
		}

		respondData(c, http.StatusOK, stats)
	}
}
