package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/csvio"
)

// Raw CSV inspection endpoints. These read files directly from disk and
// bypass the dataset store.

func ReadCSV(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, ok := csvPathParam(c)
		if !ok {
			return
		}

		rows, headers, err := csvio.ReadAll(path)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to read CSV")
			return
		}

		respondData(c, http.StatusOK, gin.H{"rows": rows, "headers": headers})
	}
}

func ReadCSVColumns(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, ok := csvPathParam(c)
		if !ok {
			return
		}
		columnsParam := c.Query("columns")
		if columnsParam == "" {
			respondError(c, http.StatusBadRequest, "columns query parameter is required")
			return
		}

		rows, err := csvio.ReadColumns(path, strings.Split(columnsParam, ","))
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to read CSV columns")
			return
		}

		respondData(c, http.StatusOK, gin.H{"rows": rows})
	}
}

func ReadCSVPage(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, ok := csvPathParam(c)
		if !ok {
			return
		}
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			respondError(c, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 || limit > csvio.MaxPageSize {
			respondError(c, http.StatusBadRequest, "limit must be between 1 and 1000")
			return
		}

		result, err := csvio.ReadPage(path, page, limit)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to read CSV page")
			return
		}

		respondData(c, http.StatusOK, result)
	}
}

func CSVInfo(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, ok := csvPathParam(c)
		if !ok {
			return
		}

		info, err := csvio.Info(path)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get CSV info")
			return
		}

		respondData(c, http.StatusOK, info)
	}
}

func CSVStats(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, ok := csvPathParam(c)
		if !ok {
			return
		}

		stats, err := csvio.Stats(path)
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get CSV stats")
			return
		}

		respondData(c, http.StatusOK, stats)
	}
}

func csvPathParam(c *gin.Context) (string, bool) {
	path := c.Query("csvPath")
	if path == "" {
		respondError(c, http.StatusBadRequest, "csvPath query parameter is required")
		return "", false
	}
	return path, true
}
