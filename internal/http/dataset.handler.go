package http

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/csvio"
	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
	"github.com/roypriyanshu02/graphic-walker-app/internal/metrics"
	"github.com/roypriyanshu02/graphic-walker-app/internal/store"
)

func ListDatasets(ctx *appcontext.Context, datasets *store.DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := datasets.List()
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to list datasets")
			return
		}

		summaries := make([]entity.Dataset, 0, len(list))
		for _, dataset := range list {
			summaries = append(summaries, dataset.Summary())
		}
		respondData(c, http.StatusOK, summaries)
	}
}

func SaveDataset(ctx *appcontext.Context, datasets *store.DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dataset entity.Dataset
		if err := c.BindJSON(&dataset); err != nil {
			respondError(c, http.StatusBadRequest, "Request body must be a dataset with a JSON row array")
			return
		}

		if err := datasets.Upsert(&dataset); err != nil {
			respondStoreError(ctx, c, err, "Failed to save dataset")
			return
		}

		respondMessage(c, http.StatusOK, "Dataset saved successfully", dataset.Summary())
	}
}

func GetDataset(ctx *appcontext.Context, datasets *store.DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		dataset, err := datasets.GetByName(c.Param("name"))
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get dataset")
			return
		}

		respondData(c, http.StatusOK, dataset)
	}
}

func DeleteDataset(ctx *appcontext.Context, datasets *store.DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := datasets.DeleteByName(c.Param("name")); err != nil {
			respondStoreError(ctx, c, err, "Failed to delete dataset")
			return
		}

		respondMessage(c, http.StatusOK, "Dataset and dependent dashboards deleted", nil)
	}
}

// GetDatasetData pages through the inline rows of a stored dataset.
func GetDatasetData(ctx *appcontext.Context, datasets *store.DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		dataset, err := datasets.GetByName(c.Param("name"))
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get dataset")
			return
		}

		total := len(dataset.Rows)
		offset := (page - 1) * limit
		end := offset + limit
		if offset > total {
			offset = total
		}
		if end > total {
			end = total
		}

		totalPages := (total + limit - 1) / limit
		startRow, endRow := 0, 0
		if offset < end {
			startRow = offset + 1
			endRow = end
		}

		respondData(c, http.StatusOK, gin.H{
			"rows": dataset.Rows[offset:end],
			"pagination": csvio.Pagination{
				Page:       page,
				Limit:      limit,
				TotalRows:  total,
				TotalPages: totalPages,
				HasNext:    page < totalPages,
				HasPrev:    page > 1 && total > 0,
				StartRow:   startRow,
				EndRow:     endRow,
			},
		})
	}
}

func GetDatasetInfo(ctx *appcontext.Context, datasets *store.DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		dataset, err := datasets.GetByName(c.Param("name"))
		if err != nil {
			respondStoreError(ctx, c, err, "Failed to get dataset info")
			return
		}

		respondData(c, http.StatusOK, dataset.Summary())
	}
}

// UploadDataset converts an uploaded CSV into inline row-JSON once and
// persists it under the submitted dataset name. The buffered file is
// removed afterwards whether or not the save succeeds.
func UploadDataset(ctx *appcontext.Context, datasets *store.DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			metrics.UploadCounter.WithLabelValues("rejected").Inc()
			respondError(c, http.StatusBadRequest, "A CSV file is required in the 'file' field")
			return
		}
		datasetName := c.PostForm("datasetName")
		if datasetName == "" {
			metrics.UploadCounter.WithLabelValues("rejected").Inc()
			respondError(c, http.StatusBadRequest, "datasetName is required")
			return
		}

		if file.Size > ctx.Config.MaxUploadBytes {
			metrics.UploadCounter.WithLabelValues("rejected").Inc()
			respondError(c, http.StatusBadRequest, "File exceeds the 50MB upload limit")
			return
		}
		if !isCSVFile(file) {
			metrics.UploadCounter.WithLabelValues("rejected").Inc()
			respondError(c, http.StatusBadRequest, "Only CSV files are allowed")
			return
		}

		tempPath := filepath.Join(ctx.Config.UploadDir, uuid.NewString()+".csv")
		if err := c.SaveUploadedFile(file, tempPath); err != nil {
			metrics.UploadCounter.WithLabelValues("failed").Inc()
			respondStoreError(ctx, c, err, "Failed to buffer uploaded file")
			return
		}
		defer func() {
			if err := os.Remove(tempPath); err != nil {
				ctx.Logger.Warn("Failed to remove uploaded file", zap.String("path", tempPath), zap.Error(err))
			}
		}()

		rows, headers, err := csvio.ReadAll(tempPath)
		if err != nil {
			metrics.UploadCounter.WithLabelValues("failed").Inc()
			respondStoreError(ctx, c, err, "Failed to parse uploaded CSV")
			return
		}

		jsonRows := make(entity.JSONRows, len(rows))
		for i, row := range rows {
			jsonRows[i] = row
		}

		dataset := entity.Dataset{
			Name:        datasetName,
			Rows:        jsonRows,
			Headers:     headers,
			RowCount:    len(rows),
			ColumnCount: len(headers),
			FileName:    file.Filename,
			FileSize:    file.Size,
			MimeType:    file.Header.Get("Content-Type"),
		}

		if err := datasets.Upsert(&dataset); err != nil {
			metrics.UploadCounter.WithLabelValues("failed").Inc()
			respondStoreError(ctx, c, err, "Failed to save uploaded dataset")
			return
		}

		metrics.UploadCounter.WithLabelValues("ok").Inc()
		respondMessage(c, http.StatusCreated, "Dataset uploaded successfully", dataset.Summary())
	}
}

func isCSVFile(file *multipart.FileHeader) bool {
	if strings.ToLower(filepath.Ext(file.Filename)) == ".csv" {
		return true
	}

	switch file.Header.Get("Content-Type") {
	case "text/csv", "application/csv", "text/plain":
		return true
	}
	return false
}
