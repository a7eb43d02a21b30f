package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

const maxInlineJSONBytes = 50 * 1024 * 1024

// DatasetStore persists datasets with their rows inlined as JSON. The
// source CSV is converted once at upload and not kept around.
type DatasetStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewDatasetStore(db *gorm.DB, logger *zap.Logger) *DatasetStore {
	return &DatasetStore{db: db, logger: logger}
}

// List returns dataset summaries without the row payload.
func (s *DatasetStore) List() ([]entity.Dataset, error) {
	var datasets []entity.Dataset
	if err := s.db.Omit("rows").Order("name").Find(&datasets).Error; err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return datasets, nil
}

func (s *DatasetStore) GetByName(name string) (*entity.Dataset, error) {
	var dataset entity.Dataset
	if err := s.db.Where("name = ?", name).First(&dataset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dataset %q: %w", name, err)
	}
	return &dataset, nil
}

// Upsert creates or replaces a dataset keyed by its name. Derived fields
// (headers, row and column counts) are filled in from the rows when the
// caller did not provide them.
func (s *DatasetStore) Upsert(dataset *entity.Dataset) error {
	if err := validateName("datasetName", dataset.Name); err != nil {
		return err
	}
	if dataset.Rows != nil {
		encoded, err := json.Marshal(dataset.Rows)
		if err != nil {
			return validationErr("jsonData", "rows are not serializable as JSON")
		}
		if len(encoded) > maxInlineJSONBytes {
			return validationErr("jsonData", "inline data exceeds the 50MB limit")
		}
		if dataset.RowCount == 0 {
			dataset.RowCount = len(dataset.Rows)
		}
		if dataset.ColumnCount == 0 {
			dataset.ColumnCount = len(dataset.Headers)
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing entity.Dataset
		err := tx.Where("name = ?", dataset.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(dataset).Error; err != nil {
				return fmt.Errorf("failed to create dataset %q: %w", dataset.Name, err)
			}
			s.logger.Info("Dataset created", zap.String("dataset", dataset.Name), zap.Int("rows", dataset.RowCount))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up dataset %q: %w", dataset.Name, err)
		}

		dataset.ID = existing.ID
		dataset.CreatedAt = existing.CreatedAt
		if err := tx.Model(&existing).Select("*").Omit("id", "created_at").Updates(dataset).Error; err != nil {
			return fmt.Errorf("failed to update dataset %q: %w", dataset.Name, err)
		}
		s.logger.Info("Dataset updated", zap.String("dataset", dataset.Name), zap.Int("rows", dataset.RowCount))
		return nil
	})
}

// DeleteByName removes the dataset and, in the same transaction, every
// dashboard that references it.
func (s *DatasetStore) DeleteByName(name string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("name = ?", name).Delete(&entity.Dataset{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete dataset %q: %w", name, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		cascade := tx.Where("dataset_name = ?", name).Delete(&entity.Dashboard{})
		if cascade.Error != nil {
			return fmt.Errorf("failed to cascade dashboards for dataset %q: %w", name, cascade.Error)
		}
		s.logger.Info("Dataset deleted",
			zap.String("dataset", name),
			zap.Int64("dashboards_removed", cascade.RowsAffected))
		return nil
	})
}
