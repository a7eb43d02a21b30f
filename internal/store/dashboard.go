package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

// DashboardStore persists saved chart configurations. The chart spec
// itself is opaque; only its JSON syntax is checked.
type DashboardStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewDashboardStore(db *gorm.DB, logger *zap.Logger) *DashboardStore {
	return &DashboardStore{db: db, logger: logger}
}

type DashboardStats struct {
	Total      int64            `json:"total"`
	Single     int64            `json:"single"`
	Multiple   int64            `json:"multiple"`
	PerDataset []PerDatasetStat `json:"perDataset"`
}

type PerDatasetStat struct {
	DatasetName string `json:"datasetName"`
	Count       int64  `json:"count"`
}

func (s *DashboardStore) List() ([]entity.Dashboard, error) {
	var dashboards []entity.Dashboard
	if err := s.db.Order("name").Find(&dashboards).Error; err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	return dashboards, nil
}

func (s *DashboardStore) GetByName(name string) (*entity.Dashboard, error) {
	var dashboard entity.Dashboard
	if err := s.db.Where("name = ?", name).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dashboard %q: %w", name, err)
	}
	return &dashboard, nil
}

// Upsert creates or replaces a dashboard keyed by name. The referenced
// dataset must exist at save time; the check runs inside the same
// transaction as the write.
func (s *DashboardStore) Upsert(dashboard *entity.Dashboard) error {
	if err := validateName("dashboardName", dashboard.Name); err != nil {
		return err
	}
	if err := validateName("datasetName", dashboard.DatasetName); err != nil {
		return err
	}
	if dashboard.JSONFormat != "" && !json.Valid([]byte(dashboard.JSONFormat)) {
		return validationErr("jsonFormat", "chart spec is not valid JSON")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var datasetCount int64
		if err := tx.Model(&entity.Dataset{}).Where("name = ?", dashboard.DatasetName).Count(&datasetCount).Error; err != nil {
			return fmt.Errorf("failed to check dataset %q: %w", dashboard.DatasetName, err)
		}
		if datasetCount == 0 {
			return validationErr("datasetName", fmt.Sprintf("dataset %q does not exist", dashboard.DatasetName))
		}

		var existing entity.Dashboard
		err := tx.Where("name = ?", dashboard.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(dashboard).Error; err != nil {
				return fmt.Errorf("failed to create dashboard %q: %w", dashboard.Name, err)
			}
			s.logger.Info("Dashboard created", zap.String("dashboard", dashboard.Name), zap.String("dataset", dashboard.DatasetName))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up dashboard %q: %w", dashboard.Name, err)
		}

		dashboard.ID = existing.ID
		dashboard.CreatedAt = existing.CreatedAt
		if err := tx.Model(&existing).Select("*").Omit("id", "created_at").Updates(dashboard).Error; err != nil {
			return fmt.Errorf("failed to update dashboard %q: %w", dashboard.Name, err)
		}
		s.logger.Info("Dashboard updated", zap.String("dashboard", dashboard.Name), zap.String("dataset", dashboard.DatasetName))
		return nil
	})
}

func (s *DashboardStore) DeleteByName(name string) error {
	result := s.db.Where("name = ?", name).Delete(&entity.Dashboard{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete dashboard %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	s.logger.Info("Dashboard deleted", zap.String("dashboard", name))
	return nil
}

func (s *DashboardStore) Stats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.Model(&entity.Dashboard{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count dashboards: %w", err)
	}
	if err := s.db.Model(&entity.Dashboard{}).Where("is_multiple = ?", true).Count(&stats.Multiple).Error; err != nil {
		return nil, fmt.Errorf("failed to count multi-chart dashboards: %w", err)
	}
	stats.Single = stats.Total - stats.Multiple

	if err := s.db.Model(&entity.Dashboard{}).
		Select("dataset_name, COUNT(*) as count").
		Group("dataset_name").
		Order("dataset_name").
		Scan(&stats.PerDataset).Error; err != nil {
		return nil, fmt.Errorf("failed to count dashboards per dataset: %w", err)
	}
	return &stats, nil
}
