package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Dashboard struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name        string    `json:"dashboardName" gorm:"type:varchar(100);uniqueIndex;not null"`
	DatasetName string    `json:"datasetName" gorm:"type:varchar(100);not null;index"`
	JSONFormat  string    `json:"jsonFormat" gorm:"type:text"`
	IsMultiple  bool      `json:"isMultiple"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (d *Dashboard) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
