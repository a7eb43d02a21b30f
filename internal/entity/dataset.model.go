package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Dataset struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Name        string     `json:"datasetName" gorm:"type:varchar(100);uniqueIndex;not null"`
	Rows        JSONRows   `json:"jsonData,omitempty" gorm:"type:text"`
	Headers     StringList `json:"headers" gorm:"type:text"`
	RowCount    int        `json:"rowCount"`
	ColumnCount int        `json:"columnCount"`
	FileName    string     `json:"fileName" gorm:"type:varchar(255)"`
	FileSize    int64      `json:"fileSize"`
	MimeType    string     `json:"mimeType" gorm:"type:varchar(100)"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (d *Dataset) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Summary strips the row payload for list responses.
func (d Dataset) Summary() Dataset {
	d.Rows = nil
	return d
}
