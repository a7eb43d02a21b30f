package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recognized value types for settings. Values are stored as strings and
// decoded back according to Type.
const (
	SettingTypeString  = "string"
	SettingTypeBoolean = "boolean"
	SettingTypeNumber  = "number"
	SettingTypeJSON    = "json"
)

type UserSetting struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_setting_key"`
	Key       string    `json:"key" gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex:idx_user_setting_key"`
	Value     string    `json:"value" gorm:"type:text"`
	Type      string    `json:"type" gorm:"type:varchar(20);default:string"`
	IsGlobal  bool      `json:"is_global"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
