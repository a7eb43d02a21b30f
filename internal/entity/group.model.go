package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GroupRoleAdmin  = "admin"
	GroupRoleMember = "member"
)

type UserGroup struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"group_name" gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *UserGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type GroupMember struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_member"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_member"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:member"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupSetting struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_setting_key"`
	Key       string    `json:"key" gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex:idx_group_setting_key"`
	Value     string    `json:"value" gorm:"type:text"`
	Type      string    `json:"type" gorm:"type:varchar(20);default:string"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
