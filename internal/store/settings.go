package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

// SettingValue is the typed view of a setting crossing the API boundary.
// Persistence keeps a tagged string; decoding happens on the way out.
type SettingValue struct {
	Value    interface{} `json:"value"`
	Type     string      `json:"type"`
	IsGlobal bool        `json:"is_global,omitempty"`
}

// SettingsStore handles per-user keyed settings plus group-shared
// settings. One row per (user, key); writes are upserts.
type SettingsStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSettingsStore(db *gorm.DB, logger *zap.Logger) *SettingsStore {
	return &SettingsStore{db: db, logger: logger}
}

func (s *SettingsStore) GetAll(userID uuid.UUID) (map[string]SettingValue, error) {
	var settings []entity.UserSetting
	if err := s.db.Where("user_id = ?", userID).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	out := make(map[string]SettingValue, len(settings))
	for _, setting := range settings {
		out[setting.Key] = SettingValue{
			Value:    decodeSettingValue(s.logger, setting.Key, setting.Type, setting.Value),
			Type:     setting.Type,
			IsGlobal: setting.IsGlobal,
		}
	}
	return out, nil
}

func (s *SettingsStore) Get(userID uuid.UUID, key string) (*SettingValue, error) {
	var setting entity.UserSetting
	if err := s.db.Where("user_id = ? AND setting_key = ?", userID, key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return &SettingValue{
		Value:    decodeSettingValue(s.logger, setting.Key, setting.Type, setting.Value),
		Type:     setting.Type,
		IsGlobal: setting.IsGlobal,
	}, nil
}

func (s *SettingsStore) Set(userID uuid.UUID, key string, value interface{}, valueType string, isGlobal bool) error {
	if key == "" {
		return validationErr("key", "setting key is required")
	}
	encoded, err := encodeSettingValue(valueType, value)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing entity.UserSetting
		err := tx.Where("user_id = ? AND setting_key = ?", userID, key).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting := entity.UserSetting{
				UserID:   userID,
				Key:      key,
				Value:    encoded,
				Type:     valueType,
				IsGlobal: isGlobal,
			}
			if err := tx.Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to create setting %q: %w", key, err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up setting %q: %w", key, err)
		}

		updates := map[string]interface{}{
			"value":     encoded,
			"type":      valueType,
			"is_global": isGlobal,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update setting %q: %w", key, err)
		}
		return nil
	})
}

// SetMany applies a batch of settings. Each entry is validated before any
// write; a bad entry rejects the whole batch.
func (s *SettingsStore) SetMany(userID uuid.UUID, settings map[string]SettingValue) error {
	for key, setting := range settings {
		if key == "" {
			return validationErr("key", "setting key is required")
		}
		if _, err := encodeSettingValue(setting.Type, setting.Value); err != nil {
			return err
		}
	}
	for key, setting := range settings {
		if err := s.Set(userID, key, setting.Value, setting.Type, setting.IsGlobal); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettingsStore) Delete(userID uuid.UUID, key string) error {
	result := s.db.Where("user_id = ? AND setting_key = ?", userID, key).Delete(&entity.UserSetting{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateGroup creates a group owned by the creator, who joins as admin in
// the same transaction.
func (s *SettingsStore) CreateGroup(name string, createdBy uuid.UUID) (*entity.UserGroup, error) {
	if err := validateName("groupName", name); err != nil {
		return nil, err
	}

	group := entity.UserGroup{Name: name, CreatedBy: createdBy}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.UserGroup{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check group name %q: %w", name, err)
		}
		if count > 0 {
			return ErrGroupNameTaken
		}
		if err := tx.Create(&group).Error; err != nil {
			return fmt.Errorf("failed to create group %q: %w", name, err)
		}
		member := entity.GroupMember{GroupID: group.ID, UserID: createdBy, Role: entity.GroupRoleAdmin}
		if err := tx.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to add group owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Group created", zap.String("group", name), zap.String("created_by", createdBy.String()))
	return &group, nil
}

// AddMember adds a user to a group, or updates the role if already a
// member.
func (s *SettingsStore) AddMember(groupID, userID uuid.UUID, role string) error {
	if role != entity.GroupRoleAdmin && role != entity.GroupRoleMember {
		return validationErr("role", "role must be admin or member")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var group entity.UserGroup
		if err := tx.First(&group, "id = ?", groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to look up group: %w", err)
		}

		var existing entity.GroupMember
		err := tx.Where("group_id = ? AND user_id = ?", groupID, userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			member := entity.GroupMember{GroupID: groupID, UserID: userID, Role: role}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to add group member: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up group member: %w", err)
		}
		if err := tx.Model(&existing).Update("role", role).Error; err != nil {
			return fmt.Errorf("failed to update member role: %w", err)
		}
		return nil
	})
}

// MemberRole returns the role of a user inside a group, or ErrNotFound if
// the user is not a member.
func (s *SettingsStore) MemberRole(groupID, userID uuid.UUID) (string, error) {
	var member entity.GroupMember
	if err := s.db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to look up group member: %w", err)
	}
	return member.Role, nil
}

func (s *SettingsStore) GetGroupSettings(groupID uuid.UUID) (map[string]SettingValue, error) {
	var settings []entity.GroupSetting
	if err := s.db.Where("group_id = ?", groupID).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list group settings: %w", err)
	}

	out := make(map[string]SettingValue, len(settings))
	for _, setting := range settings {
		out[setting.Key] = SettingValue{
			Value: decodeSettingValue(s.logger, setting.Key, setting.Type, setting.Value),
			Type:  setting.Type,
		}
	}
	return out, nil
}

func (s *SettingsStore) SetGroupSetting(groupID uuid.UUID, key string, value interface{}, valueType string) error {
	if key == "" {
		return validationErr("key", "setting key is required")
	}
	encoded, err := encodeSettingValue(valueType, value)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing entity.GroupSetting
		err := tx.Where("group_id = ? AND setting_key = ?", groupID, key).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting := entity.GroupSetting{GroupID: groupID, Key: key, Value: encoded, Type: valueType}
			if err := tx.Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to create group setting %q: %w", key, err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up group setting %q: %w", key, err)
		}
		if err := tx.Model(&existing).Updates(map[string]interface{}{"value": encoded, "type": valueType}).Error; err != nil {
			return fmt.Errorf("failed to update group setting %q: %w", key, err)
		}
		return nil
	})
}
