package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

func TestSettingBooleanRoundTrip(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	require.NoError(t, settings.Set(userID, "autoSave", true, entity.SettingTypeBoolean, false))

	got, err := settings.Get(userID, "autoSave")
	require.NoError(t, err)
	assert.Equal(t, true, got.Value, "boolean must come back typed, not as a string")
	assert.Equal(t, entity.SettingTypeBoolean, got.Type)
}

func TestSettingNumberRoundTrip(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	require.NoError(t, settings.Set(userID, "pageSize", float64(25), entity.SettingTypeNumber, false))

	got, err := settings.Get(userID, "pageSize")
	require.NoError(t, err)
	assert.Equal(t, float64(25), got.Value)
}

func TestSettingJSONRoundTrip(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	value := map[string]interface{}{"theme": "dark", "columns": []interface{}{"a", "b"}}
	require.NoError(t, settings.Set(userID, "layout", value, entity.SettingTypeJSON, false))

	got, err := settings.Get(userID, "layout")
	require.NoError(t, err)
	assert.Equal(t, value, got.Value)
}

func TestSettingUpsertOneRowPerKey(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	require.NoError(t, settings.Set(userID, "theme", "light", entity.SettingTypeString, false))
	require.NoError(t, settings.Set(userID, "theme", "dark", entity.SettingTypeString, true))

	all, err := settings.GetAll(userID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "dark", all["theme"].Value)
	assert.True(t, all["theme"].IsGlobal)
}

func TestSettingTypeMismatchRejected(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	err := settings.Set(userID, "autoSave", "yes", entity.SettingTypeBoolean, false)
	assert.True(t, IsValidation(err), "expected validation error, got %v", err)

	err = settings.Set(userID, "autoSave", true, "enum", false)
	assert.True(t, IsValidation(err), "unknown type tag must be rejected, got %v", err)
}

func TestSettingCorruptValueSoftFails(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	require.NoError(t, settings.Set(userID, "pageSize", float64(25), entity.SettingTypeNumber, false))
	// Corrupt the stored value behind the store's back.
	require.NoError(t, settings.db.Model(&entity.UserSetting{}).
		Where("user_id = ? AND setting_key = ?", userID, "pageSize").
		Update("value", "not-a-number").Error)

	got, err := settings.Get(userID, "pageSize")
	require.NoError(t, err, "decode failure must not become an error")
	assert.Equal(t, "not-a-number", got.Value)
}

func TestSettingSetManyAndDelete(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	batch := map[string]SettingValue{
		"autoSave": {Value: true, Type: entity.SettingTypeBoolean},
		"theme":    {Value: "dark", Type: entity.SettingTypeString},
	}
	require.NoError(t, settings.SetMany(userID, batch))

	all, err := settings.GetAll(userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, settings.Delete(userID, "theme"))
	assert.ErrorIs(t, settings.Delete(userID, "theme"), ErrNotFound)

	_, err = settings.Get(userID, "theme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingSetManyRejectsWholeBatch(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	userID := uuid.New()

	batch := map[string]SettingValue{
		"good": {Value: "x", Type: entity.SettingTypeString},
		"bad":  {Value: "yes", Type: entity.SettingTypeBoolean},
	}
	err := settings.SetMany(userID, batch)
	assert.True(t, IsValidation(err))

	all, err := settings.GetAll(userID)
	require.NoError(t, err)
	assert.Empty(t, all, "a bad entry must reject the whole batch before any write")
}

func TestGroupLifecycle(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	owner := uuid.New()
	member := uuid.New()

	group, err := settings.CreateGroup("analytics-team", owner)
	require.NoError(t, err)

	_, err = settings.CreateGroup("analytics-team", member)
	assert.ErrorIs(t, err, ErrGroupNameTaken)

	role, err := settings.MemberRole(group.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupRoleAdmin, role, "creator joins as admin")

	_, err = settings.MemberRole(group.ID, member)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, settings.AddMember(group.ID, member, entity.GroupRoleMember))
	role, err = settings.MemberRole(group.ID, member)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupRoleMember, role)

	// Adding again updates the role instead of duplicating the pair.
	require.NoError(t, settings.AddMember(group.ID, member, entity.GroupRoleAdmin))
	role, err = settings.MemberRole(group.ID, member)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupRoleAdmin, role)

	assert.True(t, IsValidation(settings.AddMember(group.ID, member, "owner")))
	assert.ErrorIs(t, settings.AddMember(uuid.New(), member, entity.GroupRoleMember), ErrNotFound)
}

func TestGroupSettingsRoundTrip(t *testing.T) {
	_, _, settings, _ := newTestStores(t)
	owner := uuid.New()

	group, err := settings.CreateGroup("analytics-team", owner)
	require.NoError(t, err)

	require.NoError(t, settings.SetGroupSetting(group.ID, "sharedTheme", "dark", entity.SettingTypeString))
	require.NoError(t, settings.SetGroupSetting(group.ID, "sharedTheme", "light", entity.SettingTypeString))

	got, err := settings.GetGroupSettings(group.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "light", got["sharedTheme"].Value)
}
