package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/roypriyanshu02/graphic-walker-app/internal/config"
	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

// newTestDB opens an in-memory SQLite database with the full schema. A
// single connection keeps every query on the same memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestStores(t *testing.T) (*DatasetStore, *DashboardStore, *SettingsStore, *UserStore) {
	t.Helper()
	db := newTestDB(t)
	logger := zap.NewNop()
	return NewDatasetStore(db, logger),
		NewDashboardStore(db, logger),
		NewSettingsStore(db, logger),
		NewUserStore(db, logger)
}

func sampleDataset(name string) *entity.Dataset {
	return &entity.Dataset{
		Name: name,
		Rows: entity.JSONRows{
			{"region": "north", "amount": float64(100)},
			{"region": "south", "amount": nil},
		},
		Headers:  entity.StringList{"region", "amount"},
		FileName: "sales.csv",
		FileSize: 42,
		MimeType: "text/csv",
	}
}
