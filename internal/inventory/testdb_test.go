package inventory

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stocktrack/internal/activity"
	"stocktrack/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.InventoryItem{}, &models.Category{}, &models.ActivityLog{}, &models.User{}))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewService(db, activity.NewSink(db), zap.NewNop().Sugar()), db
}

func lastActivity(t *testing.T, db *gorm.DB) models.ActivityLog {
	t.Helper()
	var entry models.ActivityLog
	require.NoError(t, db.Order("timestamp desc").First(&entry).Error)
	return entry
}

func activityCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Count(&count).Error)
	return count
}
