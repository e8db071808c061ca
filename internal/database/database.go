// Package database owns the store lifecycle: it is opened once at process
// start and injected everywhere, never reached through package globals.
package database

import (
	"os"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stocktrack/internal/auth"
	"stocktrack/internal/models"
)

// Open connects to postgres when a DSN is configured. An empty DSN
// selects the in-memory demo store so the app runs without a database.
func Open(dsn string, lg *zap.SugaredLogger) (*gorm.DB, error) {
	if dsn == "" {
		lg.Warnw("DATABASE_URL is empty, running on the in-memory demo store")
		return gorm.Open(sqlite.Open("file:stocktrack?mode=memory&cache=shared"), &gorm.Config{})
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.InventoryItem{},
		&models.Category{},
		&models.ActivityLog{},
		&models.User{},
	)
}

// SeedOwner creates the default owner account on first boot. The
// password comes from OWNER_PASSWORD, or "owner123" for local runs.
func SeedOwner(db *gorm.DB, lg *zap.SugaredLogger) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleOwner).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	pw := os.Getenv("OWNER_PASSWORD")
	if pw == "" {
		pw = "owner123"
	}
	hash, err := auth.HashPassword(pw)
	if err != nil {
		return err
	}
	u := models.User{
		Username:     "owner",
		PasswordHash: hash,
		FullName:     "Store Owner",
		Role:         models.RoleOwner,
		IsActive:     true,
		CreatedBy:    "system",
	}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	lg.Infow("seeded default owner account", "username", u.Username)
	return nil
}

func floatPtr(f float64) *float64 { return &f }

// SeedDemo loads the demo catalogue into an empty store. Only used in
// demo mode.
func SeedDemo(db *gorm.DB, lg *zap.SugaredLogger) error {
	var count int64
	if err := db.Model(&models.InventoryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	categories := []models.Category{
		{Name: "Electronics", Color: "#3b82f6", IsActive: true},
		{Name: "Peripherals", Color: "#22c55e", IsActive: true},
		{Name: "Storage", Color: "#f59e0b", IsActive: true},
		{Name: "Cables", Color: "#ef4444", IsActive: true},
	}
	items := []models.InventoryItem{
		{Name: "27-inch 4K Monitor", Description: "Ultra HD 27-inch monitor", Quantity: 20, Category: "Electronics", Status: models.StatusInStock, Price: floatPtr(349.99)},
		{Name: "RGB Mechanical Keyboard", Description: "Mechanical gaming keyboard", Quantity: 5, Category: "Peripherals", Status: models.StatusLowStock, Price: floatPtr(89.99)},
		{Name: "HDMI 2.1 Cable 6ft", Description: "6-foot HDMI 2.1 cable", Quantity: 0, Category: "Cables", Status: models.StatusOutOfStock, Price: floatPtr(19.99)},
		{Name: "1TB SSD Drive", Description: "1TB SSD SATA", Quantity: 12, Category: "Storage", Status: models.StatusInStock, Price: floatPtr(129.99)},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	lg.Infow("seeded demo catalogue", "items", len(items), "categories", len(categories))
	return nil
}
