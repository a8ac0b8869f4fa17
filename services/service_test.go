package services

import (
	"testing"

	"stayhaven-server/models"
	"stayhaven-server/storage"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB backs the package-level storage handle with an in-memory
// sqlite database for the duration of a test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	storage.PerformMigrations(db)
	storage.DB = db
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return &user
}

func seedProperty(t *testing.T, db *gorm.DB, hostID uint, pricePerNight float64) *models.Property {
	t.Helper()
	property := models.Property{
		HostID:        hostID,
		Title:         "Test listing",
		Description:   "A listing used in tests",
		City:          "Porto",
		Country:       "Portugal",
		PricePerNight: pricePerNight,
		MaxGuests:     4,
		Type:          "apartment",
	}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("failed to seed property: %v", err)
	}
	return &property
}
