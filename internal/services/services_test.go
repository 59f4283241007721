// internal/services/services_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/visioncraft/visioncraft-backend/internal/config"
	"github.com/visioncraft/visioncraft-backend/internal/models"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps the database alive across the connections in gorm's pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Like{},
		&models.Event{},
		&models.EventRSVP{},
	))

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		Payment: config.PaymentConfig{
			Currency:        "inr",
			ShippingFee:     149.0,
			UPIPayeeAddress: "visioncraft@upi",
			UPIPayeeName:    "VisionCraft Marketplace",
		},
	}
}

func utilsPaginationDefaults() utils.PaginationParams {
	return utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestArtwork(t *testing.T, db *gorm.DB, seller *models.User, title string, price float64, stock int) *models.Artwork {
	t.Helper()

	artwork := &models.Artwork{
		UserID:        seller.ID,
		Title:         title,
		Price:         price,
		Category:      "Pottery",
		ArtistName:    seller.Username,
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, db.Create(artwork).Error)
	return artwork
}

func createTestEvent(t *testing.T, db *gorm.DB, title string) *models.Event {
	t.Helper()

	event := &models.Event{
		Title:     title,
		EventType: models.EventTypeWorkshop,
		EventDate: time.Now().AddDate(0, 1, 0),
		Location:  "Jaipur",
		Tags:      "pottery, handmade",
		IsActive:  true,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}
