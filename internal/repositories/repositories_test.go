package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sq23rd/roster-backend/internal/models"
)

// newTestDB opens a throwaway sqlite database with the full schema. A single
// pooled connection keeps concurrent transactions serialized instead of
// failing with SQLITE_BUSY.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OwnerClaim{},
		&models.Qualification{},
		&models.Schedule{},
		&models.FCIF{},
		&models.FCIFAcknowledgement{},
	))
	return db
}

func newTestUser(personalEmail, loginEmail string) *models.User {
	return &models.User{
		PersonalEmail: personalEmail,
		LoginEmail:    loginEmail,
		PasswordHash:  "$2a$04$fakefakefakefakefakefuNqg0GHzFbo0pUkcVNNJQ2P1hk1rvdpa",
		Name:          "Test User",
		Role:          models.UserRoleUser,
		Status:        models.UserStatusPending,
	}
}
