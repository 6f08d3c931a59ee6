package services

import (
	"testing"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MoodEntry{},
		&models.JournalEntry{},
		&models.Habit{},
		&models.HabitEntry{},
		&models.Goal{},
		&models.GoalMilestone{},
		&models.MeditationSession{},
		&models.CrisisResource{},
		&models.CrisisAccessLog{},
		&models.Alert{},
		&models.ChatMessage{},
	))
	return db
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	require.NoError(t, err)
	return d
}
