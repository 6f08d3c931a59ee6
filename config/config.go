package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
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
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
