package main

import (
	"log"
	"os"
	"time"

	"mindmate-be/internal/model"
	"mindmate-be/pkg/database"
	"mindmate-be/pkg/sentiment"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Notification Types...")
	SeedNotificationTypes(db)

	color.Cyan("Seeding Demo User...")

	var existing model.User
	if err := db.Where("email = ?", "demo@mindmate.app").First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing demo password: %v", err)
	}
	hashStr := string(hash)

	demo := model.User{
		Username:      "demo",
		Email:         "demo@mindmate.app",
		PasswordHash:  &hashStr,
		FullName:      "Demo User",
		Role:          "user",
		Status:        "active",
		EmailVerified: true,
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Fatalf("Error creating demo user: %v", err)
	}

	// A short demo conversation so the analysis endpoints have data.
	texts := []string{
		"hello",
		"i have been feeling sad and tired lately",
		"thanks for listening",
	}
	for _, text := range texts {
		result := sentiment.Classify(text)
		dep := result.DepressionScore

		userTurn := model.ChatTurn{UserId: demo.Id, Text: text, IsFromUser: true, CreatedAt: time.Now()}
		if err := db.Create(&userTurn).Error; err != nil {
			log.Fatalf("Error creating demo chat turn: %v", err)
		}
		botTurn := model.ChatTurn{UserId: demo.Id, Text: result.Reply, IsFromUser: false, DepressionScore: &dep, CreatedAt: time.Now()}
		if err := db.Create(&botTurn).Error; err != nil {
			log.Fatalf("Error creating demo chat turn: %v", err)
		}
	}

	color.Green("Seeding completed! Demo login: demo@mindmate.app / demo1234")
}
