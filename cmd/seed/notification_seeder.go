package main

import (
	"log"

	"mindmate-be/internal/model"

	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_REGISTERED",
			DisplayName: "Welcome to MindMate",
			Template:    "Welcome aboard, {email}! Verify your email to start chatting.",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
		},
		{
			Code:        "USER_LOGIN",
			DisplayName: "Login Activity",
			Template:    "You logged in from {ip} at {time}",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
		},
		{
			Code:        "USER_DELETED",
			DisplayName: "Account Deleted",
			Template:    "Your account and chat history have been removed.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
		},
		{
			Code:        "CHAT_SEVERE_SENTIMENT",
			DisplayName: "We're Here For You",
			Template:    "Your recent messages suggest you may be going through a hard time. Please consider reaching out to a mental health professional or a trusted person.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			IsActive:    true,
		},
	}

	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded successfully.")
}
