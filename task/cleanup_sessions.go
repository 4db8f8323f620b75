package tasks

import (
	"log"
	"time"

	"luckyspin/database"
	"luckyspin/models"
)

func CleanupExpiredSessions() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&models.AuthSession{})

	if result.Error != nil {
		log.Println("❌ Failed to delete expired sessions:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d expired auth sessions\n", result.RowsAffected)
	}
}
