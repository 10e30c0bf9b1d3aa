package database

import (
	"log"

	"github.com/moeez1234567/Job-descriptor/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the audit database when a DSN is configured. Returning nil
// is fine: the history service degrades to a no-op and the core pipeline
// keeps working with no persistence at all.
func Connect(dsn string) *gorm.DB {
	if dsn == "" {
		log.Println("⚠️ No DATABASE_URL set. Generation history disabled.")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("⚠️ Failed to connect to database, history disabled: %v", err)
		return nil
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.GenerationRecord{}); err != nil {
		log.Printf("⚠️ Migration failed, history disabled: %v", err)
		return nil
	}
	return db
}
