package services

import (
	"log"

	"github.com/moeez1234567/Job-descriptor/internal/models"
	"gorm.io/gorm"
)

// HistoryService records pipeline runs for auditing. It stores request
// metadata and outcomes only - generated descriptions are never persisted.
// With no database configured every method is a no-op.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// Record writes one audit row. Failures are logged and swallowed: auditing
// must never break a response.
func (s *HistoryService) Record(rec *models.GenerationRecord) {
	if s == nil || s.DB == nil {
		return
	}
	if err := s.DB.Create(rec).Error; err != nil {
		log.Printf("⚠️ Failed to record generation history: %v", err)
	}
}

// Recent returns the newest audit rows, capped at limit.
func (s *HistoryService) Recent(limit int) ([]models.GenerationRecord, error) {
	if s == nil || s.DB == nil {
		return []models.GenerationRecord{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var records []models.GenerationRecord
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}
