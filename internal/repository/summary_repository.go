package repository

import (
	"studymate_backend/internal/model"

	"gorm.io/gorm"
)

type SummaryRepository struct {
	DB *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{DB: db}
}

// Create inserts a new summary. Summaries are intentionally not upserted:
// each generation produces a fresh row.
func (r *SummaryRepository) Create(summary *model.Summary) error {
	return r.DB.Create(summary).Error
}

// FindLatestByProject returns the most recently generated summary.
func (r *SummaryRepository) FindLatestByProject(projectID, userID uint) (*model.Summary, error) {
	var summary model.Summary
	err := r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at DESC").First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
