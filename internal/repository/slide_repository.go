package repository

import (
	"time"

	"studymate_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlideRepository struct {
	DB *gorm.DB
}

func NewSlideRepository(db *gorm.DB) *SlideRepository {
	return &SlideRepository{DB: db}
}

func (r *SlideRepository) FindByProject(projectID, userID uint) (*model.Slide, error) {
	var deck model.Slide
	err := r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).First(&deck).Error
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

func (r *SlideRepository) Upsert(deck *model.Slide) error {
	deck.GeneratedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "generated_at", "updated_at"}),
	}).Create(deck).Error
}
