package repository

import (
	"time"

	"studymate_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlashcardRepository struct {
	DB *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) *FlashcardRepository {
	return &FlashcardRepository{DB: db}
}

func (r *FlashcardRepository) FindByProject(projectID, userID uint) (*model.Flashcard, error) {
	var set model.Flashcard
	err := r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *FlashcardRepository) Upsert(set *model.Flashcard) error {
	set.GeneratedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "generated_at", "updated_at"}),
	}).Create(set).Error
}

// CardCount returns the number of flashcards stored for the project, zero
// when no set exists yet.
func (r *FlashcardRepository) CardCount(projectID, userID uint) int {
	set, err := r.FindByProject(projectID, userID)
	if err != nil {
		return 0
	}
	cards, err := set.Cards()
	if err != nil {
		return 0
	}
	return len(cards)
}
