package repository

import (
	"time"

	"studymate_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QARepository struct {
	DB *gorm.DB
}

func NewQARepository(db *gorm.DB) *QARepository {
	return &QARepository{DB: db}
}

func (r *QARepository) FindByProject(projectID, userID uint) (*model.QA, error) {
	var qa model.QA
	err := r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).First(&qa).Error
	if err != nil {
		return nil, err
	}
	return &qa, nil
}

func (r *QARepository) Upsert(qa *model.QA) error {
	qa.GeneratedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "generated_at", "updated_at"}),
	}).Create(qa).Error
}

// PairCount returns the number of Q&A pairs stored for the project, zero when
// no set exists yet.
func (r *QARepository) PairCount(projectID, userID uint) int {
	qa, err := r.FindByProject(projectID, userID)
	if err != nil {
		return 0
	}
	pairs, err := qa.Pairs()
	if err != nil {
		return 0
	}
	return len(pairs)
}
