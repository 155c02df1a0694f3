package repository

import (
	"time"

	"studymate_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) FindByProject(projectID, userID uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).First(&roadmap).Error
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (r *RoadmapRepository) Upsert(roadmap *model.Roadmap) error {
	roadmap.GeneratedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "generated_at", "updated_at"}),
	}).Create(roadmap).Error
}
