package repository

import (
	"time"

	"studymate_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudyPlanRepository struct {
	DB *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) *StudyPlanRepository {
	return &StudyPlanRepository{DB: db}
}

func (r *StudyPlanRepository) FindByProject(projectID, userID uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindOwned looks a plan up by its own id, scoped to the owning user.
func (r *StudyPlanRepository) FindOwned(planID, userID uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Upsert creates or replaces the plan keyed by (project, user).
func (r *StudyPlanRepository) Upsert(plan *model.StudyPlan) error {
	plan.GeneratedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "generated_at", "updated_at"}),
	}).Create(plan).Error
}

func (r *StudyPlanRepository) Save(plan *model.StudyPlan) error {
	return r.DB.Save(plan).Error
}

func (r *StudyPlanRepository) CountByProject(projectID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudyPlan{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
