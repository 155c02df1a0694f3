package repository

import (
	"time"

	"studymate_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	project.LastActivity = time.Now()
	return r.DB.Create(project).Error
}

// FindOwned returns the project only when it belongs to userID. Absent and
// foreign-owned projects are indistinguishable to the caller.
func (r *ProjectRepository) FindOwned(projectID, userID uint) (*model.Project, error) {
	var project model.Project
	err := r.DB.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) FindAllByUser(userID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.Where("user_id = ?", userID).Order("last_activity DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Save(project *model.Project) error {
	project.LastActivity = time.Now()
	return r.DB.Save(project).Error
}

// DeleteCascade removes the project and every artifact generated for it in
// one transaction.
func (r *ProjectRepository) DeleteCascade(projectID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.StudyPlan{},
			&model.Flashcard{},
			&model.QA{},
			&model.Roadmap{},
			&model.Slide{},
			&model.Summary{},
		} {
			if err := tx.Unscoped().Where("project_id = ?", projectID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&model.Project{}, projectID).Error
	})
}
