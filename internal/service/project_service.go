package service

import (
	"errors"
	"math"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"gorm.io/gorm"
)

type ProjectService struct {
	Projects   *repository.ProjectRepository
	Plans      *repository.StudyPlanRepository
	Flashcards *repository.FlashcardRepository
	QA         *repository.QARepository
}

func NewProjectService(projects *repository.ProjectRepository, plans *repository.StudyPlanRepository, flashcards *repository.FlashcardRepository, qa *repository.QARepository) *ProjectService {
	return &ProjectService{Projects: projects, Plans: plans, Flashcards: flashcards, QA: qa}
}

// ProjectDetail is a project together with the counts the dashboard shows.
type ProjectDetail struct {
	model.Project
	FlashcardsCount int  `json:"flashcardsCount"`
	QAPairsCount    int  `json:"qaPairsCount"`
	HasStudyPlan    bool `json:"hasStudyPlan"`
}

func (s *ProjectService) Create(userID uint, title, description string) (*model.Project, error) {
	if title == "" {
		return nil, util.ErrTitleRequired
	}
	project := &model.Project{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      model.ProjectNotStarted,
	}
	if err := s.Projects.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) List(userID uint) ([]model.Project, error) {
	return s.Projects.FindAllByUser(userID)
}

func (s *ProjectService) Detail(projectID, userID uint) (*ProjectDetail, error) {
	project, err := s.findOwned(projectID, userID)
	if err != nil {
		return nil, err
	}
	planCount, err := s.Plans.CountByProject(projectID)
	if err != nil {
		return nil, err
	}
	return &ProjectDetail{
		Project:         *project,
		FlashcardsCount: s.Flashcards.CardCount(projectID, userID),
		QAPairsCount:    s.QA.PairCount(projectID, userID),
		HasStudyPlan:    planCount > 0,
	}, nil
}

// Update changes title and description. An empty description keeps the
// previous one.
func (s *ProjectService) Update(projectID, userID uint, title, description string) (*model.Project, error) {
	if title == "" {
		return nil, util.ErrTitleRequired
	}
	project, err := s.findOwned(projectID, userID)
	if err != nil {
		return nil, err
	}
	project.Title = title
	if description != "" {
		project.Description = description
	}
	if err := s.Projects.Save(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(projectID, userID uint) error {
	project, err := s.findOwned(projectID, userID)
	if err != nil {
		return err
	}
	return s.Projects.DeleteCascade(project.ID)
}

// RecomputeProgress derives the study-plan percentage from completed phases,
// averages the four per-artifact percentages into the overall one and updates
// the project status accordingly. A project without a study plan cannot have
// its progress computed.
func (s *ProjectService) RecomputeProgress(projectID, userID uint) (*model.Project, error) {
	project, err := s.findOwned(projectID, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.Plans.FindByProject(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudyPlanNotFound
		}
		return nil, err
	}
	phases, err := plan.Phases()
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, phase := range phases {
		if phase.Status == model.PlanItemCompleted {
			completed++
		}
	}
	if len(phases) > 0 {
		project.Progress.StudyPlan = roundPercent(float64(completed) / float64(len(phases)))
	} else {
		project.Progress.StudyPlan = 0
	}

	sum := project.Progress.StudyPlan +
		project.Progress.Flashcards +
		project.Progress.QA +
		project.Progress.Slides
	project.Progress.Overall = int(math.Round(float64(sum) / 4))
	project.ClampProgress()

	switch {
	case project.Progress.Overall == 100:
		project.Status = model.ProjectCompleted
	case project.Progress.Overall > 0:
		project.Status = model.ProjectInProgress
	default:
		project.Status = model.ProjectNotStarted
	}

	if err := s.Projects.Save(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) findOwned(projectID, userID uint) (*model.Project, error) {
	project, err := s.Projects.FindOwned(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func roundPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}
