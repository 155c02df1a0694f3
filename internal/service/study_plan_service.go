package service

import (
	"errors"
	"fmt"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"gorm.io/gorm"
)

type StudyPlanService struct {
	Plans    *repository.StudyPlanRepository
	Projects *repository.ProjectRepository
	AI       ContentGenerator
}

func NewStudyPlanService(plans *repository.StudyPlanRepository, projects *repository.ProjectRepository, ai ContentGenerator) *StudyPlanService {
	return &StudyPlanService{Plans: plans, Projects: projects, AI: ai}
}

// Generate builds a study plan from the material and upserts it for the
// project. Ownership and input checks run before any LLM call.
func (s *StudyPlanService) Generate(projectID, userID uint, contentInput, projectName, projectDescription string) (*model.StudyPlan, error) {
	if _, err := s.Projects.FindOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if contentInput == "" {
		return nil, util.ErrContentInputRequired
	}

	raw, err := s.AI.GenerateJSON(studyPlanPrompt(projectName, projectDescription, contentInput))
	if err != nil {
		return nil, err
	}

	phases, ok := decodeItems[model.StudyPlanPhase](raw, "studyPlan", "phases", "plan")
	if !ok {
		return nil, &util.ContentFormatError{Reason: "no valid JSON array found in response", Raw: raw}
	}
	if err := validatePhases(phases); err != nil {
		return nil, &util.ContentFormatError{Reason: err.Error(), Raw: raw}
	}

	plan := &model.StudyPlan{ProjectID: projectID, UserID: userID}
	if err := plan.SetPhases(phases); err != nil {
		return nil, err
	}
	if err := s.Plans.Upsert(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetByProject returns the plan for a user-owned project.
func (s *StudyPlanService) GetByProject(projectID, userID uint) (*model.StudyPlan, error) {
	plan, err := s.Plans.FindByProject(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudyPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// UpdateItemStatus mutates the status of one phase of an owned plan.
func (s *StudyPlanService) UpdateItemStatus(planID, userID uint, itemIndex int, status string) (*model.StudyPlan, error) {
	plan, err := s.Plans.FindOwned(planID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudyPlanNotFound
		}
		return nil, err
	}

	if !model.ValidPlanItemStatus(status) {
		return nil, util.ErrInvalidItemStatus
	}

	phases, err := plan.Phases()
	if err != nil {
		return nil, err
	}
	if itemIndex < 0 || itemIndex >= len(phases) {
		return nil, util.ErrInvalidItemIndex
	}

	phases[itemIndex].Status = model.PlanItemStatus(status)
	if err := plan.SetPhases(phases); err != nil {
		return nil, err
	}
	if err := s.Plans.Save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func validatePhases(phases []model.StudyPlanPhase) error {
	if len(phases) == 0 {
		return fmt.Errorf("generated content is empty")
	}
	for i, p := range phases {
		switch {
		case p.Phase == "":
			return fmt.Errorf("missing required field 'phase' in phase %d", i+1)
		case p.Duration == "":
			return fmt.Errorf("missing required field 'duration' in phase %d", i+1)
		case p.Status == "":
			return fmt.Errorf("missing required field 'status' in phase %d", i+1)
		case len(p.Objectives) == 0:
			return fmt.Errorf("missing required field 'objectives' in phase %d", i+1)
		case len(p.Topics) == 0:
			return fmt.Errorf("missing required field 'topics' in phase %d", i+1)
		case len(p.Prerequisites) == 0:
			return fmt.Errorf("missing required field 'prerequisites' in phase %d", i+1)
		case len(p.Resources) == 0:
			return fmt.Errorf("missing required field 'resources' in phase %d", i+1)
		case len(p.PracticeActivities) == 0:
			return fmt.Errorf("missing required field 'practiceActivities' in phase %d", i+1)
		}
	}
	return nil
}
