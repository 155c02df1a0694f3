package service

import (
	"errors"
	"fmt"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"gorm.io/gorm"
)

type RoadmapService struct {
	Roadmaps *repository.RoadmapRepository
	Projects *repository.ProjectRepository
	AI       ContentGenerator
}

func NewRoadmapService(roadmaps *repository.RoadmapRepository, projects *repository.ProjectRepository, ai ContentGenerator) *RoadmapService {
	return &RoadmapService{Roadmaps: roadmaps, Projects: projects, AI: ai}
}

func (s *RoadmapService) Generate(projectID, userID uint, contentInput, projectName string) (*model.Roadmap, error) {
	if _, err := s.Projects.FindOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if contentInput == "" {
		return nil, util.ErrContentInputRequired
	}

	raw, err := s.AI.GenerateJSON(roadmapPrompt(projectName, contentInput))
	if err != nil {
		return nil, err
	}

	milestones, ok := decodeItems[model.RoadmapMilestone](raw, "roadmap", "milestones")
	if !ok || len(milestones) == 0 {
		return nil, &util.ContentFormatError{Reason: "no valid milestone array found in response", Raw: raw}
	}
	for i, m := range milestones {
		if m.Milestone == "" || m.Description == "" {
			return nil, &util.ContentFormatError{
				Reason: fmt.Sprintf("milestone %d is missing a title or description", i+1),
				Raw:    raw,
			}
		}
	}

	roadmap := &model.Roadmap{ProjectID: projectID, UserID: userID}
	if err := roadmap.SetMilestones(milestones); err != nil {
		return nil, err
	}
	if err := s.Roadmaps.Upsert(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *RoadmapService) GetByProject(projectID, userID uint) (*model.Roadmap, error) {
	roadmap, err := s.Roadmaps.FindByProject(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArtifactNotFound
		}
		return nil, err
	}
	return roadmap, nil
}
