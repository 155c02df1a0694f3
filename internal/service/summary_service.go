package service

import (
	"errors"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"gorm.io/gorm"
)

type SummaryService struct {
	Summaries *repository.SummaryRepository
	Projects  *repository.ProjectRepository
	AI        ContentGenerator
}

func NewSummaryService(summaries *repository.SummaryRepository, projects *repository.ProjectRepository, ai ContentGenerator) *SummaryService {
	return &SummaryService{Summaries: summaries, Projects: projects, AI: ai}
}

// Generate produces an HTML summary and stores it as a new row. Earlier
// summaries for the project are kept; reads return the latest one.
func (s *SummaryService) Generate(projectID, userID uint, contentInput, projectName string) (*model.Summary, error) {
	if _, err := s.Projects.FindOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if contentInput == "" {
		return nil, util.ErrContentInputRequired
	}

	text, err := s.AI.GenerateText(summaryPrompt(projectName, contentInput))
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, &util.ContentFormatError{Reason: "empty summary in response", Raw: text}
	}

	summary := &model.Summary{ProjectID: projectID, UserID: userID, Content: text}
	if err := s.Summaries.Create(summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *SummaryService) GetLatest(projectID, userID uint) (*model.Summary, error) {
	summary, err := s.Summaries.FindLatestByProject(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArtifactNotFound
		}
		return nil, err
	}
	return summary, nil
}
