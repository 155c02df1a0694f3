package service

import (
	"errors"
	"fmt"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"gorm.io/gorm"
)

// qaTopUpBudget bounds how many supplementary prompts may be issued when the
// first response holds fewer than minCardPairs pairs.
const qaTopUpBudget = 2

type QAService struct {
	QA       *repository.QARepository
	Projects *repository.ProjectRepository
	AI       ContentGenerator
}

func NewQAService(qa *repository.QARepository, projects *repository.ProjectRepository, ai ContentGenerator) *QAService {
	return &QAService{QA: qa, Projects: projects, AI: ai}
}

// Generate produces at least minCardPairs Q&A pairs. Short responses trigger
// up to qaTopUpBudget supplementary prompts whose results are merged; if the
// set is still short after the budget is spent, generation fails with the
// last raw response attached.
func (s *QAService) Generate(projectID, userID uint, contentInput, projectName string) (*model.QA, error) {
	if _, err := s.Projects.FindOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if contentInput == "" {
		return nil, util.ErrContentInputRequired
	}

	raw, err := s.AI.GenerateJSON(qaPrompt(projectName, contentInput))
	if err != nil {
		return nil, err
	}

	pairs, ok := decodeItems[model.CardPair](raw, "qa", "questions", "pairs")
	if !ok {
		return nil, &util.ContentFormatError{Reason: "no valid Q&A array found in response", Raw: raw}
	}
	if err := validateCardPairs(pairs, "Q&A pair"); err != nil {
		return nil, &util.ContentFormatError{Reason: err.Error(), Raw: raw}
	}

	for retry := 0; len(pairs) < minCardPairs && retry < qaTopUpBudget; retry++ {
		missing := minCardPairs - len(pairs)
		more, topUpErr := s.AI.GenerateJSON(qaTopUpPrompt(projectName, contentInput, missing))
		if topUpErr != nil {
			return nil, topUpErr
		}
		raw = more

		extra, ok := decodeItems[model.CardPair](more, "qa", "questions", "pairs")
		if !ok {
			continue
		}
		if err := validateCardPairs(extra, "Q&A pair"); err != nil {
			continue
		}
		pairs = append(pairs, extra...)
	}

	if len(pairs) < minCardPairs {
		return nil, &util.ContentFormatError{
			Reason: fmt.Sprintf("expected at least %d Q&A pairs, but received %d", minCardPairs, len(pairs)),
			Raw:    raw,
		}
	}

	qa := &model.QA{ProjectID: projectID, UserID: userID}
	if err := qa.SetPairs(pairs); err != nil {
		return nil, err
	}
	if err := s.QA.Upsert(qa); err != nil {
		return nil, err
	}
	return qa, nil
}

func (s *QAService) GetByProject(projectID, userID uint) (*model.QA, error) {
	qa, err := s.QA.FindByProject(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArtifactNotFound
		}
		return nil, err
	}
	return qa, nil
}
