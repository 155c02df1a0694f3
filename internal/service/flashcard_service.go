package service

import (
	"errors"
	"fmt"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"gorm.io/gorm"
)

// minCardPairs is the minimum number of flashcards and Q&A pairs a fresh
// generation must produce.
const minCardPairs = 20

type FlashcardService struct {
	Flashcards *repository.FlashcardRepository
	Projects   *repository.ProjectRepository
	AI         ContentGenerator
}

func NewFlashcardService(flashcards *repository.FlashcardRepository, projects *repository.ProjectRepository, ai ContentGenerator) *FlashcardService {
	return &FlashcardService{Flashcards: flashcards, Projects: projects, AI: ai}
}

func (s *FlashcardService) Generate(projectID, userID uint, contentInput, projectName string) (*model.Flashcard, error) {
	if _, err := s.Projects.FindOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if contentInput == "" {
		return nil, util.ErrContentInputRequired
	}

	raw, err := s.AI.GenerateJSON(flashcardPrompt(projectName, contentInput))
	if err != nil {
		return nil, err
	}

	cards, ok := decodeItems[model.CardPair](raw, "flashcards", "cards")
	if !ok {
		return nil, &util.ContentFormatError{Reason: "no valid flashcard array found in response", Raw: raw}
	}
	if err := validateCardPairs(cards, "flashcard"); err != nil {
		return nil, &util.ContentFormatError{Reason: err.Error(), Raw: raw}
	}
	if len(cards) < minCardPairs {
		return nil, &util.ContentFormatError{
			Reason: fmt.Sprintf("expected at least %d flashcards, but received %d", minCardPairs, len(cards)),
			Raw:    raw,
		}
	}

	set := &model.Flashcard{ProjectID: projectID, UserID: userID}
	if err := set.SetCards(cards); err != nil {
		return nil, err
	}
	if err := s.Flashcards.Upsert(set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *FlashcardService) GetByProject(projectID, userID uint) (*model.Flashcard, error) {
	set, err := s.Flashcards.FindByProject(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArtifactNotFound
		}
		return nil, err
	}
	return set, nil
}

func validateCardPairs(pairs []model.CardPair, kind string) error {
	if len(pairs) == 0 {
		return fmt.Errorf("generated content is empty")
	}
	for i, p := range pairs {
		if p.Question == "" {
			return fmt.Errorf("missing required field 'question' in %s %d", kind, i+1)
		}
		if p.Answer == "" {
			return fmt.Errorf("missing required field 'answer' in %s %d", kind, i+1)
		}
	}
	return nil
}
