package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"gorm.io/gorm"
)

const minSlides = 8

type SlidesService struct {
	Slides   *repository.SlideRepository
	Projects *repository.ProjectRepository
	AI       ContentGenerator
}

func NewSlidesService(slides *repository.SlideRepository, projects *repository.ProjectRepository, ai ContentGenerator) *SlidesService {
	return &SlidesService{Slides: slides, Projects: projects, AI: ai}
}

func (s *SlidesService) Generate(projectID, userID uint, contentInput, projectName string) (*model.Slide, error) {
	if _, err := s.Projects.FindOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if contentInput == "" {
		return nil, util.ErrContentInputRequired
	}

	raw, err := s.AI.GenerateJSON(slidesPrompt(projectName, contentInput))
	if err != nil {
		return nil, err
	}

	items, ok := decodeItems[model.SlideItem](raw, "slides", "html")
	if !ok || emptySlideIndex(items) >= 0 {
		// Some responses carry plain HTML strings instead of objects.
		if alt, altOK := decodeHTMLStrings(raw); altOK {
			items, ok = alt, true
		}
	}
	if !ok {
		return nil, &util.ContentFormatError{Reason: "no valid slide array found in response", Raw: raw}
	}
	if len(items) < minSlides {
		return nil, &util.ContentFormatError{
			Reason: fmt.Sprintf("expected at least %d slides, but received %d", minSlides, len(items)),
			Raw:    raw,
		}
	}
	if i := emptySlideIndex(items); i >= 0 {
		return nil, &util.ContentFormatError{
			Reason: fmt.Sprintf("slide %d has no html content", i+1),
			Raw:    raw,
		}
	}

	slide := &model.Slide{ProjectID: projectID, UserID: userID}
	if err := slide.SetItems(items); err != nil {
		return nil, err
	}
	if err := s.Slides.Upsert(slide); err != nil {
		return nil, err
	}
	return slide, nil
}

// emptySlideIndex returns the index of the first slide without html content,
// or -1 when every slide has some.
func emptySlideIndex(items []model.SlideItem) int {
	for i, item := range items {
		if item.HTML == "" {
			return i
		}
	}
	return -1
}

// decodeHTMLStrings recovers the variant where the model returns plain HTML
// strings instead of {"html": ...} objects, either as a bare array or wrapped
// under a key.
func decodeHTMLStrings(raw string) ([]model.SlideItem, bool) {
	var strs []string
	if err := json.Unmarshal([]byte(raw), &strs); err != nil {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
			return nil, false
		}
		found := false
		for _, key := range []string{"slides", "html", "data", "content"} {
			inner, ok := wrapper[key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(inner, &strs); err == nil {
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	if len(strs) == 0 {
		return nil, false
	}
	items := make([]model.SlideItem, 0, len(strs))
	for _, h := range strs {
		items = append(items, model.SlideItem{HTML: h})
	}
	return items, true
}

func (s *SlidesService) GetByProject(projectID, userID uint) (*model.Slide, error) {
	slide, err := s.Slides.FindByProject(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArtifactNotFound
		}
		return nil, err
	}
	return slide, nil
}
