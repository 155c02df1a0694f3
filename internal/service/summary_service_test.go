package service

import (
	"testing"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSummaryService(db *gorm.DB, gen ContentGenerator) *SummaryService {
	return NewSummaryService(
		repository.NewSummaryRepository(db),
		repository.NewProjectRepository(db),
		gen,
	)
}

func TestSummaryGenerateKeepsHistory(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{"<h1>First</h1>", "<h1>Second</h1>"}}
	svc := newSummaryService(db, gen)

	_, err := svc.Generate(project.ID, 1, "material", project.Title)
	require.NoError(t, err)
	_, err = svc.Generate(project.ID, 1, "material", project.Title)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Summary{}).Count(&count).Error)
	require.EqualValues(t, 2, count)

	latest, err := svc.GetLatest(project.ID, 1)
	require.NoError(t, err)
	require.Equal(t, "<h1>Second</h1>", latest.Content)
}

func TestSummaryGenerateRejectsEmptyResponse(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{""}}
	svc := newSummaryService(db, gen)

	_, err := svc.Generate(project.ID, 1, "material", project.Title)

	var formatErr *util.ContentFormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestSummaryGetLatestMissing(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	svc := newSummaryService(db, &fakeGenerator{})

	_, err := svc.GetLatest(project.ID, 1)
	require.ErrorIs(t, err, util.ErrArtifactNotFound)
}
