package service

import (
	"encoding/json"
	"fmt"
	"testing"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func cardPairsJSON(t *testing.T, n int) string {
	t.Helper()

	pairs := make([]model.CardPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, model.CardPair{
			Question: fmt.Sprintf("question %d", i+1),
			Answer:   fmt.Sprintf("answer %d", i+1),
		})
	}
	raw, err := json.Marshal(pairs)
	require.NoError(t, err)
	return string(raw)
}

func newFlashcardService(db *gorm.DB, gen ContentGenerator) *FlashcardService {
	return NewFlashcardService(
		repository.NewFlashcardRepository(db),
		repository.NewProjectRepository(db),
		gen,
	)
}

func TestFlashcardGenerate(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{cardPairsJSON(t, 25)}}
	svc := newFlashcardService(db, gen)

	set, err := svc.Generate(project.ID, 1, "vectors and matrices", project.Title)
	require.NoError(t, err)

	cards, err := set.Cards()
	require.NoError(t, err)
	require.Len(t, cards, 25)
	require.Equal(t, 1, gen.calls)
}

func TestFlashcardGenerateReplacesPrevious(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{cardPairsJSON(t, 20), cardPairsJSON(t, 22)}}
	svc := newFlashcardService(db, gen)

	_, err := svc.Generate(project.ID, 1, "input", project.Title)
	require.NoError(t, err)
	_, err = svc.Generate(project.ID, 1, "input", project.Title)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Flashcard{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	set, err := svc.GetByProject(project.ID, 1)
	require.NoError(t, err)
	cards, err := set.Cards()
	require.NoError(t, err)
	require.Len(t, cards, 22)
}

func TestFlashcardGenerateTooFewCards(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{cardPairsJSON(t, 5)}}
	svc := newFlashcardService(db, gen)

	_, err := svc.Generate(project.ID, 1, "input", project.Title)

	var formatErr *util.ContentFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Contains(t, formatErr.Reason, "at least 20")
}

func TestFlashcardGenerateMissingAnswer(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{`[{"question":"q","answer":""}]`}}
	svc := newFlashcardService(db, gen)

	_, err := svc.Generate(project.ID, 1, "input", project.Title)

	var formatErr *util.ContentFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Contains(t, formatErr.Reason, "answer")
}

func TestFlashcardGenerateForeignProject(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{}
	svc := newFlashcardService(db, gen)

	_, err := svc.Generate(project.ID, 2, "input", project.Title)
	require.ErrorIs(t, err, util.ErrProjectNotFound)
	require.Zero(t, gen.calls)
}

func TestFlashcardGenerateEmptyInput(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{}
	svc := newFlashcardService(db, gen)

	_, err := svc.Generate(project.ID, 1, "", project.Title)
	require.ErrorIs(t, err, util.ErrContentInputRequired)
	require.Zero(t, gen.calls)
}

func TestFlashcardGetMissing(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	svc := newFlashcardService(db, &fakeGenerator{})

	_, err := svc.GetByProject(project.ID, 1)
	require.ErrorIs(t, err, util.ErrArtifactNotFound)
}
