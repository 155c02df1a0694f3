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

func phasesJSON(t *testing.T, n int) string {
	t.Helper()

	phases := make([]model.StudyPlanPhase, 0, n)
	for i := 0; i < n; i++ {
		phases = append(phases, model.StudyPlanPhase{
			Phase:              fmt.Sprintf("Phase %d", i+1),
			Duration:           "1 week",
			Status:             model.PlanItemUpcoming,
			Objectives:         []string{"objective"},
			Topics:             []string{"topic"},
			Prerequisites:      []string{"none"},
			Resources:          []string{"book"},
			PracticeActivities: []string{"exercise"},
		})
	}
	raw, err := json.Marshal(phases)
	require.NoError(t, err)
	return string(raw)
}

func newStudyPlanService(db *gorm.DB, gen ContentGenerator) *StudyPlanService {
	return NewStudyPlanService(
		repository.NewStudyPlanRepository(db),
		repository.NewProjectRepository(db),
		gen,
	)
}

func TestStudyPlanGenerate(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{phasesJSON(t, 4)}}
	svc := newStudyPlanService(db, gen)

	plan, err := svc.Generate(project.ID, 1, "material", project.Title, "desc")
	require.NoError(t, err)

	phases, err := plan.Phases()
	require.NoError(t, err)
	require.Len(t, phases, 4)
}

func TestStudyPlanGenerateWrappedResponse(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{
		fmt.Sprintf(`{"studyPlan":%s}`, phasesJSON(t, 3)),
	}}
	svc := newStudyPlanService(db, gen)

	plan, err := svc.Generate(project.ID, 1, "material", project.Title, "desc")
	require.NoError(t, err)

	phases, err := plan.Phases()
	require.NoError(t, err)
	require.Len(t, phases, 3)
}

func TestStudyPlanGenerateRejectsIncompletePhase(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{
		`[{"phase":"Phase 1","duration":"1 week","status":"upcoming","objectives":["o"],"topics":["t"],"prerequisites":["p"],"resources":["r"],"practiceActivities":[]}]`,
	}}
	svc := newStudyPlanService(db, gen)

	_, err := svc.Generate(project.ID, 1, "material", project.Title, "desc")

	var formatErr *util.ContentFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Contains(t, formatErr.Reason, "practiceActivities")
}

func TestStudyPlanUpdateItemStatus(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{phasesJSON(t, 3)}}
	svc := newStudyPlanService(db, gen)

	plan, err := svc.Generate(project.ID, 1, "material", project.Title, "desc")
	require.NoError(t, err)

	updated, err := svc.UpdateItemStatus(plan.ID, 1, 1, "completed")
	require.NoError(t, err)

	phases, err := updated.Phases()
	require.NoError(t, err)
	require.Equal(t, model.PlanItemCompleted, phases[1].Status)
	require.Equal(t, model.PlanItemUpcoming, phases[0].Status)
}

func TestStudyPlanUpdateItemStatusRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)
	gen := &fakeGenerator{responses: []string{phasesJSON(t, 2)}}
	svc := newStudyPlanService(db, gen)

	plan, err := svc.Generate(project.ID, 1, "material", project.Title, "desc")
	require.NoError(t, err)

	_, err = svc.UpdateItemStatus(plan.ID, 1, 0, "done")
	require.ErrorIs(t, err, util.ErrInvalidItemStatus)

	_, err = svc.UpdateItemStatus(plan.ID, 1, 5, "completed")
	require.ErrorIs(t, err, util.ErrInvalidItemIndex)

	_, err = svc.UpdateItemStatus(plan.ID, 2, 0, "completed")
	require.ErrorIs(t, err, util.ErrStudyPlanNotFound)
}
