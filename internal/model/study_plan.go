package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type PlanItemStatus string

const (
	PlanItemCompleted PlanItemStatus = "completed"
	PlanItemCurrent   PlanItemStatus = "current"
	PlanItemUpcoming  PlanItemStatus = "upcoming"
)

// ValidPlanItemStatus reports whether s is one of the three allowed values.
func ValidPlanItemStatus(s string) bool {
	switch PlanItemStatus(s) {
	case PlanItemCompleted, PlanItemCurrent, PlanItemUpcoming:
		return true
	}
	return false
}

// StudyPlanPhase is one phase of a generated study plan.
type StudyPlanPhase struct {
	Phase              string         `json:"phase"`
	Duration           string         `json:"duration"`
	Status             PlanItemStatus `json:"status"`
	Objectives         []string       `json:"objectives"`
	Topics             []string       `json:"topics"`
	Prerequisites      []string       `json:"prerequisites"`
	Resources          []string       `json:"resources"`
	PracticeActivities []string       `json:"practiceActivities"`
}

// swagger:model StudyPlan
type StudyPlan struct {
	BaseModel
	ProjectID   uint           `gorm:"uniqueIndex:idx_study_plans_project_user;not null" json:"projectId"`
	UserID      uint           `gorm:"uniqueIndex:idx_study_plans_project_user;not null" json:"userId"`
	Content     datatypes.JSON `gorm:"type:json" json:"content"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

func (s *StudyPlan) Phases() ([]StudyPlanPhase, error) {
	var phases []StudyPlanPhase
	if len(s.Content) == 0 {
		return phases, nil
	}
	if err := json.Unmarshal(s.Content, &phases); err != nil {
		return nil, err
	}
	return phases, nil
}

func (s *StudyPlan) SetPhases(phases []StudyPlanPhase) error {
	raw, err := json.Marshal(phases)
	if err != nil {
		return err
	}
	s.Content = raw
	return nil
}
