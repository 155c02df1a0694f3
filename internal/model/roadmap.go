package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// RoadmapMilestone is one step of a generated learning roadmap.
type RoadmapMilestone struct {
	Milestone   string `json:"milestone"`
	Description string `json:"description"`
	ETA         string `json:"eta"`
}

// swagger:model Roadmap
type Roadmap struct {
	BaseModel
	ProjectID   uint           `gorm:"uniqueIndex:idx_roadmaps_project_user;not null" json:"projectId"`
	UserID      uint           `gorm:"uniqueIndex:idx_roadmaps_project_user;not null" json:"userId"`
	Content     datatypes.JSON `gorm:"type:json" json:"content"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

func (r *Roadmap) Milestones() ([]RoadmapMilestone, error) {
	var items []RoadmapMilestone
	if len(r.Content) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(r.Content, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Roadmap) SetMilestones(items []RoadmapMilestone) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.Content = raw
	return nil
}
