package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// SlideItem is one presentation slide: a self-contained HTML fragment.
type SlideItem struct {
	HTML string `json:"html"`
}

// swagger:model Slide
type Slide struct {
	BaseModel
	ProjectID   uint           `gorm:"uniqueIndex:idx_slides_project_user;not null" json:"projectId"`
	UserID      uint           `gorm:"uniqueIndex:idx_slides_project_user;not null" json:"userId"`
	Content     datatypes.JSON `gorm:"type:json" json:"content"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

func (Slide) TableName() string {
	return "slides"
}

func (s *Slide) Items() ([]SlideItem, error) {
	var items []SlideItem
	if len(s.Content) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(s.Content, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Slide) SetItems(items []SlideItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.Content = raw
	return nil
}
