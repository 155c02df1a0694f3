package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// swagger:model QA
type QA struct {
	BaseModel
	ProjectID   uint           `gorm:"uniqueIndex:idx_qa_project_user;not null" json:"projectId"`
	UserID      uint           `gorm:"uniqueIndex:idx_qa_project_user;not null" json:"userId"`
	Content     datatypes.JSON `gorm:"type:json" json:"content"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

func (QA) TableName() string {
	return "qa_sets"
}

func (q *QA) Pairs() ([]CardPair, error) {
	var pairs []CardPair
	if len(q.Content) == 0 {
		return pairs, nil
	}
	if err := json.Unmarshal(q.Content, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

func (q *QA) SetPairs(pairs []CardPair) error {
	raw, err := json.Marshal(pairs)
	if err != nil {
		return err
	}
	q.Content = raw
	return nil
}
