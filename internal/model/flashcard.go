package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// CardPair is a single question/answer item, shared by flashcards and Q&A.
type CardPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// swagger:model Flashcard
type Flashcard struct {
	BaseModel
	ProjectID   uint           `gorm:"uniqueIndex:idx_flashcards_project_user;not null" json:"projectId"`
	UserID      uint           `gorm:"uniqueIndex:idx_flashcards_project_user;not null" json:"userId"`
	Content     datatypes.JSON `gorm:"type:json" json:"content"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

func (f *Flashcard) Cards() ([]CardPair, error) {
	var cards []CardPair
	if len(f.Content) == 0 {
		return cards, nil
	}
	if err := json.Unmarshal(f.Content, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (f *Flashcard) SetCards(cards []CardPair) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	f.Content = raw
	return nil
}
