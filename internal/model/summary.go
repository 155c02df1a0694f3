package model

// Summary is an HTML study summary. Unlike the other artifacts it is not
// upserted: repeated generation inserts new rows and reads return the latest.
//
// swagger:model Summary
type Summary struct {
	BaseModel
	ProjectID uint   `gorm:"index;not null" json:"projectId"`
	UserID    uint   `gorm:"index;not null" json:"userId"`
	Content   string `gorm:"type:longtext;not null" json:"content"`
}

func (Summary) TableName() string {
	return "summaries"
}
