package model

import "time"

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	GoogleID  string    `gorm:"size:64;index" json:"-"`
	Password  string    `gorm:"size:100" json:"-"` // empty for OAuth-only accounts
	Avatar    string    `gorm:"size:255" json:"avatar"`
	LastLogin time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
