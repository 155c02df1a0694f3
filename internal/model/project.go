package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

// UploadedFile is one entry of a project's uploadedFiles JSON column.
type UploadedFile struct {
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	UploadDate time.Time `json:"uploadDate"`
}

// ProjectProgress holds per-artifact completion percentages, each in [0,100].
type ProjectProgress struct {
	Overall    int `gorm:"default:0" json:"overall"`
	StudyPlan  int `gorm:"default:0" json:"studyPlan"`
	Flashcards int `gorm:"default:0" json:"flashcards"`
	QA         int `gorm:"default:0" json:"qa"`
	Slides     int `gorm:"default:0" json:"slides"`
}

// swagger:model Project
type Project struct {
	BaseModel
	UserID               uint            `gorm:"index;not null" json:"userId"`
	Title                string          `gorm:"size:255;not null" json:"title"`
	Description          string          `gorm:"type:text" json:"description"`
	UploadedFiles        datatypes.JSON  `gorm:"type:json" json:"uploadedFiles"`
	ExtractedTextContent string          `gorm:"type:longtext" json:"extractedTextContent"`
	Progress             ProjectProgress `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`
	Status               ProjectStatus   `gorm:"size:20;default:'not_started'" json:"status"`
	LastActivity         time.Time       `json:"lastActivity"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) Files() ([]UploadedFile, error) {
	if len(p.UploadedFiles) == 0 {
		return []UploadedFile{}, nil
	}
	var files []UploadedFile
	if err := json.Unmarshal(p.UploadedFiles, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (p *Project) AppendFile(f UploadedFile) error {
	files, err := p.Files()
	if err != nil {
		return err
	}
	files = append(files, f)
	raw, err := json.Marshal(files)
	if err != nil {
		return err
	}
	p.UploadedFiles = raw
	return nil
}

// ClampProgress keeps every percentage inside [0,100].
func (p *Project) ClampProgress() {
	for _, v := range []*int{
		&p.Progress.Overall,
		&p.Progress.StudyPlan,
		&p.Progress.Flashcards,
		&p.Progress.QA,
		&p.Progress.Slides,
	} {
		if *v < 0 {
			*v = 0
		}
		if *v > 100 {
			*v = 100
		}
	}
}
