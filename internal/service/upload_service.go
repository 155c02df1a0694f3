package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"github.com/ledongthuc/pdf"
	"gorm.io/gorm"
)

type UploadService struct {
	Projects *repository.ProjectRepository
	Storage  *StorageService
}

func NewUploadService(projects *repository.ProjectRepository, storage *StorageService) *UploadService {
	return &UploadService{Projects: projects, Storage: storage}
}

// IngestPDF extracts the text of an uploaded PDF, stores the file and appends
// both the file record and the text to the project.
func (s *UploadService) IngestPDF(ctx context.Context, projectID, userID uint, header *multipart.FileHeader) (*model.Project, error) {
	project, err := s.Projects.FindOwned(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	text, err := extractPDFText(tmp.Name())
	if err != nil {
		return nil, &util.ExtractionError{Err: err}
	}

	originalName := filepath.Base(header.Filename)
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName)
	url, err := s.Storage.UploadFile(ctx, storedName, tmp.Name(), "application/pdf")
	if err != nil {
		return nil, err
	}

	if err := project.AppendFile(model.UploadedFile{
		FileName:   originalName,
		FilePath:   url,
		UploadDate: time.Now(),
	}); err != nil {
		return nil, err
	}
	project.ExtractedTextContent += fmt.Sprintf("\n\n--- Content from %s ---\n%s", originalName, text)

	if err := s.Projects.Save(project); err != nil {
		return nil, err
	}
	return project, nil
}

// extractPDFText collects the plain text of every readable page. Pages the
// parser chokes on are skipped rather than failing the whole document.
func extractPDFText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(strings.ToValidUTF8(sb.String(), ""))
	if text == "" {
		return "", fmt.Errorf("no text extracted from PDF")
	}
	return text, nil
}
