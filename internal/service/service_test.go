package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// createTestProject seeds a user-owned project and returns it.
func createTestProject(t *testing.T, db *gorm.DB, userID uint) *model.Project {
	t.Helper()

	repo := repository.NewProjectRepository(db)
	project := &model.Project{
		UserID: userID,
		Title:  "Linear Algebra",
		Status: model.ProjectNotStarted,
	}
	require.NoError(t, repo.Create(project))
	return project
}

// fakeGenerator replays scripted responses in order. Tests assert on the
// number of calls made.
type fakeGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeGenerator) next(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i >= len(f.responses) {
		return "", fmt.Errorf("unexpected generator call %d", i+1)
	}
	return f.responses[i], nil
}

func (f *fakeGenerator) GenerateJSON(prompt string) (string, error) { return f.next(prompt) }
func (f *fakeGenerator) GenerateText(prompt string) (string, error) { return f.next(prompt) }
