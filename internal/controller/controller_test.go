package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"studymate_backend/internal/config"
	"studymate_backend/internal/middleware"
	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/service"
	"studymate_backend/internal/util"
	"studymate_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "controller-test-secret"

var testDBCounter int64

type scriptedGenerator struct {
	responses []string
	calls     int
}

func (g *scriptedGenerator) next() (string, error) {
	i := g.calls
	g.calls++
	if i >= len(g.responses) {
		return "", fmt.Errorf("unexpected generator call %d", i+1)
	}
	return g.responses[i], nil
}

func (g *scriptedGenerator) GenerateJSON(string) (string, error) { return g.next() }
func (g *scriptedGenerator) GenerateText(string) (string, error) { return g.next() }

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	gen    *scriptedGenerator
}

// newTestEnv wires the real services over an in-memory database behind the
// production route layout.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:controllertest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.ExpireTime = time.Hour

	projects := repository.NewProjectRepository(db)
	plans := repository.NewStudyPlanRepository(db)
	flashcards := repository.NewFlashcardRepository(db)
	qa := repository.NewQARepository(db)
	roadmaps := repository.NewRoadmapRepository(db)
	slides := repository.NewSlideRepository(db)
	summaries := repository.NewSummaryRepository(db)

	gen := &scriptedGenerator{}

	projectSvc := service.NewProjectService(projects, plans, flashcards, qa)
	planSvc := service.NewStudyPlanService(plans, projects, gen)
	flashcardSvc := service.NewFlashcardService(flashcards, projects, gen)
	qaSvc := service.NewQAService(qa, projects, gen)
	roadmapSvc := service.NewRoadmapService(roadmaps, projects, gen)
	slidesSvc := service.NewSlidesService(slides, projects, gen)
	summarySvc := service.NewSummaryService(summaries, projects, gen)
	chatSvc := service.NewChatService(projects, gen, nil)
	storageSvc := &service.StorageService{Provider: &service.LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}
	uploadSvc := service.NewUploadService(projects, storageSvc)

	projectCtl := NewProjectController(projectSvc)
	artifactCtl := NewArtifactController(planSvc, flashcardSvc, qaSvc, roadmapSvc, slidesSvc, summarySvc)
	generateCtl := NewGenerateController(planSvc, flashcardSvc, qaSvc, roadmapSvc, slidesSvc, summarySvc)
	chatCtl := NewChatController(chatSvc)
	uploadCtl := NewUploadController(uploadSvc)
	healthCtl := NewHealthController(db)

	router := gin.New()
	router.GET("/api/health", healthCtl.HealthCheck)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/projects", projectCtl.Create)
		authGroup.GET("/projects", projectCtl.List)
		authGroup.GET("/projects/:projectId", projectCtl.Get)
		authGroup.PUT("/projects/:projectId", projectCtl.Update)
		authGroup.DELETE("/projects/:projectId", projectCtl.Delete)
		authGroup.PUT("/projects/:projectId/progress", projectCtl.UpdateProgress)
		authGroup.GET("/projects/:projectId/flashcards", artifactCtl.GetFlashcards)
		authGroup.GET("/projects/:projectId/study-plan", artifactCtl.GetStudyPlan)
		authGroup.POST("/generate/flashcards", generateCtl.FlashcardsGen)
		authGroup.POST("/generate/study-plan", generateCtl.StudyPlan)
		authGroup.PUT("/study-plans/:studyPlanId/items/:itemIndex/status", artifactCtl.UpdateStudyPlanItemStatus)
		authGroup.POST("/chat/:projectId", chatCtl.Chat)
		authGroup.POST("/upload/:projectId", uploadCtl.Upload)
	}

	return &testEnv{router: router, db: db, gen: gen}
}

func (e *testEnv) token(t *testing.T, userID uint) string {
	t.Helper()

	user := &model.User{Email: fmt.Sprintf("user%d@example.com", userID)}
	user.ID = userID
	token, err := util.GenerateJWT(user, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedProject(t *testing.T, userID uint) *model.Project {
	t.Helper()

	project := &model.Project{UserID: userID, Title: "Biology", Status: model.ProjectNotStarted}
	require.NoError(t, repository.NewProjectRepository(e.db).Create(project))
	return project
}

func manyPairsJSON(t *testing.T, n int) string {
	t.Helper()

	pairs := make([]model.CardPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, model.CardPair{
			Question: fmt.Sprintf("q%d", i+1),
			Answer:   fmt.Sprintf("a%d", i+1),
		})
	}
	raw, err := json.Marshal(pairs)
	require.NoError(t, err)
	return string(raw)
}

func TestCreateProjectReturns201(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	w := env.request(t, http.MethodPost, "/api/projects", token, gin.H{
		"title":       "Biology",
		"description": "cells",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data model.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Biology", resp.Data.Title)
	require.Equal(t, model.ProjectNotStarted, resp.Data.Status)
}

func TestCreateProjectMissingTitle(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	w := env.request(t, http.MethodPost, "/api/projects", token, gin.H{"description": "no title"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectRoutesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/projects", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetForeignProjectIs404(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), env.token(t, 2), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// absent projects look the same
	w = env.request(t, http.MethodGet, "/api/projects/99999", env.token(t, 2), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateFlashcardsFlow(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)
	token := env.token(t, 1)
	env.gen.responses = []string{manyPairsJSON(t, 20)}

	w := env.request(t, http.MethodPost, "/api/generate/flashcards", token, gin.H{
		"projectId":    project.ID,
		"contentInput": "mitochondria",
		"projectName":  project.Title,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/projects/%d/flashcards", project.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateEmptyContentInputIs400(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)

	w := env.request(t, http.MethodPost, "/api/generate/flashcards", env.token(t, 1), gin.H{
		"projectId":   project.ID,
		"projectName": project.Title,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, env.gen.calls)
}

func TestGenerateMalformedResponseCarriesRaw(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)
	env.gen.responses = []string{"sorry, no JSON today"}

	w := env.request(t, http.MethodPost, "/api/generate/flashcards", env.token(t, 1), gin.H{
		"projectId":    project.ID,
		"contentInput": "input",
		"projectName":  project.Title,
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "sorry, no JSON today", resp.RawResponse)
}

func TestUpdateStudyPlanItemStatus(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)
	token := env.token(t, 1)

	plan := &model.StudyPlan{ProjectID: project.ID, UserID: 1}
	require.NoError(t, plan.SetPhases([]model.StudyPlanPhase{
		{Phase: "1", Status: model.PlanItemUpcoming},
		{Phase: "2", Status: model.PlanItemUpcoming},
	}))
	require.NoError(t, repository.NewStudyPlanRepository(env.db).Upsert(plan))

	path := fmt.Sprintf("/api/study-plans/%d/items/0/status", plan.ID)
	w := env.request(t, http.MethodPut, path, token, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPut, path, token, gin.H{"status": "finished"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPut, fmt.Sprintf("/api/study-plans/%d/items/9/status", plan.ID), token, gin.H{"status": "completed"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRequiresMessage(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/chat/%d", project.ID), env.token(t, 1), gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatReturnsReplyWithTimestamp(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)
	env.gen.responses = []string{"Mitochondria produce ATP."}

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/chat/%d", project.ID), env.token(t, 1), gin.H{
		"message": "What do mitochondria do?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Reply     string    `json:"reply"`
			Timestamp time.Time `json:"timestamp"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Mitochondria produce ATP.", resp.Data.Reply)
	require.WithinDuration(t, time.Now(), resp.Data.Timestamp, time.Minute)
}

func TestUploadWithoutFile(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/upload/%d", project.ID), env.token(t, 1), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsNonPDF(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("pdfFile", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("just some plain text"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/upload/%d", project.ID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.token(t, 1))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// A file that sniffs as PDF but cannot be parsed must report the extraction
// failure in the response body, not a generic server error.
func TestUploadCorruptPDFReportsExtractionError(t *testing.T) {
	env := newTestEnv(t)
	project := env.seedProject(t, 1)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("pdfFile", "broken.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4\nnot actually a pdf body"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/upload/%d", project.ID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.token(t, 1))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Message, "pdf")
	require.NotEqual(t, "Internal server error", resp.Message)
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
