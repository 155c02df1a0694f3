package controller

import (
	"errors"

	"studymate_backend/internal/service"
	"studymate_backend/internal/util"
	"studymate_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// GenerateController drives the AI generation endpoints.
type GenerateController struct {
	StudyPlans *service.StudyPlanService
	Flashcards *service.FlashcardService
	QA         *service.QAService
	Roadmaps   *service.RoadmapService
	Slides     *service.SlidesService
	Summaries  *service.SummaryService
}

func NewGenerateController(
	studyPlans *service.StudyPlanService,
	flashcards *service.FlashcardService,
	qa *service.QAService,
	roadmaps *service.RoadmapService,
	slides *service.SlidesService,
	summaries *service.SummaryService,
) *GenerateController {
	return &GenerateController{
		StudyPlans: studyPlans,
		Flashcards: flashcards,
		QA:         qa,
		Roadmaps:   roadmaps,
		Slides:     slides,
		Summaries:  summaries,
	}
}

// swagger:model GenerateRequest
type GenerateRequest struct {
	ProjectID          uint   `json:"projectId" binding:"required"`
	ContentInput       string `json:"contentInput"`
	ProjectName        string `json:"projectName"`
	ProjectDescription string `json:"projectDescription"`
}

// generate handles the shared pipeline: bind, run, record, map errors.
func (c *GenerateController) generate(ctx *gin.Context, artifact string, run func(userID uint, req GenerateRequest) (interface{}, error)) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "projectId is required")
		return
	}

	result, err := run(userID, req)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues(artifact, "failure").Inc()

		var formatErr *util.ContentFormatError
		switch {
		case errors.Is(err, util.ErrProjectNotFound):
			util.NotFound(ctx, "project not found")
		case errors.Is(err, util.ErrContentInputRequired):
			util.BadRequest(ctx, "contentInput is required")
		case errors.As(err, &formatErr):
			util.ContentFormat(ctx, formatErr)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.GenerationCounter.WithLabelValues(artifact, "success").Inc()
	util.Success(ctx, result)
}

// StudyPlan godoc
// @Summary Generate a study plan for a project
// @Tags generate
// @Accept  json
// @Produce  json
// @Param   body body GenerateRequest true "generation payload"
// @Success 200 {object} util.Response{data=model.StudyPlan}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/generate/study-plan [post]
func (c *GenerateController) StudyPlan(ctx *gin.Context) {
	c.generate(ctx, "study_plan", func(userID uint, req GenerateRequest) (interface{}, error) {
		return c.StudyPlans.Generate(req.ProjectID, userID, req.ContentInput, req.ProjectName, req.ProjectDescription)
	})
}

// FlashcardsGen godoc
// @Summary Generate flashcards for a project
// @Tags generate
// @Accept  json
// @Produce  json
// @Param   body body GenerateRequest true "generation payload"
// @Success 200 {object} util.Response{data=model.Flashcard}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/generate/flashcards [post]
func (c *GenerateController) FlashcardsGen(ctx *gin.Context) {
	c.generate(ctx, "flashcards", func(userID uint, req GenerateRequest) (interface{}, error) {
		return c.Flashcards.Generate(req.ProjectID, userID, req.ContentInput, req.ProjectName)
	})
}

// QAGen godoc
// @Summary Generate Q&A pairs for a project
// @Tags generate
// @Accept  json
// @Produce  json
// @Param   body body GenerateRequest true "generation payload"
// @Success 200 {object} util.Response{data=model.QA}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/generate/qa [post]
func (c *GenerateController) QAGen(ctx *gin.Context) {
	c.generate(ctx, "qa", func(userID uint, req GenerateRequest) (interface{}, error) {
		return c.QA.Generate(req.ProjectID, userID, req.ContentInput, req.ProjectName)
	})
}

// Roadmap godoc
// @Summary Generate a learning roadmap for a project
// @Tags generate
// @Accept  json
// @Produce  json
// @Param   body body GenerateRequest true "generation payload"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/generate/roadmap [post]
func (c *GenerateController) Roadmap(ctx *gin.Context) {
	c.generate(ctx, "roadmap", func(userID uint, req GenerateRequest) (interface{}, error) {
		return c.Roadmaps.Generate(req.ProjectID, userID, req.ContentInput, req.ProjectName)
	})
}

// SlidesGen godoc
// @Summary Generate presentation slides for a project
// @Tags generate
// @Accept  json
// @Produce  json
// @Param   body body GenerateRequest true "generation payload"
// @Success 200 {object} util.Response{data=model.Slide}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/generate/slides [post]
func (c *GenerateController) SlidesGen(ctx *gin.Context) {
	c.generate(ctx, "slides", func(userID uint, req GenerateRequest) (interface{}, error) {
		return c.Slides.Generate(req.ProjectID, userID, req.ContentInput, req.ProjectName)
	})
}

// Summary godoc
// @Summary Generate a study summary for a project
// @Tags generate
// @Accept  json
// @Produce  json
// @Param   body body GenerateRequest true "generation payload"
// @Success 200 {object} util.Response{data=model.Summary}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/generate/summary [post]
func (c *GenerateController) Summary(ctx *gin.Context) {
	c.generate(ctx, "summary", func(userID uint, req GenerateRequest) (interface{}, error) {
		return c.Summaries.Generate(req.ProjectID, userID, req.ContentInput, req.ProjectName)
	})
}
