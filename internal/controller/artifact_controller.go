package controller

import (
	"errors"
	"strconv"

	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ArtifactController serves the generated study artifacts of a project.
type ArtifactController struct {
	StudyPlans *service.StudyPlanService
	Flashcards *service.FlashcardService
	QA         *service.QAService
	Roadmaps   *service.RoadmapService
	Slides     *service.SlidesService
	Summaries  *service.SummaryService
}

func NewArtifactController(
	studyPlans *service.StudyPlanService,
	flashcards *service.FlashcardService,
	qa *service.QAService,
	roadmaps *service.RoadmapService,
	slides *service.SlidesService,
	summaries *service.SummaryService,
) *ArtifactController {
	return &ArtifactController{
		StudyPlans: studyPlans,
		Flashcards: flashcards,
		QA:         qa,
		Roadmaps:   roadmaps,
		Slides:     slides,
		Summaries:  summaries,
	}
}

// serveArtifact handles the shared read path: resolve ids, fetch, map errors.
func serveArtifact(ctx *gin.Context, fetch func(projectID, userID uint) (interface{}, error)) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}

	artifact, err := fetch(projectID, userID)
	if err != nil {
		if errors.Is(err, util.ErrArtifactNotFound) || errors.Is(err, util.ErrStudyPlanNotFound) {
			util.NotFound(ctx, "not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, artifact)
}

// GetStudyPlan godoc
// @Summary Get the project's study plan
// @Tags artifacts
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=model.StudyPlan}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId}/study-plan [get]
func (c *ArtifactController) GetStudyPlan(ctx *gin.Context) {
	serveArtifact(ctx, func(projectID, userID uint) (interface{}, error) {
		return c.StudyPlans.GetByProject(projectID, userID)
	})
}

// GetFlashcards godoc
// @Summary Get the project's flashcards
// @Tags artifacts
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=model.Flashcard}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId}/flashcards [get]
func (c *ArtifactController) GetFlashcards(ctx *gin.Context) {
	serveArtifact(ctx, func(projectID, userID uint) (interface{}, error) {
		return c.Flashcards.GetByProject(projectID, userID)
	})
}

// GetQA godoc
// @Summary Get the project's Q&A set
// @Tags artifacts
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=model.QA}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId}/qa [get]
func (c *ArtifactController) GetQA(ctx *gin.Context) {
	serveArtifact(ctx, func(projectID, userID uint) (interface{}, error) {
		return c.QA.GetByProject(projectID, userID)
	})
}

// GetRoadmap godoc
// @Summary Get the project's learning roadmap
// @Tags artifacts
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId}/roadmap [get]
func (c *ArtifactController) GetRoadmap(ctx *gin.Context) {
	serveArtifact(ctx, func(projectID, userID uint) (interface{}, error) {
		return c.Roadmaps.GetByProject(projectID, userID)
	})
}

// GetSlides godoc
// @Summary Get the project's slides
// @Tags artifacts
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=model.Slide}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId}/slides [get]
func (c *ArtifactController) GetSlides(ctx *gin.Context) {
	serveArtifact(ctx, func(projectID, userID uint) (interface{}, error) {
		return c.Slides.GetByProject(projectID, userID)
	})
}

// GetSummary godoc
// @Summary Get the project's latest summary
// @Tags artifacts
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=model.Summary}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/summary/{projectId} [get]
func (c *ArtifactController) GetSummary(ctx *gin.Context) {
	serveArtifact(ctx, func(projectID, userID uint) (interface{}, error) {
		return c.Summaries.GetLatest(projectID, userID)
	})
}

// swagger:model ItemStatusRequest
type ItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStudyPlanItemStatus godoc
// @Summary Change the status of one study plan phase
// @Tags artifacts
// @Accept  json
// @Produce  json
// @Param   studyPlanId path int true "study plan id"
// @Param   itemIndex path int true "phase index"
// @Param   body body ItemStatusRequest true "new status"
// @Success 200 {object} util.Response{data=model.StudyPlan}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/study-plans/{studyPlanId}/items/{itemIndex}/status [put]
func (c *ArtifactController) UpdateStudyPlanItemStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	planID, ok := pathID(ctx, "studyPlanId")
	if !ok {
		return
	}
	itemIndex, err := strconv.Atoi(ctx.Param("itemIndex"))
	if err != nil {
		util.BadRequest(ctx, "invalid item index")
		return
	}

	var req ItemStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "status is required")
		return
	}

	plan, err := c.StudyPlans.UpdateItemStatus(planID, userID, itemIndex, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudyPlanNotFound):
			util.NotFound(ctx, "study plan not found")
		case errors.Is(err, util.ErrInvalidItemIndex):
			util.BadRequest(ctx, "item index out of range")
		case errors.Is(err, util.ErrInvalidItemStatus):
			util.BadRequest(ctx, "status must be one of completed, current, upcoming")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, plan)
}
