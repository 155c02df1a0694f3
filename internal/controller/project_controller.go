package controller

import (
	"errors"

	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// swagger:model ProjectRequest
type ProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Create godoc
// @Summary Create a study project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   body body ProjectRequest true "project payload"
// @Success 201 {object} util.Response{data=model.Project}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "title is required")
		return
	}

	project, err := c.ProjectService.Create(userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, util.ErrTitleRequired) {
			util.BadRequest(ctx, "title is required")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, project)
}

// List godoc
// @Summary List the caller's projects
// @Tags projects
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Project}
// @Security BearerAuth
// @Router /api/projects [get]
func (c *ProjectController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projects, err := c.ProjectService.List(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, projects)
}

// Get godoc
// @Summary Get one project with its artifact counts
// @Tags projects
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=service.ProjectDetail}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId} [get]
func (c *ProjectController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}

	detail, err := c.ProjectService.Detail(projectID, userID)
	if err != nil {
		if errors.Is(err, util.ErrProjectNotFound) {
			util.NotFound(ctx, "project not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// Update godoc
// @Summary Update a project's title and description
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   projectId path int true "project id"
// @Param   body body ProjectRequest true "project payload"
// @Success 200 {object} util.Response{data=model.Project}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}

	var req ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "title is required")
		return
	}

	project, err := c.ProjectService.Update(projectID, userID, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTitleRequired):
			util.BadRequest(ctx, "title is required")
		case errors.Is(err, util.ErrProjectNotFound):
			util.NotFound(ctx, "project not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, project)
}

// Delete godoc
// @Summary Delete a project and everything generated for it
// @Tags projects
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}

	if err := c.ProjectService.Delete(projectID, userID); err != nil {
		if errors.Is(err, util.ErrProjectNotFound) {
			util.NotFound(ctx, "project not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "project deleted"})
}

// UpdateProgress godoc
// @Summary Recompute a project's progress from its study plan
// @Tags projects
// @Produce  json
// @Param   projectId path int true "project id"
// @Success 200 {object} util.Response{data=model.Project}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/projects/{projectId}/progress [put]
func (c *ProjectController) UpdateProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}

	project, err := c.ProjectService.RecomputeProgress(projectID, userID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProjectNotFound):
			util.NotFound(ctx, "project not found")
		case errors.Is(err, util.ErrStudyPlanNotFound):
			util.NotFound(ctx, "study plan not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, project)
}
