package controller

import (
	"errors"
	"net/http"

	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	UploadService *service.UploadService
}

func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{UploadService: uploadService}
}

// Upload godoc
// @Summary Upload a PDF and add its text to the project material
// @Tags upload
// @Accept  multipart/form-data
// @Produce  json
// @Param   projectId path int true "project id"
// @Param   pdfFile formData file true "PDF document"
// @Success 200 {object} util.Response{data=model.Project}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/upload/{projectId} [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}

	header, err := ctx.FormFile("pdfFile")
	if err != nil {
		util.BadRequest(ctx, util.ErrNoFileUploaded.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	mimeType, err := util.ValidateMimeType(file, []string{"application/pdf"})
	file.Close()
	if err != nil || !util.IsPDF(mimeType) {
		util.BadRequest(ctx, "only PDF files are accepted")
		return
	}

	project, err := c.UploadService.IngestPDF(ctx.Request.Context(), projectID, userID, header)
	if err != nil {
		var extractErr *util.ExtractionError
		switch {
		case errors.Is(err, util.ErrProjectNotFound):
			util.NotFound(ctx, "project not found")
		case errors.As(err, &extractErr):
			util.Error(ctx, http.StatusInternalServerError, extractErr.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, project)
}
