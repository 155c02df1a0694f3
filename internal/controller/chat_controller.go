package controller

import (
	"errors"
	"time"

	"studymate_backend/internal/service"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// swagger:model ChatRequest
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat godoc
// @Summary Ask a question about the project's material
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   projectId path int true "project id"
// @Param   body body ChatRequest true "question"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/chat/{projectId} [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}

	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "message is required")
		return
	}

	reply, err := c.ChatService.Respond(ctx.Request.Context(), projectID, userID, req.Message)
	if err != nil {
		if errors.Is(err, util.ErrProjectNotFound) {
			util.NotFound(ctx, "project not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"reply":     reply,
		"timestamp": time.Now().UTC(),
	})
}
