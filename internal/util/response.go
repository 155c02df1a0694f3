package util

import (
	"net/http"

	"studymate_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the unified JSON envelope for every handler.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	// RawResponse carries the offending LLM output when generation produced
	// content in an unexpected format.
	RawResponse string `json:"rawResponse,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// ContentFormat reports a malformed LLM response, attaching the raw text so
// the caller can diagnose what the model actually returned.
func ContentFormat(c *gin.Context, err *ContentFormatError) {
	logger.Log.Error("AI content format error",
		zap.String("reason", err.Reason),
		zap.Int("raw_len", len(err.Raw)),
	)
	c.JSON(http.StatusInternalServerError, Response{
		Code:        http.StatusInternalServerError,
		Message:     "AI generated content in an unexpected format.",
		RawResponse: err.Raw,
	})
}
