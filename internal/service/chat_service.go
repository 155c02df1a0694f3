package service

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"time"

	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"
	"studymate_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const chatCacheTTL = 15 * time.Minute

type ChatService struct {
	Projects *repository.ProjectRepository
	AI       ContentGenerator
	Redis    *redis.Client
}

func NewChatService(projects *repository.ProjectRepository, ai ContentGenerator, rdb *redis.Client) *ChatService {
	return &ChatService{Projects: projects, AI: ai, Redis: rdb}
}

// Respond answers a question about the project's material. Identical
// questions within the cache window are served from Redis without another
// model call.
func (s *ChatService) Respond(ctx context.Context, projectID, userID uint, message string) (string, error) {
	project, err := s.Projects.FindOwned(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrProjectNotFound
		}
		return "", err
	}

	cacheKey := fmt.Sprintf("chat:%d:%x", projectID, sha1.Sum([]byte(message)))
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	reply, err := s.AI.GenerateText(chatPrompt(project.Title, project.ExtractedTextContent, message))
	if err != nil {
		return "", err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, cacheKey, reply, chatCacheTTL).Err(); err != nil {
			logger.Log.Warn("caching chat reply failed", zap.Error(err))
		}
	}
	return reply, nil
}
