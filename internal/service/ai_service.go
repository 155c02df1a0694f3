package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"studymate_backend/internal/config"
)

// ContentGenerator is the LLM boundary. GenerateJSON constrains the model to
// a JSON object response; GenerateText returns free-form text.
type ContentGenerator interface {
	GenerateJSON(prompt string) (string, error)
	GenerateText(prompt string) (string, error)
}

// AIService talks to an OpenAI-compatible chat-completions endpoint.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []AIChatMessage `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const jsonSystemPrompt = "You are a helpful AI assistant that generates content in strict JSON format. Always respond with valid JSON only, no additional text or explanations."

// GenerateJSON asks the model for a JSON-constrained completion.
func (s *AIService) GenerateJSON(prompt string) (string, error) {
	return s.complete(prompt, jsonSystemPrompt, &responseFormat{Type: "json_object"})
}

// GenerateText asks the model for a plain-text completion.
func (s *AIService) GenerateText(prompt string) (string, error) {
	return s.complete(prompt, "You are a helpful AI study assistant.", nil)
}

func (s *AIService) complete(prompt, systemPrompt string, format *responseFormat) (string, error) {
	reqBody := chatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: format,
		Temperature:    0.7,
		MaxTokens:      s.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to generate AI content: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
