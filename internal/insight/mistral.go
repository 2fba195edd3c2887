package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	MistralBaseURL   = "https://api.mistral.ai"
	MistralModel     = "open-mistral-7b"
	mistralMaxTokens = 150
)

type mistralMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type mistralRequest struct {
	Model     string           `json:"model"`
	Messages  []mistralMessage `json:"messages"`
	MaxTokens int              `json:"max_tokens"`
}

type mistralResponse struct {
	Choices []struct {
		Message mistralMessage `json:"message"`
	} `json:"choices"`
}

// MistralClient клиент Mistral chat completions
type MistralClient struct {
	httpClient *resty.Client
}

func NewMistralClient(baseURL, apiKey string, timeout time.Duration) *MistralClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &MistralClient{httpClient: client}
}

func (c *MistralClient) Provider() string { return ProviderMistral }

func (c *MistralClient) Generate(ctx context.Context, prompt string) (string, error) {
	var out mistralResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(mistralRequest{
			Model:     MistralModel,
			Messages:  []mistralMessage{{Role: "user", Content: prompt}},
			MaxTokens: mistralMaxTokens,
		}).
		SetResult(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("mistral: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("mistral: unexpected status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("mistral: empty response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
