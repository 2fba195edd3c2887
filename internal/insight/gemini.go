package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	GeminiBaseURL = "https://generativelanguage.googleapis.com"
	GeminiModel   = "gemini-2.0-flash"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiClient клиент Google Gemini generateContent
type GeminiClient struct {
	httpClient *resty.Client
	apiKey     string
}

func NewGeminiClient(baseURL, apiKey string, timeout time.Duration) *GeminiClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &GeminiClient{httpClient: client, apiKey: apiKey}
}

func (c *GeminiClient) Provider() string { return ProviderGemini }

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	var out geminiResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}).
		SetResult(&out).
		Post("/v1beta/models/" + GeminiModel + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
