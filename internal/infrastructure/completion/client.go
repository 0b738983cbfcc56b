// Package completion is the HTTP client for the OpenAI-compatible chat
// completion endpoint.
package completion

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"github.com/HinduAI/Nara/internal/config"
	"github.com/HinduAI/Nara/internal/domain/chat"
	"github.com/HinduAI/Nara/internal/infrastructure/metrics"
	"github.com/HinduAI/Nara/internal/utils/httpclients"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

const requestTimeout = 120 * time.Second

// Client calls the chat completion endpoint with bearer auth.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

var _ chat.CompletionClient = (*Client)(nil)

// NewClient builds a completion client from configuration.
func NewClient(cfg *config.Config) *Client {
	client := httpclients.NewClient("CompletionClient")
	client.SetTimeout(cfg.OpenAITimeout)
	if cfg.OpenAITimeout <= 0 {
		client.SetTimeout(requestTimeout)
	}
	return &Client{
		client:  client,
		baseURL: normalizeBaseURL(cfg.OpenAIBaseURL),
		apiKey:  cfg.OpenAIAPIKey,
	}
}

// CreateChatCompletion implements chat.CompletionClient.
func (c *Client) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var respBody openai.ChatCompletionResponse
	start := time.Now()
	resp, err := c.prepareRequest(ctx).
		SetBody(request).
		SetResult(&respBody).
		Post(c.endpoint("/chat/completions"))
	if err != nil {
		metrics.RecordCompletionError("transport")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"completion request failed", err, "6e2a8f1c-4d7b-40e9-9a3c-5b8d2f0e7c16")
	}
	if resp.IsError() {
		metrics.RecordCompletionError(fmt.Sprintf("http_%d", resp.StatusCode()))
		return nil, c.errorFromResponse(ctx, resp, "completion request failed")
	}

	metrics.RecordLLMDuration(request.Model, time.Since(start).Seconds())
	metrics.RecordTokens(request.Model, respBody.Usage.PromptTokens, respBody.Usage.CompletionTokens)

	return &respBody, nil
}

func (c *Client) prepareRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if strings.TrimSpace(c.apiKey) != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	return req
}

func (c *Client) endpoint(path string) string {
	if path == "" {
		return c.baseURL
	}
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

func (c *Client) errorFromResponse(ctx context.Context, resp *resty.Response, message string) error {
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			message, nil, "1f7c3e9a-5b2d-48f0-a6e8-9c4d7b1a2f60")
	}
	defer resp.RawResponse.Body.Close()
	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			message, nil, "8d4b2f6e-0a9c-4713-b5e1-3c7a6d9f0b28")
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			message, nil, "b9e1c5a3-7d2f-4086-9f4b-6a8c0d3e2f71")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
		fmt.Sprintf("%s: %s", message, trimmed), nil, "4a6d8b0e-2c9f-45d1-8e3a-7f5b1c6d9e02")
}

func normalizeBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}
