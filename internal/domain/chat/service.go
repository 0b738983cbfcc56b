// Package chat orchestrates a single question/answer turn: conversation
// resolution, prompt composition, the upstream completion call, and
// persistence of the resulting exchange.
package chat

import (
	"context"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/HinduAI/Nara/internal/domain/conversation"
	"github.com/HinduAI/Nara/internal/domain/prompt"
	"github.com/HinduAI/Nara/internal/domain/user"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

const (
	// CompletionModel is pinned; quality of the persona prompt was tuned
	// against it.
	CompletionModel     = openai.GPT4o
	CompletionTemp      = 0.7
	CompletionMaxTokens = 5000
)

// CompletionClient abstracts the upstream chat-completion provider.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// AskInput carries one user turn. A nil ConversationID starts a new
// conversation.
type AskInput struct {
	Question       string
	ConversationID *uint
}

// AskResult is the completed turn. History includes the exchange produced by
// this request as its final element.
type AskResult struct {
	Response       string
	History        []prompt.Exchange
	ConversationID uint
}

// Service is the ask orchestrator.
type Service struct {
	conversations *conversation.Service
	completions   CompletionClient
}

func NewService(conversations *conversation.Service, completions CompletionClient) *Service {
	return &Service{conversations: conversations, completions: completions}
}

// Ask runs one full turn for the authenticated identity. Persistence
// failures after a successful completion are logged and swallowed so the
// user still receives the answer they paid an upstream call for.
func (s *Service) Ask(ctx context.Context, identity user.Identity, input AskInput) (*AskResult, error) {
	if input.Question == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"question must not be empty", nil, "7f2b9c4e-8a1d-4b6f-930e-2d5c8e7a1f40")
	}

	conv, err := s.conversations.ResolveOrCreate(ctx, identity, input.ConversationID, input.Question)
	if err != nil {
		return nil, err
	}

	stored, err := s.conversations.History(ctx, conv)
	if err != nil {
		return nil, err
	}
	history := make([]prompt.Exchange, 0, len(stored)+1)
	for _, msg := range stored {
		history = append(history, prompt.Exchange{Question: msg.UserMessage, Answer: msg.AssistantMessage})
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt.SystemPrompt},
	}
	if contextBlock := prompt.BuildContext(history, prompt.DefaultMaxExchanges); contextBlock != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: contextBlock,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt.UserContent(input.Question),
	})

	completion, err := s.completions.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       CompletionModel,
		Messages:    messages,
		Temperature: CompletionTemp,
		MaxTokens:   CompletionMaxTokens,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "completion request failed")
	}
	if len(completion.Choices) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"completion returned no choices", nil, "e61d0f5b-3a92-47c8-b1e4-9f8c2d7a6b53")
	}

	answer := prompt.Normalize(completion.Choices[0].Message.Content)

	if _, err := s.conversations.AppendExchange(ctx, conv, input.Question, answer); err != nil {
		log.Error().Err(err).
			Uint("conversation_id", conv.ID).
			Msg("completed exchange could not be persisted")
	}

	history = append(history, prompt.Exchange{Question: input.Question, Answer: answer})

	return &AskResult{
		Response:       answer,
		History:        history,
		ConversationID: conv.ID,
	}, nil
}
