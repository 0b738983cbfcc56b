package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HinduAI/Nara/internal/domain/conversation"
	"github.com/HinduAI/Nara/internal/domain/user"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

type fakeUserRepository struct {
	byExternalID map[string]*user.User
	nextID       uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byExternalID: make(map[string]*user.User), nextID: 1}
}

func (r *fakeUserRepository) FindByExternalID(_ context.Context, externalID string) (*user.User, error) {
	return r.byExternalID[externalID], nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range r.byExternalID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Upsert(_ context.Context, usr *user.User) (*user.User, error) {
	if existing, ok := r.byExternalID[usr.ExternalID]; ok {
		return existing, nil
	}
	created := &user.User{ID: r.nextID, ExternalID: usr.ExternalID, Email: usr.Email}
	r.nextID++
	r.byExternalID[usr.ExternalID] = created
	return created, nil
}

type fakeConversationRepository struct {
	conversations map[uint]*conversation.Conversation
	messages      map[uint][]*conversation.Message
	nextConvID    uint
	nextMsgID     uint
	appendErr     error
}

func newFakeConversationRepository() *fakeConversationRepository {
	return &fakeConversationRepository{
		conversations: make(map[uint]*conversation.Conversation),
		messages:      make(map[uint][]*conversation.Message),
		nextConvID:    1,
		nextMsgID:     1,
	}
}

func (r *fakeConversationRepository) Create(_ context.Context, conv *conversation.Conversation) error {
	conv.ID = r.nextConvID
	r.nextConvID++
	r.conversations[conv.ID] = conv
	return nil
}

func (r *fakeConversationRepository) FindByIDAndUserID(_ context.Context, id, userID uint) (*conversation.Conversation, error) {
	conv, ok := r.conversations[id]
	if !ok || conv.UserID != userID {
		return nil, nil
	}
	return conv, nil
}

func (r *fakeConversationRepository) FindByUserID(_ context.Context, userID uint) ([]*conversation.Conversation, error) {
	var out []*conversation.Conversation
	for _, conv := range r.conversations {
		if conv.UserID == userID {
			out = append(out, conv)
		}
	}
	return out, nil
}

func (r *fakeConversationRepository) UpdateTitle(_ context.Context, id uint, title string) error {
	if conv, ok := r.conversations[id]; ok {
		conv.Title = title
	}
	return nil
}

func (r *fakeConversationRepository) Touch(_ context.Context, _ uint) error { return nil }

func (r *fakeConversationRepository) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.conversations[id]; !ok {
		return 0, nil
	}
	delete(r.conversations, id)
	delete(r.messages, id)
	return 1, nil
}

func (r *fakeConversationRepository) Messages(_ context.Context, conversationID uint) ([]*conversation.Message, error) {
	return r.messages[conversationID], nil
}

func (r *fakeConversationRepository) AppendMessage(_ context.Context, msg *conversation.Message) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	msg.ID = r.nextMsgID
	r.nextMsgID++
	r.messages[msg.ConversationID] = append(r.messages[msg.ConversationID], msg)
	return nil
}

func (r *fakeConversationRepository) FindMessageByID(_ context.Context, id uint) (*conversation.Message, error) {
	for _, msgs := range r.messages {
		for _, msg := range msgs {
			if msg.ID == id {
				return msg, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeConversationRepository) SetMessageFeedback(_ context.Context, messageID uint, liked bool) (int64, error) {
	for _, msgs := range r.messages {
		for _, msg := range msgs {
			if msg.ID == messageID {
				msg.ResponseLiked = &liked
				return 1, nil
			}
		}
	}
	return 0, nil
}

type fakeCompletionClient struct {
	response string
	err      error
	requests []openai.ChatCompletionRequest
}

func (c *fakeCompletionClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	return &openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c.response}},
		},
	}, nil
}

func newTestService(client *fakeCompletionClient) (*Service, *fakeConversationRepository) {
	repo := newFakeConversationRepository()
	users := user.NewService(newFakeUserRepository())
	return NewService(conversation.NewService(repo, users), client), repo
}

func TestAskNewConversation(t *testing.T) {
	client := &fakeCompletionClient{response: "Dharma is the path of righteousness."}
	svc, repo := newTestService(client)
	ctx := context.Background()
	identity := user.Identity{ExternalID: "ext-1"}

	result, err := svc.Ask(ctx, identity, AskInput{Question: "What is dharma?"})
	require.NoError(t, err)

	assert.Equal(t, "Dharma is the path of righteousness.", result.Response)
	assert.NotZero(t, result.ConversationID)
	require.Len(t, result.History, 1)
	assert.Equal(t, "What is dharma?", result.History[0].Question)

	require.Len(t, repo.messages[result.ConversationID], 1)
	assert.Equal(t, "Dharma is the path of righteousness.", repo.messages[result.ConversationID][0].AssistantMessage)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, CompletionModel, req.Model)
	assert.InDelta(t, CompletionTemp, req.Temperature, 0.001)
	assert.Equal(t, CompletionMaxTokens, req.MaxTokens)

	// First turn has no history, so no context message is sent.
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "Question: What is dharma?")
}

func TestAskFollowUpCarriesContext(t *testing.T) {
	client := &fakeCompletionClient{response: "answer"}
	svc, _ := newTestService(client)
	ctx := context.Background()
	identity := user.Identity{ExternalID: "ext-1"}

	first, err := svc.Ask(ctx, identity, AskInput{Question: "What is dharma?"})
	require.NoError(t, err)

	second, err := svc.Ask(ctx, identity, AskInput{Question: "And what about karma?", ConversationID: &first.ConversationID})
	require.NoError(t, err)

	assert.Equal(t, first.ConversationID, second.ConversationID)
	require.Len(t, second.History, 2)
	assert.Equal(t, "And what about karma?", second.History[1].Question)

	req := client.requests[1]
	require.Len(t, req.Messages, 3)
	assert.Contains(t, req.Messages[1].Content, "=== Previous Conversation Context ===")
	assert.Contains(t, req.Messages[1].Content, "Previous Question: What is dharma?")
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	svc, _ := newTestService(&fakeCompletionClient{response: "unused"})

	_, err := svc.Ask(context.Background(), user.Identity{ExternalID: "ext-1"}, AskInput{})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeValidation))
}

func TestAskPropagatesUpstreamFailure(t *testing.T) {
	upstream := platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal, "completion provider unavailable", errors.New("503"), "test-code")
	svc, repo := newTestService(&fakeCompletionClient{err: upstream})

	_, err := svc.Ask(context.Background(), user.Identity{ExternalID: "ext-1"}, AskInput{Question: "What is dharma?"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeExternal))

	// The failed turn must not be stored.
	for _, msgs := range repo.messages {
		assert.Empty(t, msgs)
	}
}

func TestAskReturnsAnswerWhenPersistFails(t *testing.T) {
	client := &fakeCompletionClient{response: "the answer"}
	svc, repo := newTestService(client)
	repo.appendErr = fmt.Errorf("disk full")

	result, err := svc.Ask(context.Background(), user.Identity{ExternalID: "ext-1"}, AskInput{Question: "What is dharma?"})
	require.NoError(t, err)
	assert.Equal(t, "the answer", result.Response)
	require.Len(t, result.History, 1)
}

func TestAskNormalizesResponse(t *testing.T) {
	client := &fakeCompletionClient{response: "This is ***important***.\n\n\n\nTruly."}
	svc, _ := newTestService(client)

	result, err := svc.Ask(context.Background(), user.Identity{ExternalID: "ext-1"}, AskInput{Question: "What is dharma?"})
	require.NoError(t, err)
	assert.Equal(t, "This is **important**.\n\nTruly.", result.Response)
}
