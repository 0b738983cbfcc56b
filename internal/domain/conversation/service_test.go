package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type fakeRepository struct {
	conversations map[uint]*Conversation
	messages      map[uint][]*Message
	nextConvID    uint
	nextMsgID     uint
	listErr       error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		conversations: make(map[uint]*Conversation),
		messages:      make(map[uint][]*Message),
		nextConvID:    1,
		nextMsgID:     1,
	}
}

func (r *fakeRepository) Create(_ context.Context, conv *Conversation) error {
	conv.ID = r.nextConvID
	r.nextConvID++
	conv.CreatedAt = time.Now()
	conv.UpdatedAt = conv.CreatedAt
	r.conversations[conv.ID] = conv
	return nil
}

func (r *fakeRepository) FindByIDAndUserID(_ context.Context, id, userID uint) (*Conversation, error) {
	conv, ok := r.conversations[id]
	if !ok || conv.UserID != userID {
		return nil, nil
	}
	return conv, nil
}

func (r *fakeRepository) FindByUserID(_ context.Context, userID uint) ([]*Conversation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*Conversation
	for _, conv := range r.conversations {
		if conv.UserID == userID {
			out = append(out, conv)
		}
	}
	return out, nil
}

func (r *fakeRepository) UpdateTitle(_ context.Context, id uint, title string) error {
	if conv, ok := r.conversations[id]; ok {
		conv.Title = title
	}
	return nil
}

func (r *fakeRepository) Touch(_ context.Context, id uint) error {
	if conv, ok := r.conversations[id]; ok {
		conv.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.conversations[id]; !ok {
		return 0, nil
	}
	delete(r.conversations, id)
	delete(r.messages, id)
	return 1, nil
}

func (r *fakeRepository) Messages(_ context.Context, conversationID uint) ([]*Message, error) {
	return r.messages[conversationID], nil
}

func (r *fakeRepository) AppendMessage(_ context.Context, msg *Message) error {
	msg.ID = r.nextMsgID
	r.nextMsgID++
	msg.CreatedAt = time.Now()
	msg.UpdatedAt = msg.CreatedAt
	r.messages[msg.ConversationID] = append(r.messages[msg.ConversationID], msg)
	return nil
}

func (r *fakeRepository) FindMessageByID(_ context.Context, id uint) (*Message, error) {
	for _, msgs := range r.messages {
		for _, msg := range msgs {
			if msg.ID == id {
				return msg, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeRepository) SetMessageFeedback(_ context.Context, messageID uint, liked bool) (int64, error) {
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

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, user.NewService(newFakeUserRepository())), repo
}

func TestResolveOrCreateCreatesWhenIDMissing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	identity := user.Identity{ExternalID: "ext-1"}

	conv, err := svc.ResolveOrCreate(ctx, identity, nil, "What is dharma?")
	require.NoError(t, err)
	assert.NotZero(t, conv.ID)
	assert.Equal(t, "What is dharma", conv.Title)
}

func TestResolveOrCreateReturnsExistingForOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	identity := user.Identity{ExternalID: "ext-1"}

	first, err := svc.ResolveOrCreate(ctx, identity, nil, "What is dharma?")
	require.NoError(t, err)

	second, err := svc.ResolveOrCreate(ctx, identity, &first.ID, "unused seed")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestResolveOrCreateIgnoresForeignConversation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	theirs, err := svc.ResolveOrCreate(ctx, user.Identity{ExternalID: "ext-1"}, nil, "original question")
	require.NoError(t, err)

	mine, err := svc.ResolveOrCreate(ctx, user.Identity{ExternalID: "ext-2"}, &theirs.ID, "my question")
	require.NoError(t, err)
	assert.NotEqual(t, theirs.ID, mine.ID)
}

func TestAppendExchangePreservesHistoryOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	identity := user.Identity{ExternalID: "ext-1"}

	conv, err := svc.ResolveOrCreate(ctx, identity, nil, "first question")
	require.NoError(t, err)

	_, err = svc.AppendExchange(ctx, conv, "first question", "first answer")
	require.NoError(t, err)
	_, err = svc.AppendExchange(ctx, conv, "second question", "second answer")
	require.NoError(t, err)

	history, err := svc.History(ctx, conv)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first question", history[0].UserMessage)
	assert.Equal(t, "second answer", history[1].AssistantMessage)
}

func TestSetFeedbackOverwritesAndRejectsUnknown(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	identity := user.Identity{ExternalID: "ext-1"}

	conv, err := svc.ResolveOrCreate(ctx, identity, nil, "question")
	require.NoError(t, err)
	msg, err := svc.AppendExchange(ctx, conv, "question", "answer")
	require.NoError(t, err)

	require.NoError(t, svc.SetFeedback(ctx, identity, msg.ID, true))
	require.NotNil(t, msg.ResponseLiked)
	assert.True(t, *msg.ResponseLiked)

	require.NoError(t, svc.SetFeedback(ctx, identity, msg.ID, false))
	assert.False(t, *msg.ResponseLiked)

	err = svc.SetFeedback(ctx, identity, 9999, true)
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
}

func TestSetFeedbackRejectsForeignMessage(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	conv, err := svc.ResolveOrCreate(ctx, user.Identity{ExternalID: "ext-1"}, nil, "question")
	require.NoError(t, err)
	msg, err := svc.AppendExchange(ctx, conv, "question", "answer")
	require.NoError(t, err)

	err = svc.SetFeedback(ctx, user.Identity{ExternalID: "ext-2"}, msg.ID, true)
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
	assert.Nil(t, msg.ResponseLiked)
}

func TestDeleteRemovesConversationAndMessages(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	identity := user.Identity{ExternalID: "ext-1"}

	conv, err := svc.ResolveOrCreate(ctx, identity, nil, "question")
	require.NoError(t, err)
	_, err = svc.AppendExchange(ctx, conv, "question", "answer")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, identity, conv.ID))
	assert.Empty(t, repo.conversations)
	assert.Empty(t, repo.messages)

	err = svc.Delete(ctx, identity, conv.ID)
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
}

func TestListPreservesStorageErrorClass(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	repo.listErr = platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeDatabaseError, "failed to list conversations", errors.New("connection refused"), "test-code")

	_, err := svc.List(ctx, user.Identity{ExternalID: "ext-1"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeDatabaseError))
}

func TestGetRejectsForeignConversation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	conv, err := svc.ResolveOrCreate(ctx, user.Identity{ExternalID: "ext-1"}, nil, "question")
	require.NoError(t, err)

	_, err = svc.Get(ctx, user.Identity{ExternalID: "ext-2"}, conv.ID)
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
}
