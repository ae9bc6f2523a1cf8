package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"insiderdm/internal/chat/service/mocks"
	"insiderdm/internal/config"
	"insiderdm/internal/dbmysql"
)

type fakeProvider struct {
	turns []ChatTurn
	reply string
	err   error
}

func (f *fakeProvider) Complete(_ context.Context, turns []ChatTurn) (string, error) {
	f.turns = turns
	return f.reply, f.err
}

type fakeSender struct {
	conversationID string
	content        string
	inReplyTo      string
	err            error
}

func (f *fakeSender) SendAssistantReply(_ context.Context, conversationID, content, inReplyTo string) (*dbmysql.Message, error) {
	f.conversationID = conversationID
	f.content = content
	f.inReplyTo = inReplyTo
	if f.err != nil {
		return nil, f.err
	}
	return &dbmysql.Message{ID: "msg-reply", ConversationID: conversationID, Content: content}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Assistant: config.AssistantConfig{
			Handle:  "claudeinsider",
			Workers: 1,
		},
	}
}

func newTestResponder(msgRepo *mocks.MockMessageRepository, provider CompletionProvider) *Responder {
	ctx, cancel := context.WithCancel(context.Background())
	return &Responder{
		msgRepo:  msgRepo,
		provider: provider,
		handle:   "claudeinsider",
		triggers: make(chan trigger, 1),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func TestResponder_Respond(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgRepo := mocks.NewMockMessageRepository(ctrl)
	provider := &fakeProvider{reply: "Here is the summary."}
	sender := &fakeSender{}

	responder := newTestResponder(msgRepo, provider)
	responder.Bind(sender)

	triggerMsg := &dbmysql.Message{
		ID:             "msg-3",
		ConversationID: "conv-1",
		SenderID:       "user-1",
		Content:        "@claudeinsider what did we decide?",
	}
	recent := []*dbmysql.Message{
		{ID: "msg-1", ConversationID: "conv-1", SenderID: "user-2", Content: "ship on friday"},
		{ID: "msg-2", ConversationID: "conv-1", SenderID: "assistant", Content: "Noted.", IsAIGenerated: true},
		triggerMsg,
	}

	msgRepo.EXPECT().GetByID(gomock.Any(), "msg-3").Return(triggerMsg, nil)
	msgRepo.EXPECT().RecentContext(gomock.Any(), "conv-1", contextWindow).Return(recent, nil)

	err := responder.respond(trigger{conversationID: "conv-1", messageID: "msg-3"})

	require.NoError(t, err)
	assert.Equal(t, "conv-1", sender.conversationID)
	assert.Equal(t, "Here is the summary.", sender.content)
	assert.Equal(t, "msg-3", sender.inReplyTo)

	require.Len(t, provider.turns, 3)
	assert.Equal(t, RoleUser, provider.turns[0].Role)
	assert.Equal(t, RoleAssistant, provider.turns[1].Role)
	// The trigger turn has the mention token stripped.
	assert.Equal(t, ChatTurn{Role: RoleUser, Content: "what did we decide?"}, provider.turns[2])
}

func TestResponder_Respond_SkipsEncryptedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgRepo := mocks.NewMockMessageRepository(ctrl)
	provider := &fakeProvider{reply: "ok"}
	sender := &fakeSender{}

	responder := newTestResponder(msgRepo, provider)
	responder.Bind(sender)

	triggerMsg := &dbmysql.Message{
		ID:             "msg-2",
		ConversationID: "conv-1",
		SenderID:       "user-1",
		Content:        "@claudeinsider hello",
	}
	recent := []*dbmysql.Message{
		{
			ID:                  "msg-1",
			ConversationID:      "conv-1",
			SenderID:            "user-2",
			EncryptedContent:    "AwogGc3...",
			EncryptionAlgorithm: dbmysql.EncryptionOlmV1,
		},
		triggerMsg,
	}

	msgRepo.EXPECT().GetByID(gomock.Any(), "msg-2").Return(triggerMsg, nil)
	msgRepo.EXPECT().RecentContext(gomock.Any(), "conv-1", contextWindow).Return(recent, nil)

	err := responder.respond(trigger{conversationID: "conv-1", messageID: "msg-2"})

	require.NoError(t, err)
	require.Len(t, provider.turns, 1)
	assert.Equal(t, "hello", provider.turns[0].Content)
}

func TestResponder_Respond_TriggerOutsideWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgRepo := mocks.NewMockMessageRepository(ctrl)
	provider := &fakeProvider{reply: "ok"}
	sender := &fakeSender{}

	responder := newTestResponder(msgRepo, provider)
	responder.Bind(sender)

	triggerMsg := &dbmysql.Message{
		ID:             "msg-old",
		ConversationID: "conv-1",
		SenderID:       "user-1",
		Content:        "@claudeinsider ping",
	}
	// A burst of newer messages pushed the trigger out of the recent window;
	// it is appended so the model always sees the question.
	recent := []*dbmysql.Message{
		{ID: "msg-9", ConversationID: "conv-1", SenderID: "user-2", Content: "unrelated"},
	}

	msgRepo.EXPECT().GetByID(gomock.Any(), "msg-old").Return(triggerMsg, nil)
	msgRepo.EXPECT().RecentContext(gomock.Any(), "conv-1", contextWindow).Return(recent, nil)

	err := responder.respond(trigger{conversationID: "conv-1", messageID: "msg-old"})

	require.NoError(t, err)
	require.Len(t, provider.turns, 2)
	assert.Equal(t, "ping", provider.turns[1].Content)
}

func TestResponder_Respond_Failures(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(msgRepo *mocks.MockMessageRepository, provider *fakeProvider, sender *fakeSender)
		errMsg string
	}{
		{
			name: "provider failure is terminal for the trigger",
			setup: func(msgRepo *mocks.MockMessageRepository, provider *fakeProvider, sender *fakeSender) {
				triggerMsg := &dbmysql.Message{ID: "msg-1", ConversationID: "conv-1", SenderID: "user-1", Content: "hi"}
				msgRepo.EXPECT().GetByID(gomock.Any(), "msg-1").Return(triggerMsg, nil)
				msgRepo.EXPECT().RecentContext(gomock.Any(), "conv-1", contextWindow).
					Return([]*dbmysql.Message{triggerMsg}, nil)
				provider.err = errors.New("rate limited")
			},
			errMsg: "rate limited",
		},
		{
			name: "empty completion is rejected",
			setup: func(msgRepo *mocks.MockMessageRepository, provider *fakeProvider, sender *fakeSender) {
				triggerMsg := &dbmysql.Message{ID: "msg-1", ConversationID: "conv-1", SenderID: "user-1", Content: "hi"}
				msgRepo.EXPECT().GetByID(gomock.Any(), "msg-1").Return(triggerMsg, nil)
				msgRepo.EXPECT().RecentContext(gomock.Any(), "conv-1", contextWindow).
					Return([]*dbmysql.Message{triggerMsg}, nil)
				provider.reply = ""
			},
			errMsg: "empty reply",
		},
		{
			name: "reply post failure surfaces",
			setup: func(msgRepo *mocks.MockMessageRepository, provider *fakeProvider, sender *fakeSender) {
				triggerMsg := &dbmysql.Message{ID: "msg-1", ConversationID: "conv-1", SenderID: "user-1", Content: "hi"}
				msgRepo.EXPECT().GetByID(gomock.Any(), "msg-1").Return(triggerMsg, nil)
				msgRepo.EXPECT().RecentContext(gomock.Any(), "conv-1", contextWindow).
					Return([]*dbmysql.Message{triggerMsg}, nil)
				provider.reply = "ok"
				sender.err = errors.New("conversation gone")
			},
			errMsg: "conversation gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			msgRepo := mocks.NewMockMessageRepository(ctrl)
			provider := &fakeProvider{}
			sender := &fakeSender{}

			responder := newTestResponder(msgRepo, provider)
			responder.Bind(sender)
			tt.setup(msgRepo, provider, sender)

			err := responder.respond(trigger{conversationID: "conv-1", messageID: "msg-1"})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestResponder_Respond_NoSenderBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	responder := newTestResponder(mocks.NewMockMessageRepository(ctrl), &fakeProvider{})

	err := responder.respond(trigger{conversationID: "conv-1", messageID: "msg-1"})
	assert.Error(t, err)
}

func TestResponder_TriggerQueueFullDropsSilently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	responder := newTestResponder(mocks.NewMockMessageRepository(ctrl), &fakeProvider{})

	// No workers are draining: the second trigger hits a full queue and
	// must not block.
	responder.Trigger("conv-1", "msg-1")
	responder.Trigger("conv-1", "msg-2")
}

func TestNewResponder_ShutdownStopsWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	responder := NewResponder(testConfig(), mocks.NewMockMessageRepository(ctrl), &fakeProvider{})
	responder.Shutdown()
}
