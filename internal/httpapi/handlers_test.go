package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatservice "insiderdm/internal/chat/service"
	"insiderdm/internal/common"
	"insiderdm/internal/dbmysql"
)

// Stubs with overridable behavior keep the handler tests focused on routing,
// auth and status mapping.

type stubConversationService struct {
	getOrCreateDirectFn func(ctx context.Context, userA, userB string) (string, error)
	markAsReadFn        func(ctx context.Context, userID, conversationID string) error
}

func (s *stubConversationService) GetOrCreateDirectConversation(ctx context.Context, userA, userB string) (string, error) {
	if s.getOrCreateDirectFn != nil {
		return s.getOrCreateDirectFn(ctx, userA, userB)
	}
	return "conv-1", nil
}

func (s *stubConversationService) CreateGroupConversation(context.Context, string, string, []string) (string, error) {
	return "conv-g", nil
}

func (s *stubConversationService) ListConversations(context.Context, string) ([]*chatservice.ConversationSummary, error) {
	return []*chatservice.ConversationSummary{}, nil
}

func (s *stubConversationService) MarkAsRead(ctx context.Context, userID, conversationID string) error {
	if s.markAsReadFn != nil {
		return s.markAsReadFn(ctx, userID, conversationID)
	}
	return nil
}

func (s *stubConversationService) SetMute(context.Context, string, string, bool) error {
	return nil
}

type stubMessageService struct {
	sendFn          func(ctx context.Context, senderID, conversationID, content string) (*chatservice.SendResult, error)
	sendEncryptedFn func(ctx context.Context, senderID, conversationID string, payload chatservice.EncryptedPayload) (*chatservice.SendResult, error)
	listFn          func(ctx context.Context, conversationID, requesterID string, limit int, before *time.Time) ([]*chatservice.EnrichedMessage, bool, error)
}

func (s *stubMessageService) SendMessage(ctx context.Context, senderID, conversationID, content string) (*chatservice.SendResult, error) {
	if s.sendFn != nil {
		return s.sendFn(ctx, senderID, conversationID, content)
	}
	return &chatservice.SendResult{}, nil
}

func (s *stubMessageService) SendEncryptedMessage(ctx context.Context, senderID, conversationID string, payload chatservice.EncryptedPayload) (*chatservice.SendResult, error) {
	if s.sendEncryptedFn != nil {
		return s.sendEncryptedFn(ctx, senderID, conversationID, payload)
	}
	return &chatservice.SendResult{}, nil
}

func (s *stubMessageService) ListMessages(ctx context.Context, conversationID, requesterID string, limit int, before *time.Time) ([]*chatservice.EnrichedMessage, bool, error) {
	if s.listFn != nil {
		return s.listFn(ctx, conversationID, requesterID, limit, before)
	}
	return nil, false, nil
}

func (s *stubMessageService) DeleteMessage(context.Context, string, string) error {
	return nil
}

func (s *stubMessageService) SendAssistantReply(context.Context, string, string, string) (*dbmysql.Message, error) {
	return nil, nil
}

func newTestRouter(conversations *stubConversationService, messages *stubMessageService) http.Handler {
	h := &Handlers{
		conversations: conversations,
		messages:      messages,
	}
	return NewRouter(h)
}

func authedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	token, err := common.GenerateToken("user-caller", "caller")
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not authenticated", common.ErrNotAuthenticated, http.StatusUnauthorized},
		{"not authorized", common.ErrNotAuthorized, http.StatusForbidden},
		{"blocked", common.ErrBlocked, http.StatusForbidden},
		{"not found", common.ErrNotFound, http.StatusNotFound},
		{"empty content", common.ErrEmptyContent, http.StatusBadRequest},
		{"invalid input", common.ErrInvalidInput, http.StatusBadRequest},
		{"unknown errors stay opaque", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			if tt.wantStatus == http.StatusInternalServerError {
				// Internal details never leak to clients.
				assert.Equal(t, "internal server error", body["error"])
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	router := newTestRouter(&stubConversationService{}, &stubMessageService{})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/conversations", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/conversations", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/api/conversations", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health stays public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSendMessage_RoutesPlaintextAndEncrypted(t *testing.T) {
	var gotContent string
	var gotPayload *chatservice.EncryptedPayload

	messages := &stubMessageService{
		sendFn: func(_ context.Context, senderID, conversationID, content string) (*chatservice.SendResult, error) {
			assert.Equal(t, "user-caller", senderID)
			assert.Equal(t, "conv-1", conversationID)
			gotContent = content
			return &chatservice.SendResult{}, nil
		},
		sendEncryptedFn: func(_ context.Context, _, _ string, payload chatservice.EncryptedPayload) (*chatservice.SendResult, error) {
			gotPayload = &payload
			return &chatservice.SendResult{}, nil
		},
	}
	router := newTestRouter(&stubConversationService{}, messages)

	body, _ := json.Marshal(map[string]string{"content": "hello @bob"})
	req := authedRequest(t, http.MethodPost, "/api/conversations/conv-1/messages", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "hello @bob", gotContent)

	body, _ = json.Marshal(map[string]interface{}{
		"encrypted": map[string]string{
			"ciphertext":       "AwogGc3...",
			"algorithm":        dbmysql.EncryptionOlmV1,
			"session_id":       "session-1",
			"sender_device_id": "device-1",
			"sender_key":       "curve-key",
		},
	})
	req = authedRequest(t, http.MethodPost, "/api/conversations/conv-1/messages", body)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, gotPayload)
	assert.Equal(t, dbmysql.EncryptionOlmV1, gotPayload.Algorithm)
}

func TestListMessages_QueryValidation(t *testing.T) {
	listCalled := false
	messages := &stubMessageService{
		listFn: func(_ context.Context, _, _ string, limit int, before *time.Time) ([]*chatservice.EnrichedMessage, bool, error) {
			listCalled = true
			assert.Equal(t, 20, limit)
			require.NotNil(t, before)
			return nil, true, nil
		},
	}
	router := newTestRouter(&stubConversationService{}, messages)

	t.Run("limit out of range", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/api/conversations/conv-1/messages?limit=500", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/api/conversations/conv-1/messages?before=yesterday", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid query", func(t *testing.T) {
		cursor := time.Now().UTC().Format(time.RFC3339Nano)
		req := authedRequest(t, http.MethodGet, "/api/conversations/conv-1/messages?limit=20&before="+cursor, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, listCalled)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["has_more"])
	})
}

func TestGetOrCreateDirectConversation_BlockedMapsToForbidden(t *testing.T) {
	conversations := &stubConversationService{
		getOrCreateDirectFn: func(_ context.Context, userA, userB string) (string, error) {
			assert.Equal(t, "user-caller", userA)
			assert.Equal(t, "user-b", userB)
			return "", common.ErrBlocked
		},
	}
	router := newTestRouter(conversations, &stubMessageService{})

	body, _ := json.Marshal(map[string]string{"user_id": "user-b"})
	req := authedRequest(t, http.MethodPost, "/api/conversations/direct", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMarkAsRead_NotAParticipant(t *testing.T) {
	conversations := &stubConversationService{
		markAsReadFn: func(_ context.Context, _, _ string) error {
			return common.ErrNotAuthorized
		},
	}
	router := newTestRouter(conversations, &stubMessageService{})

	req := authedRequest(t, http.MethodPost, "/api/conversations/conv-1/read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
