package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	chatservice "insiderdm/internal/chat/service"
	"insiderdm/internal/common"
	"insiderdm/internal/dbmysql"
	"insiderdm/internal/notif"
	"insiderdm/internal/user"
)

type Handlers struct {
	users         user.UserService
	conversations chatservice.ConversationService
	messages      chatservice.MessageService
	notifications *notif.NotificationService
	presence      common.PresenceStore
}

func NewHandlers(
	users user.UserService,
	conversations chatservice.ConversationService,
	messages chatservice.MessageService,
	notifications *notif.NotificationService,
	presence common.PresenceStore,
) *Handlers {
	return &Handlers{
		users:         users,
		conversations: conversations,
		messages:      messages,
		notifications: notifications,
		presence:      presence,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrNotAuthorized):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrBlocked):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrEmptyContent), errors.Is(err, common.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	}

	writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	account, token, err := h.users.RegisterUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  account,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	account, token, err := h.users.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  account,
	})
}

func (h *Handlers) GetOrCreateDirectConversation(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	conversationID, err := h.conversations.GetOrCreateDirectConversation(r.Context(), callerID, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"conversation_id": conversationID})
}

func (h *Handlers) CreateGroupConversation(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	var req struct {
		Name      string   `json:"name"`
		MemberIDs []string `json:"member_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	conversationID, err := h.conversations.CreateGroupConversation(r.Context(), callerID, req.Name, req.MemberIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"conversation_id": conversationID})
}

func (h *Handlers) ListConversations(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	summaries, err := h.conversations.ListConversations(r.Context(), callerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"conversations": summaries})
}

func (h *Handlers) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())
	conversationID := mux.Vars(r)["conversationId"]

	if err := h.conversations.MarkAsRead(r.Context(), callerID, conversationID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) SetMute(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())
	conversationID := mux.Vars(r)["conversationId"]

	var req struct {
		Muted bool `json:"muted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	if err := h.conversations.SetMute(r.Context(), callerID, conversationID, req.Muted); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())
	conversationID := mux.Vars(r)["conversationId"]

	var req struct {
		Content   string                        `json:"content"`
		Encrypted *chatservice.EncryptedPayload `json:"encrypted,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	var result *chatservice.SendResult
	var err error
	if req.Encrypted != nil {
		result, err = h.messages.SendEncryptedMessage(r.Context(), callerID, conversationID, *req.Encrypted)
	} else {
		result, err = h.messages.SendMessage(r.Context(), callerID, conversationID, req.Content)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())
	conversationID := mux.Vars(r)["conversationId"]

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			writeError(w, common.ErrInvalidInput)
			return
		}
		limit = parsed
	}

	var before *time.Time
	if raw := r.URL.Query().Get("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			writeError(w, common.ErrInvalidInput)
			return
		}
		before = &parsed
	}

	messages, hasMore, err := h.messages.ListMessages(r.Context(), conversationID, callerID, limit, before)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
		"has_more": hasMore,
	})
}

func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())
	messageID := mux.Vars(r)["messageId"]

	if err := h.messages.DeleteMessage(r.Context(), messageID, callerID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	notifications, err := h.notifications.ListForUser(r.Context(), callerID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	unread, err := h.notifications.UnreadCount(r.Context(), callerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())
	notificationID := mux.Vars(r)["notificationId"]

	if err := h.notifications.MarkAsRead(r.Context(), notificationID, callerID); err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) UpdatePresence(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	var req struct {
		Status common.PresenceStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}
	switch req.Status {
	case common.PresenceOnline, common.PresenceIdle, common.PresenceOffline:
	default:
		writeError(w, common.ErrInvalidInput)
		return
	}

	if err := h.presence.Set(r.Context(), callerID, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	var profile dbmysql.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	if err := h.users.UpdateProfile(r.Context(), callerID, &profile); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) BlockUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	if err := h.users.BlockUser(r.Context(), callerID, req.UserID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) UnblockUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())
	blockedID := mux.Vars(r)["userId"]

	if err := h.users.UnblockUser(r.Context(), callerID, blockedID); err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	callerID, _ := CallerID(r.Context())

	var req struct {
		DeviceID      string `json:"device_id"`
		DisplayName   string `json:"display_name"`
		IdentityKey   string `json:"identity_key"`
		Curve25519Key string `json:"curve25519_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrInvalidInput)
		return
	}

	err := h.users.RegisterDevice(r.Context(), callerID, req.DeviceID, req.DisplayName, req.IdentityKey, req.Curve25519Key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *Handlers) ListUserDevices(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	devices, err := h.users.GetUserDevices(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"devices": devices})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
