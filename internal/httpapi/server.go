package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter assembles the API surface. Register/login and the health check
// are public; everything else sits behind the auth middleware.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware, LoggingMiddleware)

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/register", h.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/login", h.Login).Methods(http.MethodPost)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware)

	api.HandleFunc("/conversations", h.ListConversations).Methods(http.MethodGet)
	api.HandleFunc("/conversations/direct", h.GetOrCreateDirectConversation).Methods(http.MethodPost)
	api.HandleFunc("/conversations/group", h.CreateGroupConversation).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{conversationId}/read", h.MarkAsRead).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{conversationId}/mute", h.SetMute).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{conversationId}/messages", h.ListMessages).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{conversationId}/messages", h.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/messages/{messageId}", h.DeleteMessage).Methods(http.MethodDelete)

	api.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{notificationId}/read", h.MarkNotificationRead).Methods(http.MethodPost)

	api.HandleFunc("/presence", h.UpdatePresence).Methods(http.MethodPost)
	api.HandleFunc("/profile", h.UpdateProfile).Methods(http.MethodPut)

	api.HandleFunc("/blocks", h.BlockUser).Methods(http.MethodPost)
	api.HandleFunc("/blocks/{userId}", h.UnblockUser).Methods(http.MethodDelete)

	api.HandleFunc("/devices", h.RegisterDevice).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/devices", h.ListUserDevices).Methods(http.MethodGet)

	return router
}
