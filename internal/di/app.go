package di

import (
	"context"
	"log"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"insiderdm/internal/assistant"
	"insiderdm/internal/chat/repository"
	chatservice "insiderdm/internal/chat/service"
	"insiderdm/internal/config"
	"insiderdm/internal/mention"
	"insiderdm/internal/notif"
	"insiderdm/internal/presence"
	"insiderdm/internal/user"
)

// Application bundles everything the service entrypoint needs.
type Application struct {
	Config        *config.Config
	DB            *gorm.DB
	Mongo         *presence.MongoClient
	Router        *mux.Router
	Notifications *notif.NotificationService
	Assistant     *assistant.Responder
}

// Shutdown drains the background workers and closes external connections.
func (a *Application) Shutdown(ctx context.Context) {
	a.Assistant.Shutdown()
	a.Notifications.Shutdown()
	if err := a.Mongo.Close(ctx); err != nil {
		log.Printf("failed to close mongo connection: %v", err)
	}
}

// ProvideResolver constructs the mention resolver against the user
// directory with the configured assistant handle.
func ProvideResolver(cfg *config.Config, users user.UserRepository) *mention.Resolver {
	return mention.NewResolver(users, cfg.Assistant.Handle)
}

// ProvideMessageService builds the message service and closes the
// service ↔ responder cycle: the responder posts replies back through the
// message service it just got bound to.
func ProvideMessageService(
	cfg *config.Config,
	msgRepo repository.MessageRepository,
	convRepo repository.ConversationRepository,
	users user.UserRepository,
	resolver *mention.Resolver,
	notifications *notif.NotificationService,
	responder *assistant.Responder,
) chatservice.MessageService {
	messageService := chatservice.NewMessageService(
		msgRepo,
		convRepo,
		users,
		resolver,
		notifications,
		responder,
		cfg.Assistant.UserID,
	)
	responder.Bind(messageService)
	return messageService
}
