//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"insiderdm/internal/assistant"
	"insiderdm/internal/chat/repository"
	chatservice "insiderdm/internal/chat/service"
	"insiderdm/internal/common"
	"insiderdm/internal/config"
	"insiderdm/internal/dbmysql"
	"insiderdm/internal/httpapi"
	"insiderdm/internal/notif"
	"insiderdm/internal/presence"
	"insiderdm/internal/user"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,

		presence.NewMongoConnection,
		presence.NewStore,
		wire.Bind(new(common.PresenceStore), new(*presence.Store)),

		user.NewUserRepository,
		user.NewBlockRepository,
		user.NewDeviceRepository,
		user.NewUserService,
		wire.Bind(new(chatservice.UserDirectory), new(user.UserRepository)),
		wire.Bind(new(chatservice.BlockChecker), new(user.BlockRepository)),

		repository.NewConversationRepository,
		repository.NewMessageRepository,

		notif.NewNotificationRepository,
		notif.NewNotificationService,

		assistant.NewOpenAIProvider,
		wire.Bind(new(assistant.CompletionProvider), new(*assistant.OpenAIProvider)),
		assistant.NewResponder,

		ProvideResolver,
		ProvideMessageService,
		chatservice.NewConversationService,

		httpapi.NewHandlers,
		httpapi.NewRouter,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
