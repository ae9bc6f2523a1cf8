package notif

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"insiderdm/internal/common"
	"insiderdm/internal/dbmysql"
)

const observerTimeout = 5 * time.Second

// DatabaseNotificationObserver persists every event as a notification row.
type DatabaseNotificationObserver struct {
	repo NotificationRepository
}

func NewDatabaseNotificationObserver(repo NotificationRepository) *DatabaseNotificationObserver {
	return &DatabaseNotificationObserver{repo: repo}
}

func (o *DatabaseNotificationObserver) Name() string {
	return "database"
}

func (o *DatabaseNotificationObserver) Update(event common.NotificationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), observerTimeout)
	defer cancel()

	notification := &dbmysql.Notification{
		ID:           uuid.NewString(),
		UserID:       event.UserID,
		Type:         string(event.Type),
		Title:        event.Title,
		Message:      event.Message,
		ResourceType: event.ResourceType,
		ResourceID:   event.ResourceID,
		Metadata:     event.Metadata,
		Status:       string(common.StatusSent),
	}
	if event.ActorID != "" {
		actorID := event.ActorID
		notification.ActorID = &actorID
	}

	return o.repo.Create(ctx, notification)
}

// LogNotificationObserver echoes events to the log; subscribed in
// development environments only.
type LogNotificationObserver struct{}

func NewLogNotificationObserver() *LogNotificationObserver {
	return &LogNotificationObserver{}
}

func (o *LogNotificationObserver) Name() string {
	return "log"
}

func (o *LogNotificationObserver) Update(event common.NotificationEvent) error {
	log.Printf("notification %s -> user %s: %s", event.Type, event.UserID, event.Title)
	return nil
}
