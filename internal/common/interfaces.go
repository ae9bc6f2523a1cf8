package common

import "context"

type Observer interface {
	Update(event NotificationEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event NotificationEvent)
	NotifyAsync(event NotificationEvent)
}

// PresenceStore is the boundary to the presence service. Batch lookups keep
// the conversation-list path at a constant number of round trips.
type PresenceStore interface {
	Set(ctx context.Context, userID string, status PresenceStatus) error
	Batch(ctx context.Context, userIDs []string) (map[string]PresenceStatus, error)
}
