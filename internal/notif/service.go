// Package notif fans notification events out to observers through a worker
// pool. Dispatch is best-effort: a full channel drops the event with a log
// line and never blocks or fails the caller.
package notif

import (
	"context"
	"fmt"
	"log"
	"sync"

	"insiderdm/internal/common"
	"insiderdm/internal/config"
	"insiderdm/internal/dbmysql"
)

type NotificationManager struct {
	observers    map[string]common.Observer
	eventChannel chan common.NotificationEvent
	workerPool   int
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewNotificationManager(workerPoolSize, bufferSize int) *NotificationManager {
	ctx, cancel := context.WithCancel(context.Background())

	nm := &NotificationManager{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.NotificationEvent, bufferSize),
		workerPool:   workerPoolSize,
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < workerPoolSize; i++ {
		nm.wg.Add(1)
		go nm.processEvents()
	}

	return nm
}

func (nm *NotificationManager) Subscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (nm *NotificationManager) Unsubscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	delete(nm.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

func (nm *NotificationManager) Notify(event common.NotificationEvent) {
	nm.mu.RLock()
	observers := make([]common.Observer, 0, len(nm.observers))
	for _, obs := range nm.observers {
		observers = append(observers, obs)
	}
	nm.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}

func (nm *NotificationManager) NotifyAsync(event common.NotificationEvent) {
	select {
	case nm.eventChannel <- event:

	case <-nm.ctx.Done():
		return
	default:
		log.Printf("Notification channel full, dropping event: %s", event.Type)
	}
}

func (nm *NotificationManager) processEvents() {
	defer nm.wg.Done()

	for {
		select {
		case event := <-nm.eventChannel:
			nm.Notify(event)
		case <-nm.ctx.Done():
			return
		}
	}
}

func (nm *NotificationManager) Shutdown() {
	nm.cancel()
	nm.wg.Wait()
	log.Println("NotificationManager shutdown complete")
}

// NotificationService wires the manager to its observers and is the
// common.Subject handed to the message service.
type NotificationService struct {
	manager *NotificationManager
	repo    NotificationRepository
}

func NewNotificationService(cfg *config.Config, repo NotificationRepository) *NotificationService {
	manager := NewNotificationManager(cfg.Notification.Workers, cfg.Notification.ChannelBufferSize)

	manager.Subscribe(NewDatabaseNotificationObserver(repo))
	if cfg.Server.Environment == "development" {
		manager.Subscribe(NewLogNotificationObserver())
	}

	return &NotificationService{
		manager: manager,
		repo:    repo,
	}
}

var _ common.Subject = (*NotificationService)(nil)

func (s *NotificationService) Subscribe(observer common.Observer)   { s.manager.Subscribe(observer) }
func (s *NotificationService) Unsubscribe(observer common.Observer) { s.manager.Unsubscribe(observer) }
func (s *NotificationService) Notify(event common.NotificationEvent) {
	s.manager.Notify(event)
}
func (s *NotificationService) NotifyAsync(event common.NotificationEvent) {
	if err := validateEvent(event); err != nil {
		log.Printf("dropping invalid notification event: %v", err)
		return
	}
	s.manager.NotifyAsync(event)
}

func (s *NotificationService) Shutdown() {
	s.manager.Shutdown()
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]*dbmysql.Notification, error) {
	return s.repo.ByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}

func validateEvent(event common.NotificationEvent) error {
	if event.UserID == "" {
		return fmt.Errorf("event has no target user")
	}
	if event.Type == "" {
		return fmt.Errorf("event has no type")
	}
	return nil
}
