// Package assistant turns @assistant mentions into AI-authored replies. The
// trigger queue is fire-and-forget from the sender's perspective: sends
// return as soon as the human message is durable, and any generation failure
// is terminal for that trigger — logged, never retried, never surfaced.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"insiderdm/internal/chat/repository"
	"insiderdm/internal/config"
	"insiderdm/internal/dbmysql"
	"insiderdm/internal/mention"
)

// contextWindow is how many recent messages (including the trigger) are
// shown to the model.
const contextWindow = 6

const generateTimeout = 60 * time.Second

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one prior message presented to the completion backend.
type ChatTurn struct {
	Role    string
	Content string
}

// CompletionProvider is the boundary to the language-model service.
type CompletionProvider interface {
	Complete(ctx context.Context, turns []ChatTurn) (string, error)
}

// MessageSender is the slice of the message service the responder posts
// replies through, so unread counts and caches stay consistent.
type MessageSender interface {
	SendAssistantReply(ctx context.Context, conversationID, content, inReplyTo string) (*dbmysql.Message, error)
}

type trigger struct {
	conversationID string
	messageID      string
}

type Responder struct {
	msgRepo  repository.MessageRepository
	provider CompletionProvider
	handle   string

	mu     sync.RWMutex
	sender MessageSender

	triggers chan trigger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewResponder(cfg *config.Config, msgRepo repository.MessageRepository, provider CompletionProvider) *Responder {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Responder{
		msgRepo:  msgRepo,
		provider: provider,
		handle:   cfg.Assistant.Handle,
		triggers: make(chan trigger, 100),
		ctx:      ctx,
		cancel:   cancel,
	}

	workers := cfg.Assistant.Workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.processTriggers()
	}

	return r
}

// Bind attaches the message service after construction; the service itself
// depends on the responder, so the cycle is closed here at wiring time.
func (r *Responder) Bind(sender MessageSender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sender = sender
}

// Trigger enqueues a reply job and returns immediately.
func (r *Responder) Trigger(conversationID, messageID string) {
	select {
	case r.triggers <- trigger{conversationID: conversationID, messageID: messageID}:

	case <-r.ctx.Done():
		return
	default:
		log.Printf("assistant trigger queue full, dropping trigger for message %s", messageID)
	}
}

func (r *Responder) processTriggers() {
	defer r.wg.Done()

	for {
		select {
		case t := <-r.triggers:
			if err := r.respond(t); err != nil {
				log.Printf("assistant reply failed for message %s: %v", t.messageID, err)
			}
		case <-r.ctx.Done():
			return
		}
	}
}

func (r *Responder) Shutdown() {
	r.cancel()
	r.wg.Wait()
	log.Println("assistant responder shutdown complete")
}

func (r *Responder) respond(t trigger) error {
	r.mu.RLock()
	sender := r.sender
	r.mu.RUnlock()
	if sender == nil {
		return fmt.Errorf("responder has no message sender bound")
	}

	ctx, cancel := context.WithTimeout(r.ctx, generateTimeout)
	defer cancel()

	triggerMsg, err := r.msgRepo.GetByID(ctx, t.messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("trigger message no longer exists")
		}
		return err
	}

	recent, err := r.msgRepo.RecentContext(ctx, t.conversationID, contextWindow)
	if err != nil {
		return err
	}

	turns := r.buildTurns(recent, triggerMsg)
	if len(turns) == 0 {
		return fmt.Errorf("no readable context for conversation %s", t.conversationID)
	}

	reply, err := r.provider.Complete(ctx, turns)
	if err != nil {
		return err
	}
	if reply == "" {
		return fmt.Errorf("completion backend returned an empty reply")
	}

	if _, err := sender.SendAssistantReply(ctx, t.conversationID, reply, t.messageID); err != nil {
		return fmt.Errorf("failed to post assistant reply: %w", err)
	}

	return nil
}

// buildTurns maps recent messages to model roles via the isAiGenerated flag.
// The assistant's own mention token is stripped so the model does not see it,
// and encrypted messages are skipped — the server cannot read them.
func (r *Responder) buildTurns(recent []*dbmysql.Message, triggerMsg *dbmysql.Message) []ChatTurn {
	turns := make([]ChatTurn, 0, len(recent)+1)
	sawTrigger := false

	for _, msg := range recent {
		if msg.Encrypted() {
			continue
		}
		if msg.ID == triggerMsg.ID {
			sawTrigger = true
		}
		turns = append(turns, r.turnFor(msg))
	}

	if !sawTrigger {
		turns = append(turns, r.turnFor(triggerMsg))
	}

	return turns
}

func (r *Responder) turnFor(msg *dbmysql.Message) ChatTurn {
	if msg.IsAIGenerated {
		return ChatTurn{Role: RoleAssistant, Content: msg.Content}
	}
	return ChatTurn{Role: RoleUser, Content: mention.StripHandle(msg.Content, r.handle)}
}
