package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insiderdm/internal/chat/repository"
	"insiderdm/internal/common"
	"insiderdm/internal/dbmysql"
	"insiderdm/internal/mention"
)

const previewLimit = 50

// encryptedPreview is the cache/notification placeholder for messages whose
// body the server cannot read.
const encryptedPreview = "Encrypted message"

// MentionResolver extracts @handle targets from message text.
type MentionResolver interface {
	Resolve(ctx context.Context, rawContent, senderID string) (*mention.Resolution, error)
}

// AssistantTrigger hands a mention of the AI assistant off to the response
// generator. Fire-and-forget: Trigger must return immediately and the
// generator owns its own failure handling.
type AssistantTrigger interface {
	Trigger(conversationID, messageID string)
}

// EncryptedPayload is the client-encrypted body of an E2EE message.
type EncryptedPayload struct {
	Ciphertext     string `json:"ciphertext"`
	Algorithm      string `json:"algorithm"`
	SessionID      string `json:"session_id"`
	SenderDeviceID string `json:"sender_device_id"`
	SenderKey      string `json:"sender_key"`
}

// EnrichedMessage is a persisted message plus the sender's display fields.
type EnrichedMessage struct {
	*dbmysql.Message
	Sender common.UserDisplay `json:"sender"`
}

type SendResult struct {
	Message          *EnrichedMessage `json:"message"`
	AIMentioned      bool             `json:"ai_mentioned"`
	MentionedUserIDs []string         `json:"mentioned_user_ids"`
}

type MessageService interface {
	SendMessage(ctx context.Context, senderID, conversationID, rawContent string) (*SendResult, error)
	SendEncryptedMessage(ctx context.Context, senderID, conversationID string, payload EncryptedPayload) (*SendResult, error)
	ListMessages(ctx context.Context, conversationID, requesterID string, limit int, before *time.Time) ([]*EnrichedMessage, bool, error)
	DeleteMessage(ctx context.Context, messageID, requesterID string) error

	// SendAssistantReply posts a message as the reserved assistant
	// identity, back-referencing the human message that triggered it.
	SendAssistantReply(ctx context.Context, conversationID, content, inReplyTo string) (*dbmysql.Message, error)
}

type messageService struct {
	msgRepo     repository.MessageRepository
	convRepo    repository.ConversationRepository
	directory   UserDirectory
	resolver    MentionResolver
	notifier    common.Subject
	assistant   AssistantTrigger
	assistantID string
}

func NewMessageService(
	msgRepo repository.MessageRepository,
	convRepo repository.ConversationRepository,
	directory UserDirectory,
	resolver MentionResolver,
	notifier common.Subject,
	assistant AssistantTrigger,
	assistantID string,
) MessageService {
	return &messageService{
		msgRepo:     msgRepo,
		convRepo:    convRepo,
		directory:   directory,
		resolver:    resolver,
		notifier:    notifier,
		assistant:   assistant,
		assistantID: assistantID,
	}
}

func (s *messageService) SendMessage(ctx context.Context, senderID, conversationID, rawContent string) (*SendResult, error) {
	isParticipant, err := s.convRepo.IsParticipant(ctx, conversationID, senderID)
	if err != nil {
		return nil, err
	}
	if !isParticipant {
		return nil, common.ErrNotAuthorized
	}

	content := strings.TrimSpace(rawContent)
	if content == "" {
		return nil, common.ErrEmptyContent
	}

	resolution, err := s.resolver.Resolve(ctx, content, senderID)
	if err != nil {
		return nil, err
	}

	mentions := append([]string{}, resolution.HumanUserIDs...)
	if resolution.AIMentioned {
		mentions = append(mentions, s.assistantID)
	}

	msg := &dbmysql.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		Mentions:       mentions,
		IsAIGenerated:  false,
	}
	if err := s.msgRepo.Save(ctx, msg); err != nil {
		return nil, err
	}

	s.recordDelivery(ctx, msg)
	s.fanOut(msg, resolution)

	enriched, err := s.enrich(ctx, []*dbmysql.Message{msg})
	if err != nil {
		return nil, err
	}

	return &SendResult{
		Message:          enriched[0],
		AIMentioned:      resolution.AIMentioned,
		MentionedUserIDs: resolution.HumanUserIDs,
	}, nil
}

func (s *messageService) SendEncryptedMessage(ctx context.Context, senderID, conversationID string, payload EncryptedPayload) (*SendResult, error) {
	isParticipant, err := s.convRepo.IsParticipant(ctx, conversationID, senderID)
	if err != nil {
		return nil, err
	}
	if !isParticipant {
		return nil, common.ErrNotAuthorized
	}

	if strings.TrimSpace(payload.Ciphertext) == "" {
		return nil, common.ErrEmptyContent
	}

	// No mention resolution: the server cannot read the ciphertext.
	msg := &dbmysql.Message{
		ID:                  uuid.NewString(),
		ConversationID:      conversationID,
		SenderID:            senderID,
		EncryptedContent:    payload.Ciphertext,
		EncryptionAlgorithm: payload.Algorithm,
		SessionID:           payload.SessionID,
		SenderDeviceID:      payload.SenderDeviceID,
		SenderKey:           payload.SenderKey,
		Mentions:            dbmysql.JSONStringList{},
	}
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}
	if err := s.msgRepo.Save(ctx, msg); err != nil {
		return nil, err
	}

	s.recordDelivery(ctx, msg)

	enriched, err := s.enrich(ctx, []*dbmysql.Message{msg})
	if err != nil {
		return nil, err
	}

	return &SendResult{Message: enriched[0]}, nil
}

func (s *messageService) ListMessages(ctx context.Context, conversationID, requesterID string, limit int, before *time.Time) ([]*EnrichedMessage, bool, error) {
	isParticipant, err := s.convRepo.IsParticipant(ctx, conversationID, requesterID)
	if err != nil {
		return nil, false, err
	}
	if !isParticipant {
		return nil, false, common.ErrNotAuthorized
	}

	if limit <= 0 {
		limit = 50
	}

	messages, hasMore, err := s.msgRepo.ListBefore(ctx, conversationID, before, limit)
	if err != nil {
		return nil, false, err
	}

	enriched, err := s.enrich(ctx, messages)
	if err != nil {
		return nil, false, err
	}

	return enriched, hasMore, nil
}

func (s *messageService) DeleteMessage(ctx context.Context, messageID, requesterID string) error {
	msg, err := s.msgRepo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	if msg.SenderID != requesterID {
		return common.ErrNotAuthorized
	}

	return s.msgRepo.SoftDelete(ctx, messageID)
}

func (s *messageService) SendAssistantReply(ctx context.Context, conversationID, content, inReplyTo string) (*dbmysql.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrEmptyContent
	}

	msg := &dbmysql.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       s.assistantID,
		Content:        content,
		Mentions:       dbmysql.JSONStringList{},
		IsAIGenerated:  true,
		AIResponseTo:   &inReplyTo,
	}
	if err := s.msgRepo.Save(ctx, msg); err != nil {
		return nil, err
	}

	s.recordDelivery(ctx, msg)

	return msg, nil
}

// recordDelivery performs the post-insert bookkeeping: unread counters and
// the conversation's denormalized last-message cache. Both are best-effort
// relative to the already durable message; failures are logged, not
// propagated.
func (s *messageService) recordDelivery(ctx context.Context, msg *dbmysql.Message) {
	if err := s.convRepo.IncrementUnread(ctx, msg.ConversationID, msg.SenderID); err != nil {
		log.Printf("failed to increment unread counters for conversation %s: %v", msg.ConversationID, err)
	}
	if err := s.convRepo.TouchLastMessage(ctx, msg.ConversationID, preview(msg), msg.CreatedAt); err != nil {
		log.Printf("failed to update last-message cache for conversation %s: %v", msg.ConversationID, err)
	}
}

// fanOut dispatches mention notifications and the assistant trigger. Neither
// blocks the send, and neither can fail it.
func (s *messageService) fanOut(msg *dbmysql.Message, resolution *mention.Resolution) {
	for _, userID := range resolution.HumanUserIDs {
		if userID == msg.SenderID || userID == s.assistantID {
			continue
		}
		s.notifier.NotifyAsync(common.NotificationEvent{
			Type:         common.MentionType,
			UserID:       userID,
			ActorID:      msg.SenderID,
			Title:        "You were mentioned",
			Message:      preview(msg),
			ResourceType: common.ResourceDMMessage,
			ResourceID:   msg.ID,
			Metadata: common.NotificationMetadata{
				"conversation_id": msg.ConversationID,
				"message_id":      msg.ID,
			},
		})
	}

	if resolution.AIMentioned && s.assistant != nil {
		s.assistant.Trigger(msg.ConversationID, msg.ID)
	}
}

func (s *messageService) enrich(ctx context.Context, messages []*dbmysql.Message) ([]*EnrichedMessage, error) {
	distinct := make(map[string]struct{})
	for _, msg := range messages {
		distinct[msg.SenderID] = struct{}{}
	}
	senderIDs := make([]string, 0, len(distinct))
	for id := range distinct {
		senderIDs = append(senderIDs, id)
	}

	display, err := s.directory.DisplayInfo(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]*EnrichedMessage, 0, len(messages))
	for _, msg := range messages {
		enriched = append(enriched, &EnrichedMessage{
			Message: msg,
			Sender:  display[msg.SenderID],
		})
	}
	return enriched, nil
}

func preview(msg *dbmysql.Message) string {
	if msg.Encrypted() {
		return encryptedPreview
	}
	text := msg.Content
	if utf8.RuneCountInString(text) <= previewLimit {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewLimit]) + "…"
}
