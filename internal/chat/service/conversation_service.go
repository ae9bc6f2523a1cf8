package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"insiderdm/internal/chat/repository"
	"insiderdm/internal/common"
)

// UserDirectory is the slice of the user store the chat services need.
type UserDirectory interface {
	DisplayInfo(ctx context.Context, userIDs []string) (map[string]common.UserDisplay, error)
}

// BlockChecker reports whether a block exists in either direction.
type BlockChecker interface {
	ExistsBetween(ctx context.Context, userA, userB string) (bool, error)
}

// ParticipantInfo is a co-participant's display info plus presence.
type ParticipantInfo struct {
	common.UserDisplay
	Presence common.PresenceStatus `json:"presence"`
}

type ConversationSummary struct {
	ID                 string            `json:"id"`
	Type               string            `json:"type"`
	Name               string            `json:"name,omitempty"`
	LastMessageAt      *time.Time        `json:"last_message_at,omitempty"`
	LastMessagePreview string            `json:"last_message_preview,omitempty"`
	UnreadCount        int               `json:"unread_count"`
	IsMuted            bool              `json:"is_muted"`
	Participants       []ParticipantInfo `json:"participants"`
}

type ConversationService interface {
	GetOrCreateDirectConversation(ctx context.Context, userA, userB string) (string, error)
	CreateGroupConversation(ctx context.Context, creatorID, name string, memberIDs []string) (string, error)
	ListConversations(ctx context.Context, userID string) ([]*ConversationSummary, error)
	MarkAsRead(ctx context.Context, userID, conversationID string) error
	SetMute(ctx context.Context, userID, conversationID string, muted bool) error
}

type conversationService struct {
	convRepo  repository.ConversationRepository
	directory UserDirectory
	blocks    BlockChecker
	presence  common.PresenceStore
}

func NewConversationService(
	convRepo repository.ConversationRepository,
	directory UserDirectory,
	blocks BlockChecker,
	presence common.PresenceStore,
) ConversationService {
	return &conversationService{
		convRepo:  convRepo,
		directory: directory,
		blocks:    blocks,
		presence:  presence,
	}
}

func (s *conversationService) GetOrCreateDirectConversation(ctx context.Context, userA, userB string) (string, error) {
	if userA == "" || userB == "" {
		return "", fmt.Errorf("%w: both user ids are required", common.ErrInvalidInput)
	}
	if userA == userB {
		return "", fmt.Errorf("%w: cannot start a conversation with yourself", common.ErrInvalidInput)
	}

	known, err := s.directory.DisplayInfo(ctx, []string{userA, userB})
	if err != nil {
		return "", err
	}
	for _, id := range []string{userA, userB} {
		if _, ok := known[id]; !ok {
			return "", fmt.Errorf("%w: user %s", common.ErrNotFound, id)
		}
	}

	blocked, err := s.blocks.ExistsBetween(ctx, userA, userB)
	if err != nil {
		return "", err
	}
	if blocked {
		return "", common.ErrBlocked
	}

	conversationID, created, err := s.convRepo.GetOrCreateDirect(ctx, userA, userB)
	if err != nil {
		return "", err
	}
	if created {
		log.Printf("conversation %s created for pair (%s, %s)", conversationID, userA, userB)
	}

	return conversationID, nil
}

func (s *conversationService) CreateGroupConversation(ctx context.Context, creatorID, name string, memberIDs []string) (string, error) {
	members := map[string]struct{}{creatorID: {}}
	for _, id := range memberIDs {
		if id != "" {
			members[id] = struct{}{}
		}
	}
	if len(members) < 2 {
		return "", fmt.Errorf("%w: a group needs at least two participants", common.ErrInvalidInput)
	}
	if len(members) > 50 {
		return "", fmt.Errorf("%w: a group is limited to fifty participants", common.ErrInvalidInput)
	}

	all := make([]string, 0, len(members))
	for id := range members {
		all = append(all, id)
	}
	known, err := s.directory.DisplayInfo(ctx, all)
	if err != nil {
		return "", err
	}
	for _, id := range all {
		if _, ok := known[id]; !ok {
			return "", fmt.Errorf("%w: user %s", common.ErrNotFound, id)
		}
	}

	return s.convRepo.CreateGroup(ctx, name, all)
}

func (s *conversationService) ListConversations(ctx context.Context, userID string) ([]*ConversationSummary, error) {
	rows, err := s.convRepo.ListSummaries(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []*ConversationSummary{}, nil
	}

	conversationIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		conversationIDs = append(conversationIDs, row.ID)
	}

	others, err := s.convRepo.OtherParticipants(ctx, conversationIDs, userID)
	if err != nil {
		return nil, err
	}

	distinct := make(map[string]struct{})
	for _, ids := range others {
		for _, id := range ids {
			distinct[id] = struct{}{}
		}
	}
	allIDs := make([]string, 0, len(distinct))
	for id := range distinct {
		allIDs = append(allIDs, id)
	}

	display, err := s.directory.DisplayInfo(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	// Presence is decoration; a presence outage must not break the list.
	statuses, err := s.presence.Batch(ctx, allIDs)
	if err != nil {
		log.Printf("presence lookup failed, defaulting to offline: %v", err)
		statuses = map[string]common.PresenceStatus{}
	}

	summaries := make([]*ConversationSummary, 0, len(rows))
	for _, row := range rows {
		summary := &ConversationSummary{
			ID:                 row.ID,
			Type:               row.Type,
			Name:               row.Name,
			LastMessageAt:      row.LastMessageAt,
			LastMessagePreview: row.LastMessagePreview,
			UnreadCount:        row.UnreadCount,
			IsMuted:            row.IsMuted,
			Participants:       []ParticipantInfo{},
		}
		for _, id := range others[row.ID] {
			info := ParticipantInfo{
				UserDisplay: display[id],
				Presence:    common.PresenceOffline,
			}
			if status, ok := statuses[id]; ok {
				info.Presence = status
			}
			summary.Participants = append(summary.Participants, info)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *conversationService) MarkAsRead(ctx context.Context, userID, conversationID string) error {
	isParticipant, err := s.convRepo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !isParticipant {
		return common.ErrNotAuthorized
	}

	return s.convRepo.MarkAsRead(ctx, conversationID, userID)
}

func (s *conversationService) SetMute(ctx context.Context, userID, conversationID string, muted bool) error {
	isParticipant, err := s.convRepo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !isParticipant {
		return common.ErrNotAuthorized
	}

	return s.convRepo.SetMute(ctx, conversationID, userID, muted)
}
