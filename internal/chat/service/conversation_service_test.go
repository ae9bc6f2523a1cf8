package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"insiderdm/internal/chat/repository"
	"insiderdm/internal/chat/service/mocks"
	"insiderdm/internal/common"
)

type conversationServiceMocks struct {
	convRepo  *mocks.MockConversationRepository
	directory *mocks.MockUserDirectory
	blocks    *mocks.MockBlockChecker
	presence  *mocks.MockPresenceStore
}

func newConversationService(ctrl *gomock.Controller) (ConversationService, *conversationServiceMocks) {
	m := &conversationServiceMocks{
		convRepo:  mocks.NewMockConversationRepository(ctrl),
		directory: mocks.NewMockUserDirectory(ctrl),
		blocks:    mocks.NewMockBlockChecker(ctrl),
		presence:  mocks.NewMockPresenceStore(ctrl),
	}
	svc := NewConversationService(m.convRepo, m.directory, m.blocks, m.presence)
	return svc, m
}

func TestConversationService_GetOrCreateDirectConversation(t *testing.T) {
	ctx := context.Background()

	bothKnown := map[string]common.UserDisplay{
		"user-a": {UserID: "user-a"},
		"user-b": {UserID: "user-b"},
	}

	tests := []struct {
		name    string
		userA   string
		userB   string
		setup   func(m *conversationServiceMocks)
		wantID  string
		wantErr error
	}{
		{
			name:  "creates on first call",
			userA: "user-a",
			userB: "user-b",
			setup: func(m *conversationServiceMocks) {
				m.directory.EXPECT().DisplayInfo(ctx, []string{"user-a", "user-b"}).Return(bothKnown, nil)
				m.blocks.EXPECT().ExistsBetween(ctx, "user-a", "user-b").Return(false, nil)
				m.convRepo.EXPECT().GetOrCreateDirect(ctx, "user-a", "user-b").Return("conv-1", true, nil)
			},
			wantID: "conv-1",
		},
		{
			name:  "returns the existing conversation on repeat calls",
			userA: "user-a",
			userB: "user-b",
			setup: func(m *conversationServiceMocks) {
				m.directory.EXPECT().DisplayInfo(ctx, []string{"user-a", "user-b"}).Return(bothKnown, nil)
				m.blocks.EXPECT().ExistsBetween(ctx, "user-a", "user-b").Return(false, nil)
				m.convRepo.EXPECT().GetOrCreateDirect(ctx, "user-a", "user-b").Return("conv-1", false, nil)
			},
			wantID: "conv-1",
		},
		{
			name:    "self conversation is rejected",
			userA:   "user-a",
			userB:   "user-a",
			setup:   func(m *conversationServiceMocks) {},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "empty user id is rejected",
			userA:   "user-a",
			userB:   "",
			setup:   func(m *conversationServiceMocks) {},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:  "unknown counterpart",
			userA: "user-a",
			userB: "user-ghost",
			setup: func(m *conversationServiceMocks) {
				m.directory.EXPECT().DisplayInfo(ctx, []string{"user-a", "user-ghost"}).Return(
					map[string]common.UserDisplay{"user-a": {UserID: "user-a"}}, nil)
			},
			wantErr: common.ErrNotFound,
		},
		{
			name:  "block in either direction refuses the conversation",
			userA: "user-a",
			userB: "user-b",
			setup: func(m *conversationServiceMocks) {
				m.directory.EXPECT().DisplayInfo(ctx, []string{"user-a", "user-b"}).Return(bothKnown, nil)
				m.blocks.EXPECT().ExistsBetween(ctx, "user-a", "user-b").Return(true, nil)
			},
			wantErr: common.ErrBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newConversationService(ctrl)
			tt.setup(m)

			id, err := svc.GetOrCreateDirectConversation(ctx, tt.userA, tt.userB)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestConversationService_CreateGroupConversation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		creatorID string
		members   []string
		setup     func(m *conversationServiceMocks)
		wantErr   error
	}{
		{
			name:      "creator is folded into the member set",
			creatorID: "user-a",
			members:   []string{"user-b", "user-a", "user-b"},
			setup: func(m *conversationServiceMocks) {
				m.directory.EXPECT().DisplayInfo(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, ids []string) (map[string]common.UserDisplay, error) {
						assert.ElementsMatch(t, []string{"user-a", "user-b"}, ids)
						return map[string]common.UserDisplay{
							"user-a": {UserID: "user-a"},
							"user-b": {UserID: "user-b"},
						}, nil
					})
				m.convRepo.EXPECT().CreateGroup(ctx, "team", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, ids []string) (string, error) {
						assert.ElementsMatch(t, []string{"user-a", "user-b"}, ids)
						return "conv-g", nil
					})
			},
		},
		{
			name:      "creator alone is too small",
			creatorID: "user-a",
			members:   []string{"user-a", ""},
			setup:     func(m *conversationServiceMocks) {},
			wantErr:   common.ErrInvalidInput,
		},
		{
			name:      "unknown member is rejected",
			creatorID: "user-a",
			members:   []string{"user-ghost"},
			setup: func(m *conversationServiceMocks) {
				m.directory.EXPECT().DisplayInfo(ctx, gomock.Any()).Return(
					map[string]common.UserDisplay{"user-a": {UserID: "user-a"}}, nil)
			},
			wantErr: common.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newConversationService(ctrl)
			tt.setup(m)

			id, err := svc.CreateGroupConversation(ctx, tt.creatorID, "team", tt.members)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "conv-g", id)
		})
	}
}

func TestConversationService_ListConversations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newConversationService(ctrl)

	rows := []repository.ConversationSummaryRow{
		{ID: "conv-1", Type: "direct", UnreadCount: 3},
		{ID: "conv-2", Type: "group", Name: "team", UnreadCount: 0, IsMuted: true},
	}

	m.convRepo.EXPECT().ListSummaries(ctx, "user-a").Return(rows, nil)
	m.convRepo.EXPECT().OtherParticipants(ctx, []string{"conv-1", "conv-2"}, "user-a").Return(
		map[string][]string{
			"conv-1": {"user-b"},
			"conv-2": {"user-b", "user-c"},
		}, nil)
	m.directory.EXPECT().DisplayInfo(ctx, gomock.Any()).Return(
		map[string]common.UserDisplay{
			"user-b": {UserID: "user-b", Username: "bob"},
			"user-c": {UserID: "user-c", Username: "carol"},
		}, nil)
	m.presence.EXPECT().Batch(ctx, gomock.Any()).Return(
		map[string]common.PresenceStatus{
			"user-b": common.PresenceOnline,
		}, nil)

	summaries, err := svc.ListConversations(ctx, "user-a")

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "conv-1", summaries[0].ID)
	assert.Equal(t, 3, summaries[0].UnreadCount)
	require.Len(t, summaries[0].Participants, 1)
	assert.Equal(t, "bob", summaries[0].Participants[0].Username)
	assert.Equal(t, common.PresenceOnline, summaries[0].Participants[0].Presence)

	assert.True(t, summaries[1].IsMuted)
	require.Len(t, summaries[1].Participants, 2)
	// No presence record means offline.
	assert.Equal(t, common.PresenceOffline, summaries[1].Participants[1].Presence)
}

func TestConversationService_ListConversations_PresenceOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newConversationService(ctrl)

	m.convRepo.EXPECT().ListSummaries(ctx, "user-a").Return(
		[]repository.ConversationSummaryRow{{ID: "conv-1", Type: "direct"}}, nil)
	m.convRepo.EXPECT().OtherParticipants(ctx, []string{"conv-1"}, "user-a").Return(
		map[string][]string{"conv-1": {"user-b"}}, nil)
	m.directory.EXPECT().DisplayInfo(ctx, gomock.Any()).Return(
		map[string]common.UserDisplay{"user-b": {UserID: "user-b"}}, nil)
	m.presence.EXPECT().Batch(ctx, gomock.Any()).Return(nil, errors.New("mongo unreachable"))

	summaries, err := svc.ListConversations(ctx, "user-a")

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, common.PresenceOffline, summaries[0].Participants[0].Presence)
}

func TestConversationService_ListConversations_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newConversationService(ctrl)

	m.convRepo.EXPECT().ListSummaries(ctx, "user-a").Return(nil, nil)

	summaries, err := svc.ListConversations(ctx, "user-a")

	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestConversationService_MarkAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newConversationService(ctrl)

	m.convRepo.EXPECT().IsParticipant(ctx, "conv-1", "user-a").Return(true, nil)
	m.convRepo.EXPECT().MarkAsRead(ctx, "conv-1", "user-a").Return(nil)

	assert.NoError(t, svc.MarkAsRead(ctx, "user-a", "conv-1"))
}

func TestConversationService_MarkAsRead_NotParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newConversationService(ctrl)

	m.convRepo.EXPECT().IsParticipant(ctx, "conv-1", "stranger").Return(false, nil)

	assert.ErrorIs(t, svc.MarkAsRead(ctx, "stranger", "conv-1"), common.ErrNotAuthorized)
}

func TestConversationService_SetMute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newConversationService(ctrl)

	m.convRepo.EXPECT().IsParticipant(ctx, "conv-1", "user-a").Return(true, nil)
	m.convRepo.EXPECT().SetMute(ctx, "conv-1", "user-a", true).Return(nil)

	assert.NoError(t, svc.SetMute(ctx, "user-a", "conv-1", true))
}
