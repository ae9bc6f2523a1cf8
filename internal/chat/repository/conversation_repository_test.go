package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"insiderdm/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestConversationRepository_GetOrCreateDirect(t *testing.T) {
	key := dbmysql.DirectKeyFor("user-a", "user-b")

	tests := []struct {
		name        string
		mockSetup   func(sqlmock.Sqlmock)
		wantCreated bool
		expectError bool
	}{
		{
			name: "existing conversation is returned without writes",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `conversations` WHERE direct_key = ?")).
					WithArgs(key, sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id", "type", "direct_key"}).
						AddRow("conv-existing", "direct", key))
			},
			wantCreated: false,
		},
		{
			name: "first caller creates conversation and participants",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `conversations` WHERE direct_key = ?")).
					WithArgs(key, sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `conversations`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `participants`").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectCommit()
			},
			wantCreated: true,
		},
		{
			name: "loser of the insert race re-reads the winner's row",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `conversations` WHERE direct_key = ?")).
					WithArgs(key, sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectBegin()
				// ON DUPLICATE KEY leaves zero rows affected.
				mock.ExpectExec("INSERT INTO `conversations`").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `conversations` WHERE direct_key = ?")).
					WithArgs(key, sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id", "type", "direct_key"}).
						AddRow("conv-winner", "direct", key))
				mock.ExpectCommit()
			},
			wantCreated: false,
		},
		{
			name: "participant insert failure rolls the transaction back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `conversations` WHERE direct_key = ?")).
					WithArgs(key, sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `conversations`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `participants`").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewConversationRepository(db)
			id, created, err := repo.GetOrCreateDirect(context.Background(), "user-a", "user-b")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
				assert.Equal(t, tt.wantCreated, created)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConversationRepository_GetOrCreateDirect_OrderIndependent(t *testing.T) {
	// Both argument orders must resolve to the same canonical key.
	assert.Equal(t,
		dbmysql.DirectKeyFor("user-a", "user-b"),
		dbmysql.DirectKeyFor("user-b", "user-a"))
}

func TestConversationRepository_IsParticipant(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `participants` WHERE conversation_id = ? AND user_id = ?")).
		WithArgs("conv-1", "user-a").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	repo := NewConversationRepository(db)
	ok, err := repo.IsParticipant(context.Background(), "conv-1", "user-a")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_IncrementUnread(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	// The increment must happen in SQL, not read-modify-write.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `participants` SET `unread_count`=unread_count + ? WHERE conversation_id = ? AND user_id <> ?")).
		WithArgs(1, "conv-1", "user-sender").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	repo := NewConversationRepository(db)
	err := repo.IncrementUnread(context.Background(), "conv-1", "user-sender")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_MarkAsRead(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `participants` SET").
		WithArgs(sqlmock.AnyArg(), 0, "conv-1", "user-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewConversationRepository(db)
	err := repo.MarkAsRead(context.Background(), "conv-1", "user-a")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_SetMute(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `participants` SET `is_muted`").
		WithArgs(true, "conv-1", "user-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewConversationRepository(db)
	err := repo.SetMute(context.Background(), "conv-1", "user-a", true)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_ListSummaries(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	lastAt := time.Now()
	mock.ExpectQuery("SELECT c.id, c.type, c.name, c.last_message_at, c.last_message_preview, p.unread_count, p.is_muted FROM `participants`").
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "type", "name", "last_message_at", "last_message_preview", "unread_count", "is_muted"}).
			AddRow("conv-2", "group", "team", lastAt, "latest", 4, false).
			AddRow("conv-1", "direct", "", nil, "", 0, true))

	repo := NewConversationRepository(db)
	rows, err := repo.ListSummaries(context.Background(), "user-a")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "conv-2", rows[0].ID)
	assert.Equal(t, 4, rows[0].UnreadCount)
	assert.Nil(t, rows[1].LastMessageAt)
	assert.True(t, rows[1].IsMuted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_OtherParticipants(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT conversation_id, user_id FROM `participants`").
		WithArgs("conv-1", "conv-2", "user-a").
		WillReturnRows(sqlmock.NewRows([]string{"conversation_id", "user_id"}).
			AddRow("conv-1", "user-b").
			AddRow("conv-2", "user-b").
			AddRow("conv-2", "user-c"))

	repo := NewConversationRepository(db)
	byConv, err := repo.OtherParticipants(context.Background(), []string{"conv-1", "conv-2"}, "user-a")

	require.NoError(t, err)
	assert.Equal(t, []string{"user-b"}, byConv["conv-1"])
	assert.Equal(t, []string{"user-b", "user-c"}, byConv["conv-2"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
