package user

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"insiderdm/internal/common"
	"insiderdm/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
	GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	CheckUserExists(ctx context.Context, username string) (bool, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	UpsertProfile(ctx context.Context, profile *dbmysql.Profile) error

	// ResolveUsernames maps lowercase usernames to user ids, unioning the
	// core user table and the profile table: a handle recorded in either
	// resolves. Unknown handles are simply absent from the result.
	ResolveUsernames(ctx context.Context, usernames []string) (map[string]string, error)

	// DisplayInfo batch-loads denormalized display fields for a set of ids.
	DisplayInfo(ctx context.Context, userIDs []string) (map[string]common.UserDisplay, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ? AND status = ?", userID, "active").First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("username = ? AND status = ?", username, "active").First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpsertProfile(ctx context.Context, profile *dbmysql.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *userRepository) ResolveUsernames(ctx context.Context, usernames []string) (map[string]string, error) {
	resolved := make(map[string]string)
	if len(usernames) == 0 {
		return resolved, nil
	}

	lowered := make([]string, 0, len(usernames))
	for _, name := range usernames {
		lowered = append(lowered, strings.ToLower(name))
	}

	var users []dbmysql.User
	err := r.db.WithContext(ctx).
		Where("LOWER(username) IN ? AND status = ?", lowered, "active").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		resolved[strings.ToLower(u.Username)] = u.UserID
	}

	var profiles []dbmysql.Profile
	err = r.db.WithContext(ctx).
		Where("LOWER(username) IN ?", lowered).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		key := strings.ToLower(p.Username)
		if _, ok := resolved[key]; !ok && key != "" {
			resolved[key] = p.UserID
		}
	}

	return resolved, nil
}

func (r *userRepository) DisplayInfo(ctx context.Context, userIDs []string) (map[string]common.UserDisplay, error) {
	info := make(map[string]common.UserDisplay)
	if len(userIDs) == 0 {
		return info, nil
	}

	var users []dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		info[u.UserID] = common.UserDisplay{
			UserID:      u.UserID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
		}
	}

	// Profile fields win over the core user row when both are set.
	var profiles []dbmysql.Profile
	err = r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		display := info[p.UserID]
		display.UserID = p.UserID
		if p.Username != "" {
			display.Username = p.Username
		}
		if p.DisplayName != "" {
			display.DisplayName = p.DisplayName
		}
		if p.AvatarURL != "" {
			display.AvatarURL = p.AvatarURL
		}
		info[p.UserID] = display
	}

	return info, nil
}
