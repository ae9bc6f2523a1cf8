package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insiderdm/internal/common"
	"insiderdm/internal/dbmysql"
)

type UserService interface {
	RegisterUser(ctx context.Context, username, email, password string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID string) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID string, profile *dbmysql.Profile) error

	BlockUser(ctx context.Context, blockerID, blockedID string) error
	UnblockUser(ctx context.Context, blockerID, blockedID string) error

	RegisterDevice(ctx context.Context, userID, deviceID, displayName, identityKey, curve25519Key string) error
	RemoveDevice(ctx context.Context, deviceID string) error
	GetUserDevices(ctx context.Context, userID string) ([]*dbmysql.Device, error)
}

type userService struct {
	userRepo   UserRepository
	blockRepo  BlockRepository
	deviceRepo DeviceRepository
}

func NewUserService(userRepo UserRepository, blockRepo BlockRepository, deviceRepo DeviceRepository) UserService {
	return &userService{userRepo: userRepo, blockRepo: blockRepo, deviceRepo: deviceRepo}
}

func (s *userService) RegisterUser(ctx context.Context, username, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("%w: username already taken", common.ErrInvalidInput)
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Status:       "active",
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password required", common.ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.ErrNotAuthenticated
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.ErrNotAuthenticated
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, profile *dbmysql.Profile) error {
	if profile.Username != "" {
		if err := common.ValidateUsername(profile.Username); err != nil {
			return fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
		}
	}
	profile.UserID = userID
	return s.userRepo.UpsertProfile(ctx, profile)
}

func (s *userService) BlockUser(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == blockedID {
		return fmt.Errorf("%w: cannot block yourself", common.ErrInvalidInput)
	}
	if _, err := s.userRepo.GetUserByID(ctx, blockedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	return s.blockRepo.CreateBlock(ctx, blockerID, blockedID)
}

func (s *userService) UnblockUser(ctx context.Context, blockerID, blockedID string) error {
	return s.blockRepo.RemoveBlock(ctx, blockerID, blockedID)
}

func (s *userService) RegisterDevice(ctx context.Context, userID, deviceID, displayName, identityKey, curve25519Key string) error {
	if deviceID == "" || identityKey == "" || curve25519Key == "" {
		return fmt.Errorf("%w: device id and key material required", common.ErrInvalidInput)
	}
	device := &dbmysql.Device{
		DeviceID:      deviceID,
		UserID:        userID,
		DisplayName:   displayName,
		IdentityKey:   identityKey,
		Curve25519Key: curve25519Key,
	}
	return s.deviceRepo.RegisterDevice(ctx, device)
}

func (s *userService) RemoveDevice(ctx context.Context, deviceID string) error {
	return s.deviceRepo.RemoveDevice(ctx, deviceID)
}

func (s *userService) GetUserDevices(ctx context.Context, userID string) ([]*dbmysql.Device, error) {
	return s.deviceRepo.GetUserDevices(ctx, userID)
}
