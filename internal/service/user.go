package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProfile(ctx context.Context, username, email, avatar string) error
}

// ProfileUpdate carries the editable profile fields; nil means keep current.
type ProfileUpdate struct {
	Email  *string
	Avatar *string
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*entity.User, error)
}

type userService struct {
	userRepo userRepo
}

func NewUserService(userRepo userRepo) UserService {
	return &userService{userRepo: userRepo}
}

func (that *userService) Register(ctx context.Context, username, email, password string) error {
	_, err := that.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return apperror.ErrUserExists
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err = that.userRepo.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// Login verifies the credentials. A missing user and a wrong password are
// indistinguishable to the caller.
func (that *userService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := that.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ErrUnauthorized
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	return user, nil
}

func (that *userService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return that.userRepo.FindByUsername(ctx, username)
}

func (that *userService) UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*entity.User, error) {
	user, err := that.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}

	if err = that.userRepo.UpdateProfile(ctx, username, user.Email, user.Avatar); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
