package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

var (
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLength = 8

type UserService interface {
	Register(ctx context.Context, name, email, plainTextPassword string) (*model.User, error)
	Authenticate(ctx context.Context, email, plainTextPassword string) (*model.User, error)
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateAddress(ctx context.Context, userID uuid.UUID, address model.Address) error
}

func NewUserService(repo model.UserRepository, passManager model.PasswordManager, dispatcher EventDispatcher) UserService {
	return &userService{repo: repo, passManager: passManager, dispatcher: dispatcher}
}

type userService struct {
	repo        model.UserRepository
	passManager model.PasswordManager
	dispatcher  EventDispatcher
}

func (s *userService) Register(ctx context.Context, name, email, plainTextPassword string) (*model.User, error) {
	if len(plainTextPassword) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailTaken
	}

	hashedPassword, err := s.passManager.Hash(plainTextPassword)
	if err != nil {
		return nil, err
	}

	userID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:             userID,
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.UserRegistered{UserID: userID, Email: email})
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, plainTextPassword string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passManager.Compare(user.HashedPassword, plainTextPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.Find(ctx, userID)
}

func (s *userService) UpdateAddress(ctx context.Context, userID uuid.UUID, address model.Address) error {
	user, err := s.repo.Find(ctx, userID)
	if err != nil {
		return err
	}

	user.Address = address
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}
