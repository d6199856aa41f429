package model

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already taken")
)

type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
	Address        Address
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type UserRepository interface {
	NextID() (uuid.UUID, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Find(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// PasswordManager hides the hashing scheme from the domain.
type PasswordManager interface {
	Hash(plainText string) (string, error)
	Compare(hashed, plainText string) error
}
